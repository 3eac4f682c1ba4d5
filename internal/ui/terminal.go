package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"github.com/hiveden/linver/internal/dialog"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

// A terminal cell stands in for this many pixels of the dialog canvas.
const (
	cellWidth  = 8
	cellHeight = 16
)

// Terminal draws the dialog with tview inside the current terminal.
type Terminal struct {
	log logr.Logger
}

// NewTerminal returns a terminal renderer.
func NewTerminal(log logr.Logger) *Terminal {
	return &Terminal{log: log}
}

// Show blocks until OK is pressed, Escape or q is typed, or ctx is done.
// In the last case it returns ctx.Err().
func (t *Terminal) Show(ctx context.Context, d dialog.Dialog) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	app := tview.NewApplication()
	stop := CloseOnDone(ctx, func(f func()) { f() }, app.Stop)
	defer stop()

	cols, rows := d.Width/cellWidth, d.OK.Y/cellHeight

	body := tview.NewTextView().
		SetDynamicColors(false).
		SetWrap(false).
		SetText(strings.Join(Canvas(d), "\n"))

	ok := tview.NewButton(d.Button).SetSelectedFunc(app.Stop)

	buttonRow := tview.NewFlex().
		AddItem(nil, d.OK.X/cellWidth, 0, false).
		AddItem(ok, d.OK.W/cellWidth, 0, true).
		AddItem(nil, 0, 1, false)

	frame := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(body, rows, 0, false).
		AddItem(buttonRow, 1, 0, true)
	frame.SetBorder(true).SetTitle(" " + d.Title + " ")

	// Fixed size, centred in whatever space the terminal offers.
	centred := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(frame, rows+3, 0, true).
			AddItem(nil, 0, 1, false), cols+2, 0, true).
		AddItem(nil, 0, 1, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape,
			event.Key() == tcell.KeyRune && event.Rune() == 'q':
			app.Stop()
			return nil
		}
		return event
	})

	t.log.V(1).Info("showing dialog", "title", d.Title, "cols", cols, "rows", rows)
	if err := app.SetRoot(centred, true).SetFocus(ok).Run(); err != nil {
		return fmt.Errorf("failed to run terminal UI: %w", err)
	}
	return ctx.Err()
}

// Canvas renders every part of d above the OK button onto a grid of text
// lines, mapping pixel coordinates to terminal cells.
func Canvas(d dialog.Dialog) []string {
	cols, rows := d.Width/cellWidth, d.OK.Y/cellHeight
	// Each cell holds what is printed there; the cell after a wide rune
	// holds "" since the rune already covers it.
	grid := make([][]string, rows)
	for i := range grid {
		grid[i] = make([]string, cols)
		for j := range grid[i] {
			grid[i][j] = " "
		}
	}

	put := func(row, col int, s string) {
		if row < 0 || row >= rows {
			return
		}
		c := col
		for _, r := range s {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if c < 0 {
				c += w
				continue
			}
			if c+w > cols {
				return
			}
			grid[row][c] = string(r)
			for i := 1; i < w; i++ {
				grid[row][c+i] = ""
			}
			c += w
		}
	}

	banner := "[ " + d.AssetKey + " ]"
	logoCols := d.Logo.W / cellWidth
	put((d.Logo.Y+d.Logo.H/2)/cellHeight, d.Logo.X/cellWidth+(logoCols-runewidth.StringWidth(banner))/2, banner)

	for _, l := range d.Labels {
		width := l.Bounds.W / cellWidth
		maxLines := max(l.Bounds.H/cellHeight, 1)
		if l.Wrap {
			maxLines = max(l.Bounds.H/(cellHeight/2), 1)
		}

		var lines []string
		for _, line := range strings.Split(l.Text, "\n") {
			if l.Wrap {
				lines = append(lines, wrap(line, width)...)
			} else {
				lines = append(lines, line)
			}
		}

		for i, line := range lines {
			if i >= maxLines {
				break
			}
			line = runewidth.Truncate(line, width, "")
			put(l.Bounds.Y/cellHeight+i, l.Bounds.X/cellWidth, line)
		}
	}

	out := make([]string, rows)
	for i, row := range grid {
		out[i] = strings.TrimRight(strings.Join(row, ""), " ")
	}
	return out
}

// wrap breaks s into lines of at most width cells on word boundaries.
// Words longer than width are kept whole on their own line.
func wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if runewidth.StringWidth(line)+1+runewidth.StringWidth(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
