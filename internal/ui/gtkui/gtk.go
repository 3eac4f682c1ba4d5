// Package gtkui draws the about dialog as a fixed-size GTK 3 window.
package gtkui

import (
	"context"
	"fmt"
	"html"

	"github.com/go-logr/logr"
	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
	"github.com/hiveden/linver/internal/dialog"
	"github.com/hiveden/linver/internal/ui"
)

const fallbackIcon = "computer"

// GTK shows the dialog in a GtkWindow using absolute positioning.
type GTK struct {
	assets *ui.AssetResolver
	log    logr.Logger
}

var _ ui.Renderer = (*GTK)(nil)

// New returns a GTK renderer loading logos through assets.
func New(assets *ui.AssetResolver, log logr.Logger) *GTK {
	return &GTK{assets: assets, log: log}
}

// Show opens the window and runs the GTK main loop until it is closed or
// ctx is done, in which case ctx.Err() is returned.
func (g *GTK) Show(ctx context.Context, d dialog.Dialog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := gtk.InitCheck(nil); err != nil {
		return fmt.Errorf("failed to initialize GTK: %w", err)
	}

	win, err := gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	win.SetTitle(d.Title)
	win.SetDefaultSize(d.Width, d.Height)
	win.SetSizeRequest(d.Width, d.Height)
	win.SetResizable(false)
	win.SetPosition(gtk.WIN_POS_CENTER)
	win.Connect("destroy", gtk.MainQuit)

	// Signals arrive on another goroutine; the close runs on the main loop.
	stop := ui.CloseOnDone(ctx, func(f func()) { glib.IdleAdd(f) }, func() {
		win.Close()
	})
	defer stop()

	fixed, err := gtk.FixedNew()
	if err != nil {
		return fmt.Errorf("failed to create layout: %w", err)
	}
	win.Add(fixed)

	logo, err := g.logo(d)
	if err != nil {
		return err
	}
	logo.SetSizeRequest(d.Logo.W, d.Logo.H)
	fixed.Put(logo, d.Logo.X, d.Logo.Y)

	for _, l := range d.Labels {
		label, err := gtk.LabelNew("")
		if err != nil {
			return fmt.Errorf("failed to create label %s: %w", l.Name, err)
		}
		label.SetMarkup(fmt.Sprintf(`<span font_desc="Arial %d">%s</span>`, l.FontSize, html.EscapeString(l.Text)))
		label.SetXAlign(0)
		label.SetYAlign(0)
		label.SetLineWrap(l.Wrap)
		label.SetSizeRequest(l.Bounds.W, l.Bounds.H)
		fixed.Put(label, l.Bounds.X, l.Bounds.Y)
	}

	ok, err := gtk.ButtonNewWithLabel(d.Button)
	if err != nil {
		return fmt.Errorf("failed to create button: %w", err)
	}
	ok.SetSizeRequest(d.OK.W, d.OK.H)
	ok.Connect("clicked", func() {
		win.Close()
	})
	fixed.Put(ok, d.OK.X, d.OK.Y)

	win.ShowAll()
	ok.GrabFocus()

	g.log.V(1).Info("showing dialog", "title", d.Title, "asset", d.AssetKey)
	gtk.Main()
	return ctx.Err()
}

// logo loads the logo scaled to the dialog's logo area, or a stock icon
// when no logo file can be read.
func (g *GTK) logo(d dialog.Dialog) (*gtk.Image, error) {
	if path, ok := g.assets.Resolve(d.AssetKey); ok {
		pb, err := gdk.PixbufNewFromFileAtScale(path, d.Logo.W, d.Logo.H, false)
		if err == nil {
			return gtk.ImageNewFromPixbuf(pb)
		}
		g.log.Error(err, "failed to load logo", "path", path)
	}

	img, err := gtk.ImageNewFromIconName(fallbackIcon, gtk.ICON_SIZE_DIALOG)
	if err != nil {
		return nil, fmt.Errorf("failed to create fallback logo: %w", err)
	}
	return img, nil
}
