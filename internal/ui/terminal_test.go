package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/hiveden/linver/internal/branding"
	"github.com/hiveden/linver/internal/dialog"
	"github.com/hiveden/linver/internal/hw"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDialog() dialog.Dialog {
	snap := hw.SystemSnapshot{
		KernelVersion:  "Kernel build 6.6.10-arch1-1",
		Username:       "dave",
		Hostname:       "archbox",
		DistroName:     "Arch Linux",
		DistroVersion:  "",
		DistroCodename: "",
	}
	return dialog.Build(snap, branding.Map(snap.DistroName))
}

func TestCanvas(t *testing.T) {
	lines := Canvas(sampleDialog())

	require.Len(t, lines, 377/cellHeight)
	assert.Equal(t, "[ ArchLinux ]", strings.TrimSpace(lines[3]))
	assert.Equal(t, "  Arch Linux", lines[7])
	assert.Equal(t, "  Version", lines[8])
	assert.Equal(t, "  Kernel build 6.6.10-arch1-1", lines[9])
	assert.Equal(t, "  This product is registered to:", lines[16])
	assert.Equal(t, "      dave", lines[17])
	assert.Equal(t, "      archbox", lines[18])

	assert.True(t, strings.HasPrefix(lines[12], "  The Linux kernel is protected"))
	assert.Contains(t, strings.Join(lines[12:16], " "), "countries/regions.")

	for i, l := range lines {
		assert.LessOrEqual(t, runewidth.StringWidth(l), 450/cellWidth, "line %d", i)
	}
}

func TestCanvasWideCharacters(t *testing.T) {
	d := sampleDialog()
	for i := range d.Labels {
		switch d.Labels[i].Name {
		case "username":
			d.Labels[i].Text = strings.Repeat("界", 40)
		case "hostname":
			d.Labels[i].Text = "ホスト名"
		}
	}

	lines := Canvas(d)

	assert.Equal(t, "      "+strings.Repeat("界", 400/cellWidth/2), lines[17])
	assert.Equal(t, "      ホスト名", lines[18])
	for i, l := range lines {
		assert.LessOrEqual(t, runewidth.StringWidth(l), 450/cellWidth, "line %d", i)
	}
}

func TestCanvasWideAssetBanner(t *testing.T) {
	d := sampleDialog()
	d.AssetKey = "日本"

	lines := Canvas(d)
	banner := "[ 日本 ]"
	col := d.Logo.X/cellWidth + (d.Logo.W/cellWidth-runewidth.StringWidth(banner))/2
	assert.Equal(t, strings.Repeat(" ", col)+banner, lines[3])
}

func TestCanvasTruncatesLongLabels(t *testing.T) {
	d := sampleDialog()
	d.Labels[0].Text = strings.Repeat("x", 200)

	lines := Canvas(d)
	assert.Equal(t, "  "+strings.Repeat("x", 400/cellWidth), lines[7])
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{""}, wrap("   ", 10))
	assert.Equal(t, []string{"one two", "three"}, wrap("one two three", 8))
	assert.Equal(t, []string{"abcdefghijkl", "x"}, wrap("abcdefghijkl x", 5))
	assert.Equal(t, []string{"界界", "界"}, wrap("界界 界", 5))
}

func TestTerminalShowCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewTerminal(logr.Discard()).Show(ctx, sampleDialog())
	assert.ErrorIs(t, err, context.Canceled)
}
