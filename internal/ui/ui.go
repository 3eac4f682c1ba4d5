// Package ui shows a dialog.Dialog with a concrete toolkit.
package ui

import (
	"context"

	"github.com/hiveden/linver/internal/config"
	"github.com/hiveden/linver/internal/dialog"
)

// Renderer displays a dialog and blocks until the user dismisses it.
type Renderer interface {
	Show(ctx context.Context, d dialog.Dialog) error
}

// Kind picks the renderer for the configured setting. "auto" selects GTK
// when a display server is reachable and the terminal otherwise.
func Kind(setting string, getenv func(string) string) string {
	if setting != config.RendererAuto {
		return setting
	}
	if getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != "" {
		return config.RendererGTK
	}
	return config.RendererTerminal
}

// CloseOnDone calls post(closeWindow) once ctx is done. post hands the call
// to the toolkit's own loop when closeWindow must not run on another
// goroutine. The returned stop function disarms it.
func CloseOnDone(ctx context.Context, post func(func()), closeWindow func()) (stop func() bool) {
	return context.AfterFunc(ctx, func() {
		post(closeWindow)
	})
}
