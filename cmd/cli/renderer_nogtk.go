//go:build nogtk

package main

import (
	"errors"

	"github.com/go-logr/logr"
	"github.com/hiveden/linver/internal/ui"
)

// errNoGTK is returned when the GTK renderer is requested from a binary
// built with the nogtk tag.
var errNoGTK = errors.New("built without GTK support, use --renderer tui")

func newGTKRenderer(*ui.AssetResolver, logr.Logger) (ui.Renderer, error) {
	return nil, errNoGTK
}
