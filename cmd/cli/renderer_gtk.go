//go:build !nogtk

package main

import (
	"github.com/go-logr/logr"
	"github.com/hiveden/linver/internal/ui"
	"github.com/hiveden/linver/internal/ui/gtkui"
)

func newGTKRenderer(assets *ui.AssetResolver, log logr.Logger) (ui.Renderer, error) {
	return gtkui.New(assets, log), nil
}
