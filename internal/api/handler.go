package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/go-logr/logr"
	"github.com/hiveden/linver/internal/hw"
	"github.com/hiveden/linver/internal/ui"
)

// Collector produces a system snapshot.
type Collector interface {
	Collect(ctx context.Context) hw.SystemSnapshot
}

// APIHandler serves the about information over HTTP.
type APIHandler struct {
	collector Collector
	assets    *ui.AssetResolver
	hardware  func() (*hw.HardwareSummary, error)
	log       logr.Logger
}

// NewAPIHandler returns a handler collecting from c and serving logos
// from assets.
func NewAPIHandler(c Collector, assets *ui.AssetResolver, log logr.Logger) *APIHandler {
	return &APIHandler{
		collector: c,
		assets:    assets,
		hardware:  hw.GetHardwareSummary,
		log:       log,
	}
}

// NewRouter registers every route on a new gin engine.
func NewRouter(h *APIHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.logRequests)

	r.GET("/about", h.GetAbout)
	r.GET("/hw", h.GetHardwareInfo)
	r.GET("/assets/:key", h.GetAsset)

	return r
}

func (h *APIHandler) logRequests(c *gin.Context) {
	c.Next()
	h.log.V(1).Info("request", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status())
}
