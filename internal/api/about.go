package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hiveden/linver/internal/branding"
	"github.com/hiveden/linver/internal/dialog"
	"github.com/hiveden/linver/internal/hw"
)

// AboutResponse is the body of GET /about.
type AboutResponse struct {
	Title    string                  `json:"title"`
	Version  string                  `json:"version"`
	Snapshot hw.SystemSnapshot       `json:"snapshot"`
	Profile  branding.DisplayProfile `json:"profile"`
}

// GetAbout handles the GET /about endpoint.
func (h *APIHandler) GetAbout(c *gin.Context) {
	snap := h.collector.Collect(c.Request.Context())
	profile := branding.Map(snap.DistroName)
	d := dialog.Build(snap, profile)

	c.JSON(http.StatusOK, AboutResponse{
		Title:    d.Title,
		Version:  dialog.VersionLine(snap.DistroVersion, snap.DistroCodename),
		Snapshot: snap,
		Profile:  profile,
	})
}

// GetAsset handles the GET /assets/{key} endpoint.
func (h *APIHandler) GetAsset(c *gin.Context) {
	path, ok := h.assets.Resolve(c.Param("key"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no logo available"})
		return
	}

	c.File(path)
}
