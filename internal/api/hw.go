package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHardwareInfo handles the GET /hw endpoint.
func (h *APIHandler) GetHardwareInfo(c *gin.Context) {
	summary, err := h.hardware()
	if err != nil {
		h.log.Error(err, "hardware query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
