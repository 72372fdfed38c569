package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/seblak-listyaning/store"
)

type HealthController struct {
	Storage store.Kind
}

// Health GET /health
func (hc *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "storage": hc.Storage})
}
