package handler

import (
	"net/http"

	"anonchat/backend/internal/engine"
	"anonchat/backend/internal/hub"
	"anonchat/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Handler wires the HTTP surface to the hub and the engine.
type Handler struct {
	Hub       *hub.Manager
	Engine    *engine.Engine
	Store     *storage.Service
	jwtSecret []byte
}

func NewHandler(h *hub.Manager, e *engine.Engine, s *storage.Service, jwtSecret string) *Handler {
	return &Handler{
		Hub:       h,
		Engine:    e,
		Store:     s,
		jwtSecret: []byte(jwtSecret),
	}
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Stats reports live engine gauges plus the ops counters.
func (h *Handler) Stats(c *gin.Context) {
	counters, err := h.Store.Counters()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read counters"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"live":     h.Engine.Snapshot(),
		"counters": counters,
	})
}
