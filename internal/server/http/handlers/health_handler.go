package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/givebox/internal/server/http/dto"
)

// HealthHandler exposes storage availability.
type HealthHandler struct {
	facade HealthFacade
}

func NewHealthHandler(facade HealthFacade) *HealthHandler {
	return &HealthHandler{facade: facade}
}

// Check handles GET /api/health.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.facade.HealthCheck(c.Request.Context()); err != nil {
		respondInternal(c, http.StatusServiceUnavailable, err, "storage unavailable")
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
