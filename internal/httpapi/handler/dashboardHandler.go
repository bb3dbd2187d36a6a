package handler

import (
	"errors"
	"net/http"

	"portfoliohub/internal/httpapi/middleware"
	"portfoliohub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns the admin dashboard counters and recent activity
// GET /admin
func (h *DashboardHandler) Stats(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	stats, err := h.dashboardService.Stats(c.Request.Context(), actor)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
