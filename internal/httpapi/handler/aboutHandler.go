package handler

import (
	"errors"
	"net/http"

	"portfoliohub/internal/httpapi/dto"
	"portfoliohub/internal/httpapi/middleware"
	"portfoliohub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type AboutHandler struct {
	aboutService service.AboutService
}

func NewAboutHandler(aboutService service.AboutService) *AboutHandler {
	return &AboutHandler{aboutService: aboutService}
}

// Show returns the about page content, falling back to the default
// placeholder when nothing has been saved yet
// GET /about, GET /admin/about
func (h *AboutHandler) Show(c *gin.Context) {
	content, err := h.aboutService.Content()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load about content"})
		return
	}
	c.JSON(http.StatusOK, dto.AboutResponse{Content: content})
}

// Update replaces the about page content
// POST /admin/about
func (h *AboutHandler) Update(c *gin.Context) {
	var req dto.UpdateAboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := middleware.CurrentActor(c)
	if err := h.aboutService.SetContent(actor, req.Content); err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update about content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "About section updated successfully"})
}
