package handler

import (
	"errors"
	"net/http"
	"strconv"

	"portfoliohub/internal/httpapi/middleware"
	"portfoliohub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeService service.LikeService
}

func NewLikeHandler(likeService service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// Toggle flips the current user's like on a project and returns the new
// state with the count
// POST /like_project/:id
func (h *LikeHandler) Toggle(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	actor := middleware.CurrentActor(c)
	result, err := h.likeService.Toggle(c.Request.Context(), actor, projectID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		case errors.Is(err, service.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in to like projects"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
