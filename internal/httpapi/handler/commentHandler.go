package handler

import (
	"errors"
	"net/http"
	"strconv"

	"portfoliohub/internal/httpapi/dto"
	"portfoliohub/internal/httpapi/middleware"
	"portfoliohub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create posts a comment on a project
// POST /project/:id/comment
func (h *CommentHandler) Create(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := middleware.CurrentActor(c)
	comment, err := h.commentService.Add(c.Request.Context(), actor, projectID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCommentLength):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		case errors.Is(err, service.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in to comment"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		}
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// List returns the visible comments for a project. Drafts 404 for
// anyone but admins, matching Detail.
// GET /project/:id/comments
func (h *CommentHandler) List(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	actor := middleware.CurrentActor(c)
	comments, err := h.commentService.ListForProject(c.Request.Context(), actor, projectID)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}
