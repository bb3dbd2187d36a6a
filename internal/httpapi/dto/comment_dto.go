package dto

import (
	"time"

	"portfoliohub/internal/httpapi/models"
)

// CreateCommentRequest: payload for posting a comment on a project.
// Length bounds are enforced by the service so the same rule applies to
// every caller, not just this binding.
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommentResponse: a comment with its author resolved
type CommentResponse struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	UserID    string    `json:"user_id"`
	Author    string    `json:"author"`
	ProjectID int64     `json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
}

func FromModelToCommentResponse(c *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		UserID:    c.UserID,
		Author:    c.User.Username,
		ProjectID: c.ProjectID,
		CreatedAt: c.CreatedAt,
	}
}
