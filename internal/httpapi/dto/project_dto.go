package dto

import (
	"time"

	"portfoliohub/internal/httpapi/models"
)

// ProjectForm: multipart form payload for creating or editing a project.
// The image travels as a separate file part and is handled by the
// upload store, not bound here.
type ProjectForm struct {
	Title       string `form:"title" binding:"required,max=200"`
	Description string `form:"description" binding:"required"`
	Content     string `form:"content"`
	Category    string `form:"category"`
	Tags        string `form:"tags"`
	DemoURL     string `form:"demo_url"`
	GithubURL   string `form:"github_url"`
	IsPublished bool   `form:"is_published"`
	IsFeatured  bool   `form:"is_featured"`
}

// ProjectResponse: a project as listed publicly
type ProjectResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`
	DemoURL     string    `json:"demo_url,omitempty"`
	GithubURL   string    `json:"github_url,omitempty"`
	Category    string    `json:"category,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	IsPublished bool      `json:"is_published"`
	IsFeatured  bool      `json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectDetailResponse: the full project page payload, including the
// rich content body, the visible comments and the like state for the
// requesting actor.
type ProjectDetailResponse struct {
	ProjectResponse
	Content   string            `json:"content,omitempty"`
	LikeCount int64             `json:"like_count"`
	Liked     bool              `json:"liked"`
	Comments  []CommentResponse `json:"comments"`
}

// HomeResponse: featured and recent published projects for the landing
// page.
type HomeResponse struct {
	Featured []ProjectResponse `json:"featured"`
	Recent   []ProjectResponse `json:"recent"`
}

func FromModelToProjectResponse(p *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		DemoURL:     p.DemoURL,
		GithubURL:   p.GithubURL,
		Category:    p.Category,
		Tags:        p.TagList(),
		IsPublished: p.IsPublished,
		IsFeatured:  p.IsFeatured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromModelsToProjectResponses(projects []models.Project) []ProjectResponse {
	responses := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, *FromModelToProjectResponse(&projects[i]))
	}
	return responses
}
