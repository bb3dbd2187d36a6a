package repository

import (
	"portfoliohub/internal/httpapi/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(commentID int64) (*models.Comment, error)
	ListApprovedByProject(projectID int64) ([]models.Comment, error)
	Recent(limit int) ([]models.Comment, error)
	Count() (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create a new comment
func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID retrieves a comment by its ID with the author preloaded
func (r *commentRepository) GetByID(commentID int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("id = ?", commentID).
		Preload("User").
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListApprovedByProject retrieves the visible comments for a project,
// newest first, with their authors preloaded.
func (r *commentRepository) ListApprovedByProject(projectID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("project_id = ? AND is_approved = ?", projectID, true).
		Preload("User").
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Recent retrieves the latest comments across all projects (admin
// dashboard).
func (r *commentRepository) Recent(limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Comment{}).Count(&total).Error
	return total, err
}
