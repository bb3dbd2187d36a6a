package repository

import (
	"context"
	"fmt"

	"portfoliohub/internal/httpapi/models"

	"gorm.io/gorm"
)

// ProjectFilter narrows the public project listing. Category is an exact
// match; Search is a substring match against title OR description. Both
// combine with AND.
type ProjectFilter struct {
	Category string
	Search   string
}

type ProjectRepository interface {
	Create(ctx context.Context, p *models.Project) error
	Update(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	ListPublished(ctx context.Context, filter ProjectFilter) ([]models.Project, error)
	ListAll(ctx context.Context) ([]models.Project, error)
	Featured(ctx context.Context, limit int) ([]models.Project, error)
	Recent(ctx context.Context, limit int) ([]models.Project, error)
	RecentAll(ctx context.Context, limit int) ([]models.Project, error)
	Count(ctx context.Context) (int64, error)
	CountPublished(ctx context.Context) (int64, error)
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, p *models.Project) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	// GORM populates p.ID and the timestamps
	return nil
}

func (r *projectRepository) Update(ctx context.Context, p *models.Project) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete removes the project; comments and likes go with it via the
// ON DELETE CASCADE constraints on their foreign keys.
func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Project{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	var p models.Project
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepository) ListPublished(ctx context.Context, filter ProjectFilter) ([]models.Project, error) {
	var list []models.Project
	q := r.db.WithContext(ctx).Where("is_published = ?", true)

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list published projects: %w", err)
	}
	return list, nil
}

func (r *projectRepository) ListAll(ctx context.Context) ([]models.Project, error) {
	var list []models.Project
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return list, nil
}

func (r *projectRepository) Featured(ctx context.Context, limit int) ([]models.Project, error) {
	var list []models.Project
	err := r.db.WithContext(ctx).
		Where("is_published = ? AND is_featured = ?", true, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list featured projects: %w", err)
	}
	return list, nil
}

func (r *projectRepository) Recent(ctx context.Context, limit int) ([]models.Project, error) {
	var list []models.Project
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list recent projects: %w", err)
	}
	return list, nil
}

// RecentAll is the admin variant of Recent: drafts included.
func (r *projectRepository) RecentAll(ctx context.Context, limit int) ([]models.Project, error) {
	var list []models.Project
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list recent projects: %w", err)
	}
	return list, nil
}

func (r *projectRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).Count(&total).Error
	return total, err
}

func (r *projectRepository) CountPublished(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("is_published = ?", true).
		Count(&total).Error
	return total, err
}
