package repository

import (
	"errors"

	"portfoliohub/internal/httpapi/models"

	"gorm.io/gorm"
)

type LikeRepository interface {
	Toggle(userID string, projectID int64) (liked bool, err error)
	CountByProject(projectID int64) (int64, error)
	Exists(userID string, projectID int64) (bool, error)
	Count() (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Toggle deletes the like row for (user, project) if it exists, otherwise
// inserts one. The read-then-write runs in a single transaction; if a
// concurrent request wins the insert race, the unique index on
// (user_id, project_id) rejects ours and the row already holds the state
// the caller asked for, so the conflict is reported as liked rather than
// as an error.
func (r *likeRepository) Toggle(userID string, projectID int64) (bool, error) {
	var liked bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Like
		err := tx.Where("user_id = ? AND project_id = ?", userID, projectID).
			First(&existing).Error
		switch {
		case err == nil:
			liked = false
			return tx.Delete(&existing).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			liked = true
			return tx.Create(&models.Like{UserID: userID, ProjectID: projectID}).Error
		default:
			return err
		}
	})
	if err != nil {
		if IsUniqueViolation(err) {
			return true, nil
		}
		return false, err
	}
	return liked, nil
}

func (r *likeRepository) CountByProject(projectID int64) (int64, error) {
	var total int64
	err := r.db.Model(&models.Like{}).
		Where("project_id = ?", projectID).
		Count(&total).Error
	return total, err
}

func (r *likeRepository) Exists(userID string, projectID int64) (bool, error) {
	var total int64
	err := r.db.Model(&models.Like{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Count(&total).Error
	return total > 0, err
}

func (r *likeRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Like{}).Count(&total).Error
	return total, err
}
