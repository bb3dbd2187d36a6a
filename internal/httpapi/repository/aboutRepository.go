package repository

import (
	"errors"

	"portfoliohub/internal/httpapi/models"

	"gorm.io/gorm"
)

type AboutRepository interface {
	Get() (*models.About, error)
	Upsert(content string) error
}

type aboutRepository struct {
	db *gorm.DB
}

func NewAboutRepository(db *gorm.DB) AboutRepository {
	return &aboutRepository{db: db}
}

func (r *aboutRepository) Get() (*models.About, error) {
	var about models.About
	if err := r.db.First(&about).Error; err != nil {
		return nil, err
	}
	return &about, nil
}

// Upsert overwrites the singleton row, creating it the first time. The
// read-then-write runs in one transaction so the table never grows past
// a single row.
func (r *aboutRepository) Upsert(content string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var about models.About
		err := tx.First(&about).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&models.About{Content: content}).Error
		}
		if err != nil {
			return err
		}
		about.Content = content
		return tx.Save(&about).Error
	})
}
