package models

import "time"

// About is a singleton: the table holds at most one row, maintained by
// upsert in the repository.
type About struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (About) TableName() string {
	return "about"
}
