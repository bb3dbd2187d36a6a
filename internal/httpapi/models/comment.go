package models

import "time"

type Comment struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Content    string    `json:"content" gorm:"not null;type:text"`
	IsApproved bool      `json:"is_approved" gorm:"default:true;not null"`
	UserID     string    `json:"user_id" gorm:"type:uuid;not null;index"`
	ProjectID  int64     `json:"project_id" gorm:"not null;index"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;"`
}

func (Comment) TableName() string {
	return "comments"
}
