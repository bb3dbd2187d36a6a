package models

import "time"

// Like records one user liking one project. The composite unique index is
// the invariant: at most one row per (user, project), toggled rather than
// counted up.
type Like struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:uniq_user_project_like,priority:1"`
	ProjectID int64     `json:"project_id" gorm:"not null;uniqueIndex:uniq_user_project_like,priority:2"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;"`
}

func (Like) TableName() string {
	return "likes"
}
