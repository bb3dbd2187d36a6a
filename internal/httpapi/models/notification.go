package models

import "time"

type Notification struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"default:false;not null" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Weak back-references for admin lookup. They never own the row:
	// deleting the referenced entity nulls the column and keeps the
	// notification.
	UserID    *string `gorm:"type:uuid;index" json:"user_id,omitempty"`
	ProjectID *int64  `gorm:"index" json:"project_id,omitempty"`
	CommentID *int64  `json:"comment_id,omitempty"`

	// Associations
	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL;" json:"user,omitempty"`
	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL;" json:"project,omitempty"`
	Comment *Comment `gorm:"foreignKey:CommentID;constraint:OnDelete:SET NULL;" json:"comment,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
