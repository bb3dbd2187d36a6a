package models

import (
	"strings"
	"time"
)

// Categories a project can be filed under. The list is fixed; anything
// else is rejected at the form boundary.
var ProjectCategories = []string{"web", "mobile", "desktop", "data", "ai", "other"}

type Project struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Content     string    `json:"content,omitempty" gorm:"type:text"`
	ImageURL    string    `json:"image_url,omitempty" gorm:"size:500"`
	DemoURL     string    `json:"demo_url,omitempty" gorm:"size:500"`
	GithubURL   string    `json:"github_url,omitempty" gorm:"size:500"`
	Category    string    `json:"category,omitempty" gorm:"size:100;index"`
	Tags        string    `json:"tags,omitempty" gorm:"size:500"` // Comma-separated tags
	IsPublished bool      `json:"is_published" gorm:"default:false;index"`
	IsFeatured  bool      `json:"is_featured" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Project) TableName() string {
	return "projects"
}

// TagList splits the comma-separated tag column into trimmed entries.
func (p *Project) TagList() []string {
	if p.Tags == "" {
		return nil
	}
	parts := strings.Split(p.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, t := range parts {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// ValidCategory reports whether c is one of the known project categories.
func ValidCategory(c string) bool {
	for _, known := range ProjectCategories {
		if c == known {
			return true
		}
	}
	return false
}
