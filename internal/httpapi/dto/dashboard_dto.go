package dto

import "portfoliohub/internal/httpapi/models"

// DashboardResponse: the admin landing page counters plus the latest
// activity in each area.
type DashboardResponse struct {
	TotalProjects       int64 `json:"total_projects"`
	PublishedProjects   int64 `json:"published_projects"`
	TotalComments       int64 `json:"total_comments"`
	TotalLikes          int64 `json:"total_likes"`
	UnreadNotifications int64 `json:"unread_notifications"`

	RecentProjects      []ProjectResponse     `json:"recent_projects"`
	RecentComments      []CommentResponse     `json:"recent_comments"`
	RecentNotifications []models.Notification `json:"recent_notifications"`
}
