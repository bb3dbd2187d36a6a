package service

import (
	"context"
	"errors"

	"portfoliohub/internal/httpapi/models"
	"portfoliohub/internal/httpapi/repository"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationInput describes an event to append to the admin
// notification log. The id references are optional back-links for
// lookup, never ownership.
type NotificationInput struct {
	Title     string
	Message   string
	UserID    *string
	ProjectID *int64
	CommentID *int64
}

type NotificationService interface {
	Emit(ctx context.Context, input NotificationInput) (*models.Notification, error)
	List(ctx context.Context) ([]models.Notification, error)
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id int64) error
	CountUnread(ctx context.Context) (int64, error)
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

// Emit appends an unread notification row.
func (s *notificationService) Emit(ctx context.Context, input NotificationInput) (*models.Notification, error) {
	notification := &models.Notification{
		Title:     input.Title,
		Message:   input.Message,
		UserID:    input.UserID,
		ProjectID: input.ProjectID,
		CommentID: input.CommentID,
	}

	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (s *notificationService) List(ctx context.Context) ([]models.Notification, error) {
	return s.repo.List(ctx)
}

// MarkAllRead flips every unread notification. The admin list view calls
// this right after List, on purpose; keeping it a separate call leaves
// the read-for-display path free of side effects.
func (s *notificationService) MarkAllRead(ctx context.Context) error {
	return s.repo.MarkAllRead(ctx)
}

func (s *notificationService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}

func (s *notificationService) CountUnread(ctx context.Context) (int64, error) {
	return s.repo.CountUnread(ctx)
}
