package service

import (
	"context"
	"testing"

	"portfoliohub/internal/httpapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestNotificationService_Emit(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewNotificationService(repo)

	userID := "u1"
	projectID := int64(42)
	commentID := int64(7)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Notification")).
		Run(func(args mock.Arguments) {
			n := args.Get(1).(*models.Notification)
			n.ID = 3
			assert.Equal(t, "New Comment", n.Title)
			assert.False(t, n.IsRead)
			assert.Equal(t, &userID, n.UserID)
			assert.Equal(t, &projectID, n.ProjectID)
			assert.Equal(t, &commentID, n.CommentID)
		}).
		Return(nil)

	notification, err := svc.Emit(context.Background(), NotificationInput{
		Title:     "New Comment",
		Message:   "alice commented on \"Weather Station\"",
		UserID:    &userID,
		ProjectID: &projectID,
		CommentID: &commentID,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), notification.ID)
	repo.AssertExpectations(t)
}

func TestNotificationService_Delete_NotFound(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewNotificationService(repo)

	repo.On("Delete", mock.Anything, int64(99)).Return(gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewNotificationService(repo)

	repo.On("MarkAllRead", mock.Anything).Return(nil)

	assert.NoError(t, svc.MarkAllRead(context.Background()))
	repo.AssertExpectations(t)
}
