package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"portfoliohub/internal/httpapi/models"
	"portfoliohub/internal/httpapi/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCommentService_Add_Success(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	projectRepo := new(MockProjectRepository)
	notifications := new(MockNotificationSink)
	svc := NewCommentService(commentRepo, projectRepo, notifications, discardLogger())

	actor := policy.Actor{ID: "u1", Username: "alice"}
	project := &models.Project{ID: 42, Title: "Weather Station", IsPublished: true}
	projectRepo.On("GetByID", mock.Anything, int64(42)).Return(project, nil)

	commentRepo.On("Create", mock.AnythingOfType("*models.Comment")).
		Run(func(args mock.Arguments) {
			c := args.Get(0).(*models.Comment)
			c.ID = 7
			assert.True(t, c.IsApproved)
		}).
		Return(nil)

	notifications.On("Emit", mock.Anything, mock.AnythingOfType("service.NotificationInput")).
		Return(&models.Notification{ID: 1}, nil)

	saved := &models.Comment{
		ID:        7,
		Content:   "This is a great project!",
		UserID:    "u1",
		ProjectID: 42,
		User:      models.User{ID: "u1", Username: "alice"},
	}
	commentRepo.On("GetByID", int64(7)).Return(saved, nil)

	resp, err := svc.Add(context.Background(), actor, 42, "This is a great project!")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "alice", resp.Author)
	assert.Equal(t, int64(42), resp.ProjectID)
	commentRepo.AssertExpectations(t)
	notifications.AssertExpectations(t)
}

func TestCommentService_Add_NotificationFailureKeepsComment(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	projectRepo := new(MockProjectRepository)
	notifications := new(MockNotificationSink)
	svc := NewCommentService(commentRepo, projectRepo, notifications, discardLogger())

	actor := policy.Actor{ID: "u1", Username: "alice"}
	projectRepo.On("GetByID", mock.Anything, int64(42)).
		Return(&models.Project{ID: 42, Title: "Weather Station"}, nil)
	commentRepo.On("Create", mock.AnythingOfType("*models.Comment")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.Comment).ID = 7
		}).
		Return(nil)
	notifications.On("Emit", mock.Anything, mock.AnythingOfType("service.NotificationInput")).
		Return(nil, errors.New("notifications table is on fire"))
	commentRepo.On("GetByID", int64(7)).Return(&models.Comment{
		ID:        7,
		Content:   "This is a great project!",
		UserID:    "u1",
		ProjectID: 42,
		User:      models.User{Username: "alice"},
	}, nil)

	resp, err := svc.Add(context.Background(), actor, 42, "This is a great project!")

	// The comment survives a failed notification write.
	assert.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
}

func TestCommentService_Add_LengthBounds(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	projectRepo := new(MockProjectRepository)
	notifications := new(MockNotificationSink)
	svc := NewCommentService(commentRepo, projectRepo, notifications, discardLogger())

	actor := policy.Actor{ID: "u1", Username: "alice"}

	cases := []struct {
		name    string
		content string
		wantErr error
	}{
		{"nine chars rejected", strings.Repeat("a", 9), ErrCommentLength},
		{"over a thousand rejected", strings.Repeat("a", 1001), ErrCommentLength},
		{"multibyte runes counted as characters", strings.Repeat("é", 9), ErrCommentLength},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(context.Background(), actor, 42, tc.content)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
	commentRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCommentService_Add_BoundaryLengthsAccepted(t *testing.T) {
	for _, n := range []int{10, 1000} {
		commentRepo := new(MockCommentRepository)
		projectRepo := new(MockProjectRepository)
		notifications := new(MockNotificationSink)
		svc := NewCommentService(commentRepo, projectRepo, notifications, discardLogger())

		projectRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&models.Project{ID: 1, Title: "P"}, nil)
		commentRepo.On("Create", mock.AnythingOfType("*models.Comment")).
			Run(func(args mock.Arguments) {
				args.Get(0).(*models.Comment).ID = 1
			}).
			Return(nil)
		notifications.On("Emit", mock.Anything, mock.Anything).
			Return(&models.Notification{}, nil)
		commentRepo.On("GetByID", int64(1)).
			Return(&models.Comment{ID: 1, ProjectID: 1}, nil)

		_, err := svc.Add(context.Background(), policy.Actor{ID: "u1"}, 1, strings.Repeat("a", n))
		assert.NoError(t, err, "length %d should be accepted", n)
	}
}

func TestCommentService_Add_AnonymousRejected(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	projectRepo := new(MockProjectRepository)
	svc := NewCommentService(commentRepo, projectRepo, new(MockNotificationSink), discardLogger())

	_, err := svc.Add(context.Background(), policy.Anonymous, 42, "This is a great project!")

	assert.ErrorIs(t, err, ErrUnauthorized)
	projectRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCommentService_Add_ProjectMissing(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	projectRepo := new(MockProjectRepository)
	svc := NewCommentService(commentRepo, projectRepo, new(MockNotificationSink), discardLogger())

	projectRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Add(context.Background(), policy.Actor{ID: "u1"}, 99, "This is a great project!")

	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestCommentService_ListForProject(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	projectRepo := new(MockProjectRepository)
	svc := NewCommentService(commentRepo, projectRepo, new(MockNotificationSink), discardLogger())

	projectRepo.On("GetByID", mock.Anything, int64(42)).
		Return(&models.Project{ID: 42, IsPublished: true}, nil)
	commentRepo.On("ListApprovedByProject", int64(42)).Return([]models.Comment{
		{ID: 2, Content: "second comment here", User: models.User{Username: "bob"}, ProjectID: 42},
		{ID: 1, Content: "first comment here!", User: models.User{Username: "alice"}, ProjectID: 42},
	}, nil)

	comments, err := svc.ListForProject(context.Background(), policy.Anonymous, 42)

	assert.NoError(t, err)
	assert.Len(t, comments, 2)
	assert.Equal(t, "bob", comments[0].Author)
	assert.Equal(t, "alice", comments[1].Author)
}

func TestCommentService_ListForProject_ProjectMissing(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	projectRepo := new(MockProjectRepository)
	svc := NewCommentService(commentRepo, projectRepo, new(MockNotificationSink), discardLogger())

	projectRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ListForProject(context.Background(), policy.Anonymous, 99)

	assert.ErrorIs(t, err, ErrProjectNotFound)
	commentRepo.AssertNotCalled(t, "ListApprovedByProject", mock.Anything)
}

func TestCommentService_ListForProject_DraftHiddenFromAnonymous(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	projectRepo := new(MockProjectRepository)
	svc := NewCommentService(commentRepo, projectRepo, new(MockNotificationSink), discardLogger())

	projectRepo.On("GetByID", mock.Anything, int64(5)).
		Return(&models.Project{ID: 5, Title: "Draft", IsPublished: false}, nil)

	_, err := svc.ListForProject(context.Background(), policy.Anonymous, 5)

	// Same error as a missing id, so the draft's existence stays hidden.
	assert.ErrorIs(t, err, ErrProjectNotFound)
	commentRepo.AssertNotCalled(t, "ListApprovedByProject", mock.Anything)
}

func TestCommentService_ListForProject_DraftVisibleToAdmin(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	projectRepo := new(MockProjectRepository)
	svc := NewCommentService(commentRepo, projectRepo, new(MockNotificationSink), discardLogger())

	projectRepo.On("GetByID", mock.Anything, int64(5)).
		Return(&models.Project{ID: 5, Title: "Draft", IsPublished: false}, nil)
	commentRepo.On("ListApprovedByProject", int64(5)).Return([]models.Comment{
		{ID: 1, Content: "note on the draft.", User: models.User{Username: "alice"}, ProjectID: 5},
	}, nil)

	admin := policy.Actor{ID: "a1", Username: "admin", IsAdmin: true}
	comments, err := svc.ListForProject(context.Background(), admin, 5)

	assert.NoError(t, err)
	assert.Len(t, comments, 1)
}
