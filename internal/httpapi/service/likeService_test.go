package service

import (
	"context"
	"testing"

	"portfoliohub/internal/httpapi/models"
	"portfoliohub/internal/httpapi/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestLikeService_Toggle_LikeThenUnlike(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	projectRepo := new(MockProjectRepository)
	svc := NewLikeService(likeRepo, projectRepo)

	actor := policy.Actor{ID: "u1", Username: "alice"}
	projectRepo.On("GetByID", mock.Anything, int64(42)).
		Return(&models.Project{ID: 42, IsPublished: true}, nil)

	likeRepo.On("Toggle", "u1", int64(42)).Return(true, nil).Once()
	likeRepo.On("CountByProject", int64(42)).Return(int64(5), nil).Once()

	resp, err := svc.Toggle(context.Background(), actor, 42)
	assert.NoError(t, err)
	assert.True(t, resp.Liked)
	assert.Equal(t, int64(5), resp.LikeCount)

	likeRepo.On("Toggle", "u1", int64(42)).Return(false, nil).Once()
	likeRepo.On("CountByProject", int64(42)).Return(int64(4), nil).Once()

	resp, err = svc.Toggle(context.Background(), actor, 42)
	assert.NoError(t, err)
	assert.False(t, resp.Liked)
	assert.Equal(t, int64(4), resp.LikeCount)
	likeRepo.AssertExpectations(t)
}

func TestLikeService_Toggle_AnonymousRejected(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	projectRepo := new(MockProjectRepository)
	svc := NewLikeService(likeRepo, projectRepo)

	_, err := svc.Toggle(context.Background(), policy.Anonymous, 42)

	assert.ErrorIs(t, err, ErrUnauthorized)
	likeRepo.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything)
}

func TestLikeService_Toggle_ProjectMissing(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	projectRepo := new(MockProjectRepository)
	svc := NewLikeService(likeRepo, projectRepo)

	projectRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Toggle(context.Background(), policy.Actor{ID: "u1"}, 99)

	assert.ErrorIs(t, err, ErrProjectNotFound)
	likeRepo.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything)
}
