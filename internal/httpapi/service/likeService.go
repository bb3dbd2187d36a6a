package service

import (
	"context"
	"errors"

	"portfoliohub/internal/httpapi/dto"
	"portfoliohub/internal/httpapi/policy"
	"portfoliohub/internal/httpapi/repository"

	"gorm.io/gorm"
)

type LikeService interface {
	Toggle(ctx context.Context, actor policy.Actor, projectID int64) (*dto.LikeResponse, error)
}

type likeService struct {
	likeRepo    repository.LikeRepository
	projectRepo repository.ProjectRepository
}

func NewLikeService(likeRepo repository.LikeRepository, projectRepo repository.ProjectRepository) LikeService {
	return &likeService{
		likeRepo:    likeRepo,
		projectRepo: projectRepo,
	}
}

// Toggle flips the actor's like on a project and returns the post-toggle
// state with the derived count.
func (s *likeService) Toggle(ctx context.Context, actor policy.Actor, projectID int64) (*dto.LikeResponse, error) {
	if !actor.Authenticated() {
		return nil, ErrUnauthorized
	}

	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	liked, err := s.likeRepo.Toggle(actor.ID, projectID)
	if err != nil {
		return nil, err
	}

	count, err := s.likeRepo.CountByProject(projectID)
	if err != nil {
		return nil, err
	}

	return &dto.LikeResponse{Liked: liked, LikeCount: count}, nil
}
