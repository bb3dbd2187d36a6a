package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"portfoliohub/internal/httpapi/dto"
	"portfoliohub/internal/httpapi/models"
	"portfoliohub/internal/httpapi/policy"
	"portfoliohub/internal/httpapi/repository"

	"gorm.io/gorm"
)

// Comment length bounds, counted in characters.
const (
	commentMinLen = 10
	commentMaxLen = 1000
)

var ErrCommentLength = fmt.Errorf("comment must be between %d and %d characters", commentMinLen, commentMaxLen)

type CommentService interface {
	Add(ctx context.Context, actor policy.Actor, projectID int64, content string) (*dto.CommentResponse, error)
	ListForProject(ctx context.Context, actor policy.Actor, projectID int64) ([]dto.CommentResponse, error)
}

type commentService struct {
	commentRepo   repository.CommentRepository
	projectRepo   repository.ProjectRepository
	notifications NotificationService
	logger        *slog.Logger
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	projectRepo repository.ProjectRepository,
	notifications NotificationService,
	logger *slog.Logger,
) CommentService {
	return &commentService{
		commentRepo:   commentRepo,
		projectRepo:   projectRepo,
		notifications: notifications,
		logger:        logger,
	}
}

// Add posts a comment on a project and records a notification for the
// admin. The notification is best-effort: a failure there is logged and
// the comment stays.
func (s *commentService) Add(ctx context.Context, actor policy.Actor, projectID int64, content string) (*dto.CommentResponse, error) {
	if !policy.CanComment(actor) {
		return nil, ErrUnauthorized
	}

	if n := utf8.RuneCountInString(content); n < commentMinLen || n > commentMaxLen {
		return nil, ErrCommentLength
	}

	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		Content:    content,
		UserID:     actor.ID,
		ProjectID:  project.ID,
		IsApproved: true,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	userID := actor.ID
	input := NotificationInput{
		Title:     "New Comment",
		Message:   fmt.Sprintf("%s commented on %q", actor.Username, project.Title),
		UserID:    &userID,
		ProjectID: &project.ID,
		CommentID: &comment.ID,
	}
	if _, err := s.notifications.Emit(ctx, input); err != nil {
		s.logger.Warn("failed to record new-comment notification",
			"comment_id", comment.ID, "project_id", project.ID, "error", err)
	}

	// Reload with user data
	comment, err = s.commentRepo.GetByID(comment.ID)
	if err != nil {
		return nil, err
	}

	return dto.FromModelToCommentResponse(comment), nil
}

// ListForProject retrieves the visible comments for a project, newest
// first. Drafts report not found to anyone who may not view them, same
// as the detail page.
func (s *commentService) ListForProject(ctx context.Context, actor policy.Actor, projectID int64) ([]dto.CommentResponse, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	if !policy.CanView(actor, project) {
		return nil, ErrProjectNotFound
	}

	comments, err := s.commentRepo.ListApprovedByProject(projectID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, *dto.FromModelToCommentResponse(&comments[i]))
	}
	return responses, nil
}
