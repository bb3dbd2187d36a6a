package service

import (
	"context"

	"portfoliohub/internal/httpapi/dto"
	"portfoliohub/internal/httpapi/policy"
	"portfoliohub/internal/httpapi/repository"
)

// How many of each recent item the dashboard shows.
const recentActivityLimit = 5

type DashboardService interface {
	Stats(ctx context.Context, actor policy.Actor) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	projectRepo      repository.ProjectRepository
	commentRepo      repository.CommentRepository
	likeRepo         repository.LikeRepository
	notificationRepo repository.NotificationRepository
}

func NewDashboardService(
	projectRepo repository.ProjectRepository,
	commentRepo repository.CommentRepository,
	likeRepo repository.LikeRepository,
	notificationRepo repository.NotificationRepository,
) DashboardService {
	return &dashboardService{
		projectRepo:      projectRepo,
		commentRepo:      commentRepo,
		likeRepo:         likeRepo,
		notificationRepo: notificationRepo,
	}
}

// Stats assembles the admin landing page counters and recent activity.
func (s *dashboardService) Stats(ctx context.Context, actor policy.Actor) (*dto.DashboardResponse, error) {
	if !policy.CanMutate(actor) {
		return nil, ErrUnauthorized
	}

	totalProjects, err := s.projectRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	publishedProjects, err := s.projectRepo.CountPublished(ctx)
	if err != nil {
		return nil, err
	}
	totalComments, err := s.commentRepo.Count()
	if err != nil {
		return nil, err
	}
	totalLikes, err := s.likeRepo.Count()
	if err != nil {
		return nil, err
	}
	unread, err := s.notificationRepo.CountUnread(ctx)
	if err != nil {
		return nil, err
	}

	recentProjects, err := s.projectRepo.RecentAll(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	recentComments, err := s.commentRepo.Recent(recentActivityLimit)
	if err != nil {
		return nil, err
	}
	recentNotifications, err := s.notificationRepo.Recent(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	commentResponses := make([]dto.CommentResponse, 0, len(recentComments))
	for i := range recentComments {
		commentResponses = append(commentResponses, *dto.FromModelToCommentResponse(&recentComments[i]))
	}

	return &dto.DashboardResponse{
		TotalProjects:       totalProjects,
		PublishedProjects:   publishedProjects,
		TotalComments:       totalComments,
		TotalLikes:          totalLikes,
		UnreadNotifications: unread,
		RecentProjects:      dto.FromModelsToProjectResponses(recentProjects),
		RecentComments:      commentResponses,
		RecentNotifications: recentNotifications,
	}, nil
}
