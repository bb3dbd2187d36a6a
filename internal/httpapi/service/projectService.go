package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"portfoliohub/internal/config"
	"portfoliohub/internal/httpapi/dto"
	"portfoliohub/internal/httpapi/models"
	"portfoliohub/internal/httpapi/policy"
	"portfoliohub/internal/httpapi/repository"

	"gorm.io/gorm"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrUnauthorized    = errors.New("operation not allowed")
	ErrInvalidCategory = errors.New("unknown project category")
)

// Landing page limits, matching what the page renders.
const (
	featuredLimit = 3
	recentLimit   = 6
)

const linkedinShareBase = "https://www.linkedin.com/sharing/share-offsite/?url="

type ProjectService interface {
	Home(ctx context.Context) (*dto.HomeResponse, error)
	ListPublished(ctx context.Context, filter repository.ProjectFilter) ([]dto.ProjectResponse, error)
	Detail(ctx context.Context, actor policy.Actor, id int64) (*dto.ProjectDetailResponse, error)
	ListAll(ctx context.Context, actor policy.Actor) ([]dto.ProjectResponse, error)
	Create(ctx context.Context, actor policy.Actor, form dto.ProjectForm, imagePath string) (*dto.ProjectResponse, error)
	Update(ctx context.Context, actor policy.Actor, id int64, form dto.ProjectForm, imagePath string) (*dto.ProjectResponse, error)
	Delete(ctx context.Context, actor policy.Actor, id int64) error
	ShareURL(ctx context.Context, id int64) (string, error)
}

type projectService struct {
	projectRepo repository.ProjectRepository
	commentRepo repository.CommentRepository
	likeRepo    repository.LikeRepository
	baseURL     string
}

func NewProjectService(
	projectRepo repository.ProjectRepository,
	commentRepo repository.CommentRepository,
	likeRepo repository.LikeRepository,
	cfg *config.Config,
) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		baseURL:     cfg.BaseURL,
	}
}

// Home returns the landing page selection: up to 3 featured and 6 recent
// published projects.
func (s *projectService) Home(ctx context.Context) (*dto.HomeResponse, error) {
	featured, err := s.projectRepo.Featured(ctx, featuredLimit)
	if err != nil {
		return nil, err
	}

	recent, err := s.projectRepo.Recent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	return &dto.HomeResponse{
		Featured: dto.FromModelsToProjectResponses(featured),
		Recent:   dto.FromModelsToProjectResponses(recent),
	}, nil
}

func (s *projectService) ListPublished(ctx context.Context, filter repository.ProjectFilter) ([]dto.ProjectResponse, error) {
	projects, err := s.projectRepo.ListPublished(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.FromModelsToProjectResponses(projects), nil
}

// Detail returns the full project page payload. Drafts are reported as
// not found to anyone who may not view them, so the response does not
// reveal that the id exists.
func (s *projectService) Detail(ctx context.Context, actor policy.Actor, id int64) (*dto.ProjectDetailResponse, error) {
	project, err := s.getProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.CanView(actor, project) {
		return nil, ErrProjectNotFound
	}

	comments, err := s.commentRepo.ListApprovedByProject(id)
	if err != nil {
		return nil, err
	}

	likeCount, err := s.likeRepo.CountByProject(id)
	if err != nil {
		return nil, err
	}

	liked := false
	if actor.Authenticated() {
		if liked, err = s.likeRepo.Exists(actor.ID, id); err != nil {
			return nil, err
		}
	}

	commentResponses := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		commentResponses = append(commentResponses, *dto.FromModelToCommentResponse(&comments[i]))
	}

	return &dto.ProjectDetailResponse{
		ProjectResponse: *dto.FromModelToProjectResponse(project),
		Content:         project.Content,
		LikeCount:       likeCount,
		Liked:           liked,
		Comments:        commentResponses,
	}, nil
}

func (s *projectService) ListAll(ctx context.Context, actor policy.Actor) ([]dto.ProjectResponse, error) {
	if !policy.CanMutate(actor) {
		return nil, ErrUnauthorized
	}

	projects, err := s.projectRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromModelsToProjectResponses(projects), nil
}

func (s *projectService) Create(ctx context.Context, actor policy.Actor, form dto.ProjectForm, imagePath string) (*dto.ProjectResponse, error) {
	if !policy.CanMutate(actor) {
		return nil, ErrUnauthorized
	}

	if form.Category != "" && !models.ValidCategory(form.Category) {
		return nil, ErrInvalidCategory
	}

	project := &models.Project{
		Title:       form.Title,
		Description: form.Description,
		Content:     form.Content,
		Category:    form.Category,
		Tags:        form.Tags,
		DemoURL:     form.DemoURL,
		GithubURL:   form.GithubURL,
		ImageURL:    imagePath,
		IsPublished: form.IsPublished,
		IsFeatured:  form.IsFeatured,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	return dto.FromModelToProjectResponse(project), nil
}

// Update merges the form into the stored project. The image reference is
// replaced only when a new upload came with the request; an empty
// imagePath keeps the previous one.
func (s *projectService) Update(ctx context.Context, actor policy.Actor, id int64, form dto.ProjectForm, imagePath string) (*dto.ProjectResponse, error) {
	if !policy.CanMutate(actor) {
		return nil, ErrUnauthorized
	}

	if form.Category != "" && !models.ValidCategory(form.Category) {
		return nil, ErrInvalidCategory
	}

	project, err := s.getProject(ctx, id)
	if err != nil {
		return nil, err
	}

	project.Title = form.Title
	project.Description = form.Description
	project.Content = form.Content
	project.Category = form.Category
	project.Tags = form.Tags
	project.DemoURL = form.DemoURL
	project.GithubURL = form.GithubURL
	project.IsPublished = form.IsPublished
	project.IsFeatured = form.IsFeatured
	if imagePath != "" {
		project.ImageURL = imagePath
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return dto.FromModelToProjectResponse(project), nil
}

func (s *projectService) Delete(ctx context.Context, actor policy.Actor, id int64) error {
	if !policy.CanMutate(actor) {
		return ErrUnauthorized
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return err
	}
	return nil
}

// ShareURL builds the LinkedIn share redirect for a published project.
// Drafts are never shareable, admin or not.
func (s *projectService) ShareURL(ctx context.Context, id int64) (string, error) {
	project, err := s.getProject(ctx, id)
	if err != nil {
		return "", err
	}

	if !project.IsPublished {
		return "", ErrProjectNotFound
	}

	projectURL := fmt.Sprintf("%s/project/%d", s.baseURL, project.ID)
	return linkedinShareBase + url.QueryEscape(projectURL), nil
}

func (s *projectService) getProject(ctx context.Context, id int64) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}
