package service

import (
	"errors"

	"portfoliohub/internal/httpapi/policy"
	"portfoliohub/internal/httpapi/repository"

	"gorm.io/gorm"
)

// DefaultAboutContent is served while no about row exists yet.
const DefaultAboutContent = "Welcome to my portfolio! More information coming soon."

type AboutService interface {
	Content() (string, error)
	SetContent(actor policy.Actor, content string) error
	EnsureDefault() error
}

type aboutService struct {
	repo repository.AboutRepository
}

func NewAboutService(repo repository.AboutRepository) AboutService {
	return &aboutService{repo: repo}
}

// Content returns the about page text, or the default placeholder when
// none has been saved.
func (s *aboutService) Content() (string, error) {
	about, err := s.repo.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DefaultAboutContent, nil
		}
		return "", err
	}
	return about.Content, nil
}

func (s *aboutService) SetContent(actor policy.Actor, content string) error {
	if !policy.CanMutate(actor) {
		return ErrUnauthorized
	}
	return s.repo.Upsert(content)
}

// EnsureDefault seeds the singleton with the placeholder text on first
// start. Idempotent: an existing row, whatever its content, is left
// alone.
func (s *aboutService) EnsureDefault() error {
	_, err := s.repo.Get()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.repo.Upsert(DefaultAboutContent)
	}
	return err
}
