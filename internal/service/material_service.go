package service

import (
	"context"

	"github.com/google/uuid"

	apperrors "learnbridge/internal/errors"
	"learnbridge/internal/model"
	"learnbridge/internal/repository"
)

// MaterialService handles study material operations.
type MaterialService interface {
	Create(ctx context.Context, material *model.Material) error
	List(ctx context.Context) ([]model.Material, error)
	ListBySession(ctx context.Context, sessionID string) ([]model.Material, error)
	ListByTutor(ctx context.Context, tutorEmail string) ([]model.Material, error)
	Update(ctx context.Context, id uuid.UUID, title, image, link string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type materialService struct {
	repo repository.MaterialRepository
}

// NewMaterialService creates a new material service.
func NewMaterialService(repo repository.MaterialRepository) MaterialService {
	return &materialService{repo: repo}
}

func (s *materialService) Create(ctx context.Context, material *model.Material) error {
	return s.repo.Create(ctx, material)
}

func (s *materialService) List(ctx context.Context) ([]model.Material, error) {
	return s.repo.List(ctx)
}

func (s *materialService) ListBySession(ctx context.Context, sessionID string) ([]model.Material, error) {
	return s.repo.ListBySession(ctx, sessionID)
}

func (s *materialService) ListByTutor(ctx context.Context, tutorEmail string) ([]model.Material, error) {
	return s.repo.ListByTutor(ctx, tutorEmail)
}

func (s *materialService) Update(ctx context.Context, id uuid.UUID, title, image, link string) error {
	rows, err := s.repo.Update(ctx, id, map[string]interface{}{
		"title": title,
		"image": image,
		"link":  link,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *materialService) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
