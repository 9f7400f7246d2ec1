package service

import (
	"context"

	"learnbridge/internal/model"
	"learnbridge/internal/repository"
)

// TutorService handles tutor listing operations.
type TutorService interface {
	Create(ctx context.Context, tutor *model.Tutor) error
	List(ctx context.Context) ([]model.Tutor, error)
}

type tutorService struct {
	repo repository.TutorRepository
}

// NewTutorService creates a new tutor service.
func NewTutorService(repo repository.TutorRepository) TutorService {
	return &tutorService{repo: repo}
}

func (s *tutorService) Create(ctx context.Context, tutor *model.Tutor) error {
	return s.repo.Create(ctx, tutor)
}

func (s *tutorService) List(ctx context.Context) ([]model.Tutor, error) {
	return s.repo.List(ctx)
}
