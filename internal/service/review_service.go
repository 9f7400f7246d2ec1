package service

import (
	"context"

	"learnbridge/internal/model"
	"learnbridge/internal/repository"
)

// ReviewService handles session review operations.
type ReviewService interface {
	Create(ctx context.Context, review *model.Review) error
	ListBySession(ctx context.Context, sessionID string) ([]model.Review, error)
}

type reviewService struct {
	repo repository.ReviewRepository
}

// NewReviewService creates a new review service.
func NewReviewService(repo repository.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

func (s *reviewService) Create(ctx context.Context, review *model.Review) error {
	return s.repo.Create(ctx, review)
}

func (s *reviewService) ListBySession(ctx context.Context, sessionID string) ([]model.Review, error) {
	return s.repo.ListBySession(ctx, sessionID)
}
