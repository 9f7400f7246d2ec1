package repository

import (
	"context"

	"gorm.io/gorm"

	"learnbridge/internal/model"
)

// ReviewRepository defines persistence operations on session reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	ListBySession(ctx context.Context, sessionID string) ([]model.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository builds a GORM-backed repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) ListBySession(ctx context.Context, sessionID string) ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
