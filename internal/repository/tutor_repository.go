package repository

import (
	"context"

	"gorm.io/gorm"

	"learnbridge/internal/model"
)

// TutorRepository defines persistence operations on tutor listings.
type TutorRepository interface {
	Create(ctx context.Context, tutor *model.Tutor) error
	List(ctx context.Context) ([]model.Tutor, error)
}

type tutorRepository struct {
	db *gorm.DB
}

// NewTutorRepository builds a GORM-backed repository.
func NewTutorRepository(db *gorm.DB) TutorRepository {
	return &tutorRepository{db: db}
}

func (r *tutorRepository) Create(ctx context.Context, tutor *model.Tutor) error {
	return r.db.WithContext(ctx).Create(tutor).Error
}

func (r *tutorRepository) List(ctx context.Context) ([]model.Tutor, error) {
	var tutors []model.Tutor
	if err := r.db.WithContext(ctx).Find(&tutors).Error; err != nil {
		return nil, err
	}
	return tutors, nil
}
