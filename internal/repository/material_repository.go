package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnbridge/internal/model"
)

// MaterialRepository defines persistence operations on study materials.
type MaterialRepository interface {
	Create(ctx context.Context, material *model.Material) error
	List(ctx context.Context) ([]model.Material, error)
	ListBySession(ctx context.Context, sessionID string) ([]model.Material, error)
	ListByTutor(ctx context.Context, tutorEmail string) ([]model.Material, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type materialRepository struct {
	db *gorm.DB
}

// NewMaterialRepository builds a GORM-backed repository.
func NewMaterialRepository(db *gorm.DB) MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) Create(ctx context.Context, material *model.Material) error {
	return r.db.WithContext(ctx).Create(material).Error
}

func (r *materialRepository) List(ctx context.Context) ([]model.Material, error) {
	var materials []model.Material
	if err := r.db.WithContext(ctx).Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

func (r *materialRepository) ListBySession(ctx context.Context, sessionID string) ([]model.Material, error) {
	var materials []model.Material
	if err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

func (r *materialRepository) ListByTutor(ctx context.Context, tutorEmail string) ([]model.Material, error) {
	var materials []model.Material
	if err := r.db.WithContext(ctx).Where("tutor_email = ?", tutorEmail).Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

func (r *materialRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Material{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *materialRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Material{})
	return res.RowsAffected, res.Error
}
