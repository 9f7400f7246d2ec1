package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnbridge/internal/model"
)

// NoteRepository defines persistence operations on notes.
type NoteRepository interface {
	Create(ctx context.Context, note *model.Note) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Note, error)
	ListByEmail(ctx context.Context, email string) ([]model.Note, error)
	Save(ctx context.Context, note *model.Note) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository builds a GORM-backed repository.
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Note, error) {
	var note model.Note
	if err := r.db.WithContext(ctx).First(&note, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) ListByEmail(ctx context.Context, email string) ([]model.Note, error) {
	var notes []model.Note
	if err := r.db.WithContext(ctx).Where("email = ?", email).Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepository) Save(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Save(note).Error
}

func (r *noteRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Note{})
	return res.RowsAffected, res.Error
}
