package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "learnbridge/internal/errors"
	"learnbridge/internal/model"
	"learnbridge/internal/repository"
)

// NoteService handles personal note operations, including version history.
type NoteService interface {
	Create(ctx context.Context, note *model.Note) error
	ListByEmail(ctx context.Context, email string) ([]model.Note, error)
	Update(ctx context.Context, id uuid.UUID, title, description string) (*model.Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type noteService struct {
	repo repository.NoteRepository
}

// NewNoteService creates a new note service.
func NewNoteService(repo repository.NoteRepository) NoteService {
	return &noteService{repo: repo}
}

func (s *noteService) Create(ctx context.Context, note *model.Note) error {
	return s.repo.Create(ctx, note)
}

func (s *noteService) ListByEmail(ctx context.Context, email string) ([]model.Note, error) {
	return s.repo.ListByEmail(ctx, email)
}

// Update replaces title and description, snapshotting the previous content
// onto the version history first.
func (s *noteService) Update(ctx context.Context, id uuid.UUID, title, description string) (*model.Note, error) {
	note, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	note.PreviousVersions = append(note.PreviousVersions, model.NoteVersion{
		Title:       note.Title,
		Description: note.Description,
		UpdatedAt:   time.Now(),
	})
	note.Title = title
	note.Description = description

	if err := s.repo.Save(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
