package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "learnbridge/internal/errors"
	"learnbridge/internal/model"
)

// MockNoteRepository is a mock implementation of NoteRepository.
type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) Create(ctx context.Context, note *model.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}

func (m *MockNoteRepository) ListByEmail(ctx context.Context, email string) ([]model.Note, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Note), args.Error(1)
}

func (m *MockNoteRepository) Save(ctx context.Context, note *model.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestNoteService_Update_SnapshotsPreviousVersion(t *testing.T) {
	noteID := uuid.New()

	mockRepo := new(MockNoteRepository)
	mockRepo.On("FindByID", mock.Anything, noteID).Return(&model.Note{
		ID:          noteID,
		Email:       "a@b.com",
		Title:       "old title",
		Description: "old body",
	}, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Note")).Return(nil)

	note, err := NewNoteService(mockRepo).Update(context.Background(), noteID, "new title", "new body")
	assert.NoError(t, err)
	assert.Equal(t, "new title", note.Title)
	assert.Equal(t, "new body", note.Description)

	// the old content survives in history
	assert.Len(t, note.PreviousVersions, 1)
	assert.Equal(t, "old title", note.PreviousVersions[0].Title)
	assert.Equal(t, "old body", note.PreviousVersions[0].Description)
	mockRepo.AssertExpectations(t)
}

func TestNoteService_Update_NotFound(t *testing.T) {
	noteID := uuid.New()

	mockRepo := new(MockNoteRepository)
	mockRepo.On("FindByID", mock.Anything, noteID).Return(nil, gorm.ErrRecordNotFound)

	note, err := NewNoteService(mockRepo).Update(context.Background(), noteID, "t", "d")
	assert.Nil(t, note)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestNoteService_Delete(t *testing.T) {
	noteID := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		mockRepo := new(MockNoteRepository)
		mockRepo.On("Delete", mock.Anything, noteID).Return(int64(1), nil)
		assert.NoError(t, NewNoteService(mockRepo).Delete(context.Background(), noteID))
	})

	t.Run("absent", func(t *testing.T) {
		mockRepo := new(MockNoteRepository)
		mockRepo.On("Delete", mock.Anything, noteID).Return(int64(0), nil)
		assert.ErrorIs(t, NewNoteService(mockRepo).Delete(context.Background(), noteID), apperrors.ErrNotFound)
	})
}
