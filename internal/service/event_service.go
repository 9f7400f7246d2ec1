package service

import (
	"context"
	"errors"
	"slices"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "learnbridge/internal/errors"
	"learnbridge/internal/model"
	"learnbridge/internal/repository"
)

// ErrAlreadyJoined is returned when a user joins an event twice.
var ErrAlreadyJoined = errors.New("User has already joined this event")

// EventService handles community event operations.
type EventService interface {
	Create(ctx context.Context, event *model.Event) error
	List(ctx context.Context) ([]model.Event, error)
	Join(ctx context.Context, id uuid.UUID, userID string) error
	ListByCreator(ctx context.Context, creatorEmail string) ([]model.Event, error)
	ListJoined(ctx context.Context, userID string) ([]model.Event, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventService struct {
	repo repository.EventRepository
}

// NewEventService creates a new event service.
func NewEventService(repo repository.EventRepository) EventService {
	return &eventService{repo: repo}
}

func (s *eventService) Create(ctx context.Context, event *model.Event) error {
	event.Attendees = []string{}
	return s.repo.Create(ctx, event)
}

func (s *eventService) List(ctx context.Context) ([]model.Event, error) {
	return s.repo.List(ctx)
}

// Join adds userID to the attendee list and bumps the count. Double joins are
// rejected.
func (s *eventService) Join(ctx context.Context, id uuid.UUID, userID string) error {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrNotFound
		}
		return err
	}

	if slices.Contains(event.Attendees, userID) {
		return ErrAlreadyJoined
	}

	event.Attendees = append(event.Attendees, userID)
	event.AttendeeCount++
	return s.repo.Save(ctx, event)
}

func (s *eventService) ListByCreator(ctx context.Context, creatorEmail string) ([]model.Event, error) {
	return s.repo.ListByCreator(ctx, creatorEmail)
}

func (s *eventService) ListJoined(ctx context.Context, userID string) ([]model.Event, error) {
	return s.repo.ListJoined(ctx, userID)
}

func (s *eventService) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	rows, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *eventService) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
