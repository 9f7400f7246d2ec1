package service

import (
	"context"

	"learnbridge/internal/model"
	"learnbridge/internal/repository"
)

// BookingService handles booked session operations.
type BookingService interface {
	Create(ctx context.Context, booking *model.BookedSession) error
	List(ctx context.Context) ([]model.BookedSession, error)
	ListByStudent(ctx context.Context, studentEmail string) ([]model.BookedSession, error)
}

type bookingService struct {
	repo repository.BookingRepository
}

// NewBookingService creates a new booking service.
func NewBookingService(repo repository.BookingRepository) BookingService {
	return &bookingService{repo: repo}
}

func (s *bookingService) Create(ctx context.Context, booking *model.BookedSession) error {
	return s.repo.Create(ctx, booking)
}

func (s *bookingService) List(ctx context.Context) ([]model.BookedSession, error) {
	return s.repo.List(ctx)
}

func (s *bookingService) ListByStudent(ctx context.Context, studentEmail string) ([]model.BookedSession, error) {
	return s.repo.ListByStudent(ctx, studentEmail)
}
