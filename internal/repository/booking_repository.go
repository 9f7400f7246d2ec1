package repository

import (
	"context"

	"gorm.io/gorm"

	"learnbridge/internal/model"
)

// BookingRepository defines persistence operations on booked sessions.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.BookedSession) error
	List(ctx context.Context) ([]model.BookedSession, error)
	ListByStudent(ctx context.Context, studentEmail string) ([]model.BookedSession, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository builds a GORM-backed repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *model.BookedSession) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) List(ctx context.Context) ([]model.BookedSession, error) {
	var bookings []model.BookedSession
	if err := r.db.WithContext(ctx).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) ListByStudent(ctx context.Context, studentEmail string) ([]model.BookedSession, error) {
	var bookings []model.BookedSession
	if err := r.db.WithContext(ctx).Where("student_email = ?", studentEmail).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
