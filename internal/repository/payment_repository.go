package repository

import (
	"context"

	"gorm.io/gorm"

	"learnbridge/internal/model"
)

// PaymentRepository defines persistence operations on payment records.
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	ListByEmail(ctx context.Context, email string) ([]model.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository builds a GORM-backed repository.
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) ListByEmail(ctx context.Context, email string) ([]model.Payment, error) {
	var payments []model.Payment
	if err := r.db.WithContext(ctx).Where("email = ?", email).Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
