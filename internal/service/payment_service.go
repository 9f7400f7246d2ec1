package service

import (
	"context"
	"math"

	"learnbridge/internal/model"
	"learnbridge/internal/payments"
	"learnbridge/internal/repository"
)

// IntentCreator creates a payment intent and returns its client secret.
type IntentCreator interface {
	CreateIntent(amountCents int64) (string, error)
}

var _ IntentCreator = (*payments.Client)(nil)

// PaymentService handles payment intents, payment records and history.
type PaymentService interface {
	CreateIntent(ctx context.Context, registrationFee float64) (string, error)
	Record(ctx context.Context, payment *model.Payment) error
	History(ctx context.Context, email string) ([]model.Payment, error)
}

type paymentService struct {
	repo   repository.PaymentRepository
	stripe IntentCreator
}

// NewPaymentService creates a new payment service.
func NewPaymentService(repo repository.PaymentRepository, stripe IntentCreator) PaymentService {
	return &paymentService{repo: repo, stripe: stripe}
}

// CreateIntent converts the fee to cents and asks Stripe for an intent.
func (s *paymentService) CreateIntent(ctx context.Context, registrationFee float64) (string, error) {
	amount := int64(math.Round(registrationFee * 100))
	return s.stripe.CreateIntent(amount)
}

// Record stores a completed payment after the client confirms the charge.
func (s *paymentService) Record(ctx context.Context, payment *model.Payment) error {
	return s.repo.Create(ctx, payment)
}

func (s *paymentService) History(ctx context.Context, email string) ([]model.Payment, error) {
	return s.repo.ListByEmail(ctx, email)
}
