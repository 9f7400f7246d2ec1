package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"learnbridge/internal/model"
	"learnbridge/internal/service"
)

// PaymentHandler handles payment intent creation and payment history.
type PaymentHandler struct {
	payments service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(payments service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// CreateIntentRequest carries the session registration fee in dollars.
type CreateIntentRequest struct {
	RegistrationFee float64 `json:"registrationFee"`
}

// CreateIntent godoc
// @Summary Create a Stripe payment intent for a registration fee
// @Tags payments
// @Accept json
// @Produce json
// @Param request body CreateIntentRequest true "Fee data"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req CreateIntentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}

	clientSecret, err := h.payments.CreateIntent(c.Request().Context(), req.RegistrationFee)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create payment intent"})
	}

	return c.JSON(http.StatusOK, echo.Map{"clientSecret": clientSecret})
}

// RecordPaymentRequest carries a confirmed payment to persist.
type RecordPaymentRequest struct {
	Email         string  `json:"email" validate:"required,email"`
	SessionID     string  `json:"sessionId" validate:"required"`
	SessionTitle  string  `json:"sessionTitle"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transactionId" validate:"required"`
}

// Record persists a completed payment. Callers may only record payments
// against their own token email.
func (h *PaymentHandler) Record(c echo.Context) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized access"})
	}

	var req RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	if req.Email != claims.Email {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden access"})
	}

	payment := &model.Payment{
		Email:         req.Email,
		SessionID:     req.SessionID,
		SessionTitle:  req.SessionTitle,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
	}
	if err := h.payments.Record(c.Request().Context(), payment); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to record payment"})
	}
	return c.JSON(http.StatusOK, echo.Map{"insertedId": payment.ID})
}

// History returns the payments recorded for an email. The path email must
// match the authenticated token's email.
func (h *PaymentHandler) History(c echo.Context) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized access"})
	}

	email := c.Param("email")
	if email != claims.Email {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden access"})
	}

	payments, err := h.payments.History(c.Request().Context(), email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch payments"})
	}
	return c.JSON(http.StatusOK, payments)
}
