package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"learnbridge/internal/model"
	"learnbridge/internal/service"
)

// CatalogHandler handles the tutor listing, review and booking endpoints.
type CatalogHandler struct {
	tutors   service.TutorService
	reviews  service.ReviewService
	bookings service.BookingService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(tutors service.TutorService, reviews service.ReviewService, bookings service.BookingService) *CatalogHandler {
	return &CatalogHandler{tutors: tutors, reviews: reviews, bookings: bookings}
}

// CreateReviewRequest is the review submission payload.
type CreateReviewRequest struct {
	SessionID    string `json:"sessionId" validate:"required"`
	StudentEmail string `json:"studentEmail" validate:"required"`
	Rating       int    `json:"rating" validate:"min=1,max=5"`
	ReviewText   string `json:"reviewText"`
}

// ListTutors returns all tutor listings.
func (h *CatalogHandler) ListTutors(c echo.Context) error {
	tutors, err := h.tutors.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch tutors"})
	}
	return c.JSON(http.StatusOK, tutors)
}

// CreateTutor adds a tutor listing.
func (h *CatalogHandler) CreateTutor(c echo.Context) error {
	var tutor model.Tutor
	if err := c.Bind(&tutor); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}

	if err := h.tutors.Create(c.Request().Context(), &tutor); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to add tutor"})
	}
	return c.JSON(http.StatusOK, echo.Map{"insertedId": tutor.ID})
}

// ListReviews returns reviews for the session given in the query string.
func (h *CatalogHandler) ListReviews(c echo.Context) error {
	reviews, err := h.reviews.ListBySession(c.Request().Context(), c.QueryParam("sessionId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch reviews"})
	}
	return c.JSON(http.StatusOK, reviews)
}

// CreateReview adds a session review.
func (h *CatalogHandler) CreateReview(c echo.Context) error {
	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	review := &model.Review{
		SessionID:    req.SessionID,
		StudentEmail: req.StudentEmail,
		Rating:       req.Rating,
		ReviewText:   req.ReviewText,
	}

	if err := h.reviews.Create(c.Request().Context(), review); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to add review"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":    "Review added successfully",
		"insertedId": review.ID,
	})
}

// ListBookings returns every booked session.
func (h *CatalogHandler) ListBookings(c echo.Context) error {
	bookings, err := h.bookings.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch booked sessions"})
	}
	return c.JSON(http.StatusOK, bookings)
}

// CreateBooking books a session for a student.
func (h *CatalogHandler) CreateBooking(c echo.Context) error {
	var booking model.BookedSession
	if err := c.Bind(&booking); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}

	if err := h.bookings.Create(c.Request().Context(), &booking); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to book session"})
	}
	return c.JSON(http.StatusOK, echo.Map{"insertedId": booking.ID})
}

// ListBookingsByStudent returns one student's booked sessions.
func (h *CatalogHandler) ListBookingsByStudent(c echo.Context) error {
	bookings, err := h.bookings.ListByStudent(c.Request().Context(), c.Param("email"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch booked sessions"})
	}
	return c.JSON(http.StatusOK, bookings)
}
