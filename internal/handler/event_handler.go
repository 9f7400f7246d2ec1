package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "learnbridge/internal/errors"
	"learnbridge/internal/model"
	"learnbridge/internal/service"
)

// EventHandler handles community event endpoints.
type EventHandler struct {
	events service.EventService
}

// NewEventHandler creates a new event handler.
func NewEventHandler(events service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// CreateEventRequest is the event creation payload. CreatorID is accepted as
// a fallback for clients that never send creatorEmail.
type CreateEventRequest struct {
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description"`
	Date          string `json:"date"`
	Location      string `json:"location"`
	CreatorEmail  string `json:"creatorEmail"`
	CreatorID     string `json:"creatorId"`
	AttendeeCount int    `json:"attendeeCount"`
}

// JoinEventRequest identifies the joining user.
type JoinEventRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// UpdateEventRequest carries the editable event fields.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
}

// List godoc
// @Summary List all events
// @Tags events
// @Produce json
// @Success 200 {array} model.Event
// @Router /events [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.events.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch events"})
	}
	return c.JSON(http.StatusOK, events)
}

// Create adds a new event with an empty attendee list.
func (h *EventHandler) Create(c echo.Context) error {
	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	creatorEmail := req.CreatorEmail
	if creatorEmail == "" {
		creatorEmail = req.CreatorID
	}

	event := &model.Event{
		Title:         req.Title,
		Description:   req.Description,
		Date:          req.Date,
		Location:      req.Location,
		CreatorEmail:  creatorEmail,
		AttendeeCount: req.AttendeeCount,
	}

	if err := h.events.Create(c.Request().Context(), event); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create event"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"message":    "Event created successfully",
		"insertedId": event.ID,
	})
}

// Join adds the user to an event's attendee list.
func (h *EventHandler) Join(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid event ID"})
	}

	var req JoinEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	if err := h.events.Join(c.Request().Context(), id, req.UserID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Event not found"})
		case errors.Is(err, service.ErrAlreadyJoined):
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to join event"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Successfully joined the event",
	})
}

// ListByCreator returns events created by the given email.
func (h *EventHandler) ListByCreator(c echo.Context) error {
	events, err := h.events.ListByCreator(c.Request().Context(), c.Param("email"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch events"})
	}
	return c.JSON(http.StatusOK, events)
}

// ListJoined returns events the user has joined.
func (h *EventHandler) ListJoined(c echo.Context) error {
	events, err := h.events.ListJoined(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch joined events"})
	}
	return c.JSON(http.StatusOK, events)
}

// Update edits an event's fields.
func (h *EventHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid event ID"})
	}

	var req UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Date != nil {
		fields["date"] = *req.Date
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}

	if err := h.events.Update(c.Request().Context(), id, fields); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Event not found or no changes made"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to update event"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Event updated successfully",
	})
}

// Delete removes an event.
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid event ID"})
	}

	if err := h.events.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to delete event"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Event deleted successfully",
	})
}
