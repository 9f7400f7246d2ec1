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

// SessionHandler handles study session endpoints.
type SessionHandler struct {
	sessions service.SessionService
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(sessions service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// ApproveSessionRequest carries the admin fee decision.
type ApproveSessionRequest struct {
	IsFree bool    `json:"isFree"`
	Amount float64 `json:"amount"`
}

// List godoc
// @Summary List all study sessions
// @Tags studysessions
// @Produce json
// @Success 200 {array} model.StudySession
// @Router /studysessions [get]
func (h *SessionHandler) List(c echo.Context) error {
	sessions, err := h.sessions.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch study sessions"})
	}
	return c.JSON(http.StatusOK, sessions)
}

// Create godoc
// @Summary Create a study session
// @Tags studysessions
// @Accept json
// @Produce json
// @Param request body model.StudySession true "Session data"
// @Success 200 {object} map[string]interface{}
// @Router /studysessions [post]
func (h *SessionHandler) Create(c echo.Context) error {
	var session model.StudySession
	if err := c.Bind(&session); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}

	if err := h.sessions.Create(c.Request().Context(), &session); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create study session"})
	}
	return c.JSON(http.StatusOK, echo.Map{"insertedId": session.ID})
}

// Get returns a single session by id.
func (h *SessionHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid session ID"})
	}

	session, err := h.sessions.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Session not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch session"})
	}
	return c.JSON(http.StatusOK, session)
}

// ListByTutor returns a tutor's submitted sessions.
func (h *SessionHandler) ListByTutor(c echo.Context) error {
	sessions, err := h.sessions.ListByTutor(c.Request().Context(), c.Param("email"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch study sessions"})
	}
	return c.JSON(http.StatusOK, sessions)
}

// Resubmit moves a rejected session back to pending.
func (h *SessionHandler) Resubmit(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid session ID"})
	}

	if err := h.sessions.Resubmit(c.Request().Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Session not found or already updated"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to resubmit approval request"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Approval request resubmitted successfully"})
}

// Approve marks a pending session approved with the fee decision.
func (h *SessionHandler) Approve(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid session ID"})
	}

	var req ApproveSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}

	if err := h.sessions.Approve(c.Request().Context(), id, req.IsFree, req.Amount); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Session not found or already approved"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to approve session"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Session approved successfully"})
}

// Reject removes a pending session.
func (h *SessionHandler) Reject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid session ID"})
	}

	if err := h.sessions.Reject(c.Request().Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Session not found or already processed"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to reject session"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Session rejected successfully"})
}

// Update edits an approved session.
func (h *SessionHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid session ID"})
	}

	var update service.SessionUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}

	if err := h.sessions.UpdateApproved(c.Request().Context(), id, update); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Session not found or no changes made"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to update session"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Session updated successfully"})
}

// Delete removes an approved session.
func (h *SessionHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid session ID"})
	}

	if err := h.sessions.DeleteApproved(c.Request().Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Session not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to delete session"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Session deleted successfully"})
}
