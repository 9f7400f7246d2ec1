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

// NoteHandler handles personal note endpoints.
type NoteHandler struct {
	notes service.NoteService
}

// NewNoteHandler creates a new note handler.
func NewNoteHandler(notes service.NoteService) *NoteHandler {
	return &NoteHandler{notes: notes}
}

// UpdateNoteRequest carries the new note content.
type UpdateNoteRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Create stores a new note.
func (h *NoteHandler) Create(c echo.Context) error {
	var note model.Note
	if err := c.Bind(&note); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}

	if err := h.notes.Create(c.Request().Context(), &note); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create note"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Note created successfully!",
		"note":    note,
	})
}

// ListByEmail returns the user's notes.
func (h *NoteHandler) ListByEmail(c echo.Context) error {
	notes, err := h.notes.ListByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch notes"})
	}
	return c.JSON(http.StatusOK, notes)
}

// Update replaces a note's content, keeping the previous version in history.
func (h *NoteHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid note ID"})
	}

	var req UpdateNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}

	note, err := h.notes.Update(c.Request().Context(), id, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Note not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to update note"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":     "Note updated successfully",
		"updatedNote": note,
	})
}

// Delete removes a note.
func (h *NoteHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid note ID"})
	}

	if err := h.notes.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Note not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to delete note"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Note deleted successfully"})
}
