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

// MaterialHandler handles study material endpoints.
type MaterialHandler struct {
	materials service.MaterialService
}

// NewMaterialHandler creates a new material handler.
func NewMaterialHandler(materials service.MaterialService) *MaterialHandler {
	return &MaterialHandler{materials: materials}
}

// CreateMaterialRequest is the material upload payload.
type CreateMaterialRequest struct {
	Title      string `json:"title" validate:"required"`
	SessionID  string `json:"sessionId" validate:"required"`
	TutorEmail string `json:"tutorEmail"`
	Image      string `json:"image"`
	Link       string `json:"link"`
}

// UpdateMaterialRequest carries the editable material fields.
type UpdateMaterialRequest struct {
	Title string `json:"title"`
	Image string `json:"image"`
	Link  string `json:"link"`
}

// List returns every material.
func (h *MaterialHandler) List(c echo.Context) error {
	materials, err := h.materials.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch materials"})
	}
	return c.JSON(http.StatusOK, materials)
}

// ListBySession returns the materials attached to a session.
func (h *MaterialHandler) ListBySession(c echo.Context) error {
	materials, err := h.materials.ListBySession(c.Request().Context(), c.Param("sessionId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch materials"})
	}
	return c.JSON(http.StatusOK, materials)
}

// ListByTutor returns a tutor's uploaded materials.
func (h *MaterialHandler) ListByTutor(c echo.Context) error {
	materials, err := h.materials.ListByTutor(c.Request().Context(), c.Param("email"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch materials"})
	}
	return c.JSON(http.StatusOK, materials)
}

// Create uploads a new material.
func (h *MaterialHandler) Create(c echo.Context) error {
	var req CreateMaterialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	material := &model.Material{
		Title:      req.Title,
		SessionID:  req.SessionID,
		TutorEmail: req.TutorEmail,
		Image:      req.Image,
		Link:       req.Link,
	}

	if err := h.materials.Create(c.Request().Context(), material); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to upload material"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":    "Material uploaded successfully",
		"insertedId": material.ID,
	})
}

// Update edits a material.
func (h *MaterialHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid material ID"})
	}

	var req UpdateMaterialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}

	if err := h.materials.Update(c.Request().Context(), id, req.Title, req.Image, req.Link); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Material not found or no changes made"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to update material"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Material updated successfully"})
}

// Delete removes a material.
func (h *MaterialHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid material ID"})
	}

	if err := h.materials.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Material not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to delete material"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Material deleted successfully"})
}
