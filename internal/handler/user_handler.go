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

// UserHandler handles the administrative user endpoints.
type UserHandler struct {
	users service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// LegacyUserRequest is the admin-insert payload kept for backward
// compatibility with pre-registration clients.
type LegacyUserRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	PhotoURL *string `json:"photoURL"`
	Role     string  `json:"role"`
}

// UpdateRoleRequest carries the new role tag.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// Search godoc
// @Summary Search users by name or email
// @Tags users
// @Produce json
// @Param searchQuery query string false "Substring to match against name or email"
// @Success 200 {array} model.User
// @Router /users [get]
func (h *UserHandler) Search(c echo.Context) error {
	users, err := h.users.Search(c.Request().Context(), c.QueryParam("searchQuery"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch users"})
	}
	return c.JSON(http.StatusOK, users)
}

// GetByEmail returns one user looked up by email.
func (h *UserHandler) GetByEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email is required"})
	}

	user, err := h.users.GetByEmail(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch user"})
	}
	return c.JSON(http.StatusOK, user)
}

// CreateLegacy inserts a user record directly, without password or token.
func (h *UserHandler) CreateLegacy(c echo.Context) error {
	var req LegacyUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid request body"})
	}

	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Email is required"})
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
		Role:     req.Role,
	}

	if err := h.users.CreateLegacy(c.Request().Context(), user); err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, echo.Map{"success": false, "message": "User already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to add user"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success":    true,
		"message":    "User created successfully",
		"insertedId": user.ID,
	})
}

// UpdateRole changes a user's role tag.
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if req.Role == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Role is required"})
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid user ID"})
	}

	if err := h.users.UpdateRole(c.Request().Context(), id, req.Role); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found or no changes made"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to update user role"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User role updated successfully"})
}
