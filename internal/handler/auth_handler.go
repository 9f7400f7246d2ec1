package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"learnbridge/internal/auth"
	apperrors "learnbridge/internal/errors"
	"learnbridge/internal/model"
	"learnbridge/internal/service"
)

// AuthHandler handles the authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	jwtService  *auth.JWTService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{authService: authService, jwtService: jwtService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	PhotoURL string `json:"photoURL"`
	Role     string `json:"role"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest represents a password change request.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// fail renders a domain error. Unexpected errors collapse to a 500 with the
// endpoint-specific generic message; everything else keeps its own text.
func fail(c echo.Context, err error, internalMessage string) error {
	status := apperrors.StatusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = internalMessage
	}
	return c.JSON(status, echo.Map{"success": false, "message": message})
}

// registeredUserView mirrors the created-user payload: the record minus the
// password hash and the login-only fields.
func registeredUserView(user *model.User) echo.Map {
	return echo.Map{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"photoURL":  user.PhotoURL,
		"role":      user.Role,
		"createdAt": user.CreatedAt,
	}
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid request body"})
	}

	user, token, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		PhotoURL: req.PhotoURL,
		Role:     req.Role,
	})
	if err != nil {
		return fail(c, err, "Internal server error during registration")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "User registered successfully",
		"user":    registeredUserView(user),
		"token":   token,
	})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid request body"})
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, err, "Internal server error during login")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Login successful",
		"user": echo.Map{
			"id":        user.ID,
			"name":      user.Name,
			"email":     user.Email,
			"photoURL":  user.PhotoURL,
			"role":      user.Role,
			"lastLogin": user.LastLogin,
		},
		"token": token,
	})
}

// ChangePassword godoc
// @Summary Change the current user's password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Password change data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /auth/change-password [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized access"})
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid request body"})
	}

	if err := h.authService.ChangePassword(c.Request().Context(), claims.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		return fail(c, err, "Internal server error during password change")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Password changed successfully",
	})
}

// Profile godoc
// @Summary Get the current user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized access"})
	}

	user, err := h.authService.Profile(c.Request().Context(), claims.UserID)
	if err != nil {
		return fail(c, err, "Internal server error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"user":    user,
	})
}

// Logout requires a valid token but keeps no session state; the client
// discards the token, which stays valid until its expiry.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}

// IssueToken is the legacy /jwt endpoint: it signs whatever claim fields the
// caller posts as a short-lived one-hour token. This is a separate token
// class from the 24-hour auth tokens.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var fields map[string]interface{}
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}

	token, err := h.jwtService.GenerateCustom(fields, auth.GenericTokenTTL)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to issue token"})
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
