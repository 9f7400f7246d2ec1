package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"learnbridge/internal/auth"
	apperrors "learnbridge/internal/errors"
	"learnbridge/internal/model"
	"learnbridge/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput) (*model.User, string, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	args := m.Called(ctx, userID, currentPassword, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) Profile(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func performJSON(t *testing.T, h echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	assert.NoError(t, h(c))
	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	now := time.Now()
	user := &model.User{
		ID:        uuid.New(),
		Name:      "A",
		Email:     "a@b.com",
		Role:      "student",
		IsActive:  true,
		CreatedAt: now,
	}

	mockService := new(MockAuthService)
	mockService.On("Register", mock.Anything, service.RegisterInput{
		Name: "A", Email: "a@b.com", Password: "secret1",
	}).Return(user, "tok123", nil)

	h := NewAuthHandler(mockService, auth.NewJWTService("test-secret"))
	rec := performJSON(t, h.Register, http.MethodPost, "/auth/register",
		`{"name":"A","email":"a@b.com","password":"secret1"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "tok123", body["token"])

	// password never leaves the server in any form
	assert.NotContains(t, rec.Body.String(), "password")
	userView := body["user"].(map[string]interface{})
	assert.Equal(t, "a@b.com", userView["email"])
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	mockService := new(MockAuthService)
	mockService.On("Register", mock.Anything, mock.Anything).Return(nil, "", apperrors.ErrEmailTaken)

	h := NewAuthHandler(mockService, auth.NewJWTService("test-secret"))
	rec := performJSON(t, h.Register, http.MethodPost, "/auth/register",
		`{"name":"A","email":"a@b.com","password":"secret1"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "User with this email already exists")
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	mockService := new(MockAuthService)
	mockService.On("Login", mock.Anything, "a@b.com", "wrong").Return(nil, "", apperrors.ErrInvalidCredentials)

	h := NewAuthHandler(mockService, auth.NewJWTService("test-secret"))
	rec := performJSON(t, h.Login, http.MethodPost, "/auth/login",
		`{"email":"a@b.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid email or password", body["message"])
}

func TestAuthHandler_Login_Success(t *testing.T) {
	now := time.Now()
	user := &model.User{
		ID:        uuid.New(),
		Name:      "A",
		Email:     "a@b.com",
		Role:      "student",
		IsActive:  true,
		LastLogin: &now,
	}

	mockService := new(MockAuthService)
	mockService.On("Login", mock.Anything, "a@b.com", "secret1").Return(user, "tok123", nil)

	h := NewAuthHandler(mockService, auth.NewJWTService("test-secret"))
	rec := performJSON(t, h.Login, http.MethodPost, "/auth/login",
		`{"email":"a@b.com","password":"secret1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, "tok123", body["token"])
	userView := body["user"].(map[string]interface{})
	assert.NotNil(t, userView["lastLogin"])
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Logout(t *testing.T) {
	h := NewAuthHandler(new(MockAuthService), auth.NewJWTService("test-secret"))

	rec := performJSON(t, h.Logout, http.MethodPost, "/auth/logout", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Logged out successfully")
}

func TestAuthHandler_IssueToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	h := NewAuthHandler(new(MockAuthService), jwtService)

	rec := performJSON(t, h.IssueToken, http.MethodPost, "/jwt", `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	claims, err := jwtService.ValidateToken(body["token"])
	assert.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email)
	// generic class: one hour, not twenty-four
	assert.LessOrEqual(t, time.Until(claims.ExpiresAt.Time), auth.GenericTokenTTL)
}
