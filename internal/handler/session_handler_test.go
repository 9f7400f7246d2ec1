package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "learnbridge/internal/errors"
	"learnbridge/internal/model"
	"learnbridge/internal/service"
)

// MockSessionService is a mock implementation of service.SessionService.
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context, session *model.StudySession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) List(ctx context.Context) ([]model.StudySession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StudySession), args.Error(1)
}

func (m *MockSessionService) Get(ctx context.Context, id uuid.UUID) (*model.StudySession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StudySession), args.Error(1)
}

func (m *MockSessionService) ListByTutor(ctx context.Context, tutorEmail string) ([]model.StudySession, error) {
	args := m.Called(ctx, tutorEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StudySession), args.Error(1)
}

func (m *MockSessionService) Resubmit(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionService) Approve(ctx context.Context, id uuid.UUID, isFree bool, amount float64) error {
	args := m.Called(ctx, id, isFree, amount)
	return args.Error(0)
}

func (m *MockSessionService) Reject(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionService) UpdateApproved(ctx context.Context, id uuid.UUID, update service.SessionUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockSessionService) DeleteApproved(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func performSessionRequest(t *testing.T, h echo.HandlerFunc, method, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	assert.NoError(t, h(c))
	return rec
}

func TestSessionHandler_MalformedID(t *testing.T) {
	mockService := new(MockSessionService)
	h := NewSessionHandler(mockService)

	tests := []struct {
		name    string
		handler echo.HandlerFunc
		method  string
	}{
		{name: "get", handler: h.Get, method: http.MethodGet},
		{name: "resubmit", handler: h.Resubmit, method: http.MethodPut},
		{name: "approve", handler: h.Approve, method: http.MethodPut},
		{name: "reject", handler: h.Reject, method: http.MethodPut},
		{name: "update", handler: h.Update, method: http.MethodPut},
		{name: "delete", handler: h.Delete, method: http.MethodDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := performSessionRequest(t, tt.handler, tt.method, "not-a-uuid", `{}`)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			// exactly one JSON body, nothing appended after the 400
			assert.JSONEq(t, `{"message":"Invalid session ID"}`, rec.Body.String())
		})
	}

	// the store is never reached with a zero id
	mockService.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	mockService.AssertNotCalled(t, "Resubmit", mock.Anything, mock.Anything)
	mockService.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockService.AssertNotCalled(t, "Reject", mock.Anything, mock.Anything)
	mockService.AssertNotCalled(t, "UpdateApproved", mock.Anything, mock.Anything, mock.Anything)
	mockService.AssertNotCalled(t, "DeleteApproved", mock.Anything, mock.Anything)
}

func TestSessionHandler_Get(t *testing.T) {
	sessionID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockService := new(MockSessionService)
		mockService.On("Get", mock.Anything, sessionID).Return(&model.StudySession{
			ID:    sessionID,
			Title: "Intro to Go",
		}, nil)

		rec := performSessionRequest(t, NewSessionHandler(mockService).Get, http.MethodGet, sessionID.String(), "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Intro to Go")
		mockService.AssertExpectations(t)
	})

	t.Run("absent", func(t *testing.T) {
		mockService := new(MockSessionService)
		mockService.On("Get", mock.Anything, sessionID).Return(nil, apperrors.ErrNotFound)

		rec := performSessionRequest(t, NewSessionHandler(mockService).Get, http.MethodGet, sessionID.String(), "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"Session not found"}`, rec.Body.String())
	})
}
