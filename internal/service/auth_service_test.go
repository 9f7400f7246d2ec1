package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"learnbridge/internal/auth"
	apperrors "learnbridge/internal/errors"
	"learnbridge/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role string) (int64, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Search(ctx context.Context, query string) ([]model.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func newAuthService(repo *MockUserRepository) AuthService {
	return NewAuthService(repo, auth.NewJWTService("test-secret"))
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name            string
		input           RegisterInput
		setupMock       func(*MockUserRepository)
		expectedError   error
		expectedMessage string
	}{
		{
			name:  "successful registration",
			input: RegisterInput{Name: "Test User", Email: "Test@Example.com", Password: "password123"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:  "email already registered",
			input: RegisterInput{Name: "Existing", Email: "existing@example.com", Password: "password123"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
		{
			name:            "missing required fields",
			input:           RegisterInput{Email: "a@b.com", Password: "password123"},
			setupMock:       func(m *MockUserRepository) {},
			expectedMessage: "Name, email, and password are required",
		},
		{
			name:            "invalid email shape",
			input:           RegisterInput{Name: "A", Email: "not-an-email", Password: "password123"},
			setupMock:       func(m *MockUserRepository) {},
			expectedMessage: "Please enter a valid email address",
		},
		{
			name:            "short password",
			input:           RegisterInput{Name: "A", Email: "a@b.com", Password: "12345"},
			setupMock:       func(m *MockUserRepository) {},
			expectedMessage: "Password must be at least 6 characters long",
		},
		{
			name:            "invalid photo URL",
			input:           RegisterInput{Name: "A", Email: "a@b.com", Password: "password123", PhotoURL: "ftp://nope"},
			setupMock:       func(m *MockUserRepository) {},
			expectedMessage: "Please enter a valid photo URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := newAuthService(mockRepo)
			user, token, err := service.Register(context.Background(), tt.input)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Empty(t, token)
			case tt.expectedMessage != "":
				assert.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
				assert.Equal(t, tt.expectedMessage, err.Error())
			default:
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.NotEmpty(t, token)
				// email case-folded at write time
				assert.Equal(t, "test@example.com", user.Email)
				assert.Equal(t, "student", user.Role)
				assert.True(t, user.IsActive)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.input.Password, user.PasswordHash)
				assert.True(t, auth.CheckPassword(tt.input.Password, user.PasswordHash))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	userID := uuid.New()

	activeUser := func() *model.User {
		return &model.User{
			ID:           userID,
			Name:         "Test User",
			Email:        "test@example.com",
			PasswordHash: string(hashed),
			Role:         "student",
			IsActive:     true,
		}
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "Test@Example.COM",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(activeUser(), nil)
				m.On("UpdateLastLogin", mock.Anything, userID, mock.AnythingOfType("time.Time")).Return(nil)
			},
		},
		{
			name:     "unknown email",
			email:    "notfound@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "wrong",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(activeUser(), nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "deactivated account",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				user := activeUser()
				user.IsActive = false
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(user, nil)
			},
			expectedError: apperrors.ErrAccountDeactivated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := newAuthService(mockRepo)
			user, token, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.NotEmpty(t, token)
				assert.NotNil(t, user.LastLogin)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// Unknown email and wrong password must be indistinguishable by error text.
func TestAuthService_Login_EnumerationResistance(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	unknownRepo := new(MockUserRepository)
	unknownRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)
	_, _, errUnknown := newAuthService(unknownRepo).Login(context.Background(), "ghost@example.com", "password123")

	wrongRepo := new(MockUserRepository)
	wrongRepo.On("FindByEmail", mock.Anything, "real@example.com").Return(&model.User{
		ID: uuid.New(), Email: "real@example.com", PasswordHash: string(hashed), IsActive: true,
	}, nil)
	_, _, errWrong := newAuthService(wrongRepo).Login(context.Background(), "real@example.com", "nope123")

	assert.Error(t, errUnknown)
	assert.Error(t, errWrong)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestAuthService_ChangePassword(t *testing.T) {
	userID := uuid.New()
	oldHash, _ := bcrypt.GenerateFromPassword([]byte("oldpass1"), 10)

	t.Run("successful change", func(t *testing.T) {
		var storedHash string
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{
			ID: userID, Email: "a@b.com", PasswordHash: string(oldHash), IsActive: true,
		}, nil)
		mockRepo.On("UpdatePassword", mock.Anything, userID, mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) { storedHash = args.String(2) }).
			Return(nil)

		service := newAuthService(mockRepo)
		err := service.ChangePassword(context.Background(), userID.String(), "oldpass1", "newpass1")
		assert.NoError(t, err)

		// new password verifies against the stored hash, old one no longer does
		assert.True(t, auth.CheckPassword("newpass1", storedHash))
		assert.False(t, auth.CheckPassword("oldpass1", storedHash))
		mockRepo.AssertExpectations(t)
	})

	t.Run("wrong current password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{
			ID: userID, PasswordHash: string(oldHash),
		}, nil)

		service := newAuthService(mockRepo)
		err := service.ChangePassword(context.Background(), userID.String(), "wrongpass", "newpass1")
		assert.ErrorIs(t, err, apperrors.ErrWrongCurrentPassword)
	})

	t.Run("short new password", func(t *testing.T) {
		service := newAuthService(new(MockUserRepository))
		err := service.ChangePassword(context.Background(), userID.String(), "oldpass1", "short")
		assert.True(t, apperrors.IsValidation(err))
		assert.Equal(t, "New password must be at least 6 characters long", err.Error())
	})

	t.Run("user gone", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		service := newAuthService(mockRepo)
		err := service.ChangePassword(context.Background(), userID.String(), "oldpass1", "newpass1")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestAuthService_Profile(t *testing.T) {
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Email: "a@b.com"}, nil)

		user, err := newAuthService(mockRepo).Profile(context.Background(), userID.String())
		assert.NoError(t, err)
		assert.Equal(t, userID, user.ID)
	})

	t.Run("deleted account", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		user, err := newAuthService(mockRepo).Profile(context.Background(), userID.String())
		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("garbage id in claims", func(t *testing.T) {
		user, err := newAuthService(new(MockUserRepository)).Profile(context.Background(), "not-a-uuid")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
