package service

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnbridge/internal/auth"
	apperrors "learnbridge/internal/errors"
	"learnbridge/internal/model"
	"learnbridge/internal/repository"
)

// Permissive by design: local@domain.tld, no attempt at full RFC compliance.
var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	urlRegex   = regexp.MustCompile(`(?i)^https?://[^\s/$.?#].[^\s]*$`)
)

// RegisterInput carries the registration request fields.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	PhotoURL string
	Role     string
}

// AuthService handles registration, login, password change and profile reads.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	Profile(ctx context.Context, userID string) (*model.User, error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{users: users, jwtService: jwtService}
}

// Register validates the input, creates the user with a hashed password and
// returns the stored record plus a 24-hour token.
//
// Email uniqueness is checked before insert; the unique index on the users
// table closes the check-then-insert race, so a concurrent duplicate loses
// with a store error instead of creating a second account.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, string, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, "", apperrors.NewValidation("Name, email, and password are required")
	}
	if !emailRegex.MatchString(in.Email) {
		return nil, "", apperrors.NewValidation("Please enter a valid email address")
	}
	if len(in.Password) < 6 {
		return nil, "", apperrors.NewValidation("Password must be at least 6 characters long")
	}

	var photoURL *string
	if trimmed := strings.TrimSpace(in.PhotoURL); trimmed != "" {
		if !urlRegex.MatchString(trimmed) {
			return nil, "", apperrors.NewValidation("Please enter a valid photo URL")
		}
		photoURL = &trimmed
	}

	email := strings.ToLower(in.Email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, "", apperrors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	role := in.Role
	if role == "" {
		role = "student"
	}

	user := &model.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		PhotoURL:     photoURL,
		Role:         role,
		IsActive:     true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.Generate(user.ID.String(), user.Email, user.Name, user.Role, user.PhotoURL, auth.AuthTokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

// Login authenticates a user and returns the record plus a 24-hour token.
// Unknown email and wrong password produce the same error; a deactivated
// account is reported distinctly and checked before any password work.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if email == "" || password == "" {
		return nil, "", apperrors.NewValidation("Email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if !user.IsActive {
		return nil, "", apperrors.ErrAccountDeactivated
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	// Best effort relative to the response; the echoed lastLogin is "now".
	now := time.Now()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		log.Printf("update last login for %s: %v", user.ID, err)
	}
	user.LastLogin = &now

	token, err := s.jwtService.Generate(user.ID.String(), user.Email, user.Name, user.Role, user.PhotoURL, auth.AuthTokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

// ChangePassword replaces the stored hash after verifying the current
// password. Tokens issued before the change stay valid until expiry.
func (s *authService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return apperrors.NewValidation("Current password and new password are required")
	}
	if len(newPassword) < 6 {
		return apperrors.NewValidation("New password must be at least 6 characters long")
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(currentPassword, user.PasswordHash) {
		return apperrors.ErrWrongCurrentPassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, id, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// Profile loads the user behind the verified token claims.
func (s *authService) Profile(ctx context.Context, userID string) (*model.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
