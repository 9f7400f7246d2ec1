package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "learnbridge/internal/errors"
	"learnbridge/internal/model"
	"learnbridge/internal/repository"
)

// UserService handles the administrative user endpoints that sit outside the
// authentication flows.
type UserService interface {
	Search(ctx context.Context, query string) ([]model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	CreateLegacy(ctx context.Context, user *model.User) error
	UpdateRole(ctx context.Context, id uuid.UUID, role string) error
}

type userService struct {
	users repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Search(ctx context.Context, query string) ([]model.User, error) {
	return s.users.Search(ctx, query)
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// CreateLegacy is the admin insert path kept for backward compatibility. It
// performs the same duplicate check as registration but stores whatever
// fields the caller supplied.
func (s *userService) CreateLegacy(ctx context.Context, user *model.User) error {
	existing, err := s.users.FindByEmail(ctx, user.Email)
	if err == nil && existing != nil {
		return apperrors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return fmt.Errorf("check user existence: %w", err)
	}

	if user.Role == "" {
		user.Role = "student"
	}
	user.IsActive = true

	return s.users.Create(ctx, user)
}

// UpdateRole changes the role tag; roles are only mutable through this path.
func (s *userService) UpdateRole(ctx context.Context, id uuid.UUID, role string) error {
	rows, err := s.users.UpdateRole(ctx, id, role)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
