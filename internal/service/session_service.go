package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnbridge/internal/cache"
	apperrors "learnbridge/internal/errors"
	"learnbridge/internal/model"
	"learnbridge/internal/repository"
)

const sessionCacheTTL = 5 * time.Minute

// SessionUpdate carries the editable fields of an approved session.
type SessionUpdate struct {
	Title           *string  `json:"title"`
	TutorName       *string  `json:"tutorName"`
	Description     *string  `json:"description"`
	RegistrationFee *float64 `json:"registrationFee"`
}

// SessionService handles study session operations.
type SessionService interface {
	Create(ctx context.Context, session *model.StudySession) error
	List(ctx context.Context) ([]model.StudySession, error)
	Get(ctx context.Context, id uuid.UUID) (*model.StudySession, error)
	ListByTutor(ctx context.Context, tutorEmail string) ([]model.StudySession, error)
	Resubmit(ctx context.Context, id uuid.UUID) error
	Approve(ctx context.Context, id uuid.UUID, isFree bool, amount float64) error
	Reject(ctx context.Context, id uuid.UUID) error
	UpdateApproved(ctx context.Context, id uuid.UUID, update SessionUpdate) error
	DeleteApproved(ctx context.Context, id uuid.UUID) error
}

type sessionService struct {
	repo  repository.SessionRepository
	cache *cache.Client
}

// NewSessionService creates a new session service.
func NewSessionService(repo repository.SessionRepository, cache *cache.Client) SessionService {
	return &sessionService{repo: repo, cache: cache}
}

func (s *sessionService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("session:%s", id.String())
}

func (s *sessionService) Create(ctx context.Context, session *model.StudySession) error {
	return s.repo.Create(ctx, session)
}

func (s *sessionService) List(ctx context.Context) ([]model.StudySession, error) {
	return s.repo.List(ctx)
}

// Get retrieves a single session with a read-through cache.
func (s *sessionService) Get(ctx context.Context, id uuid.UUID) (*model.StudySession, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.StudySession
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	session, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(session); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, sessionCacheTTL)
	}

	return session, nil
}

func (s *sessionService) ListByTutor(ctx context.Context, tutorEmail string) ([]model.StudySession, error) {
	return s.repo.ListByTutor(ctx, tutorEmail)
}

func (s *sessionService) Resubmit(ctx context.Context, id uuid.UUID) error {
	return s.afterMutation(ctx, id)(s.repo.Resubmit(ctx, id))
}

func (s *sessionService) Approve(ctx context.Context, id uuid.UUID, isFree bool, amount float64) error {
	return s.afterMutation(ctx, id)(s.repo.Approve(ctx, id, isFree, amount))
}

func (s *sessionService) Reject(ctx context.Context, id uuid.UUID) error {
	return s.afterMutation(ctx, id)(s.repo.DeletePending(ctx, id))
}

func (s *sessionService) UpdateApproved(ctx context.Context, id uuid.UUID, update SessionUpdate) error {
	fields := map[string]interface{}{}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.TutorName != nil {
		fields["tutor_name"] = *update.TutorName
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.RegistrationFee != nil {
		fields["registration_fee"] = *update.RegistrationFee
	}
	if len(fields) == 0 {
		return apperrors.ErrNotFound
	}
	return s.afterMutation(ctx, id)(s.repo.UpdateApproved(ctx, id, fields))
}

func (s *sessionService) DeleteApproved(ctx context.Context, id uuid.UUID) error {
	return s.afterMutation(ctx, id)(s.repo.DeleteApproved(ctx, id))
}

// afterMutation translates rows-affected results into ErrNotFound and
// invalidates the session cache entry on success.
func (s *sessionService) afterMutation(ctx context.Context, id uuid.UUID) func(int64, error) error {
	return func(rows int64, err error) error {
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperrors.ErrNotFound
		}
		_ = s.cache.Delete(ctx, s.cacheKey(id))
		return nil
	}
}
