package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnbridge/internal/model"
)

// SessionRepository defines persistence operations on study sessions. The
// status-guarded mutations return the number of affected rows so callers can
// distinguish "absent" from "wrong state".
type SessionRepository interface {
	Create(ctx context.Context, session *model.StudySession) error
	List(ctx context.Context) ([]model.StudySession, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.StudySession, error)
	ListByTutor(ctx context.Context, tutorEmail string) ([]model.StudySession, error)
	Resubmit(ctx context.Context, id uuid.UUID) (int64, error)
	Approve(ctx context.Context, id uuid.UUID, isFree bool, amount float64) (int64, error)
	DeletePending(ctx context.Context, id uuid.UUID) (int64, error)
	UpdateApproved(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error)
	DeleteApproved(ctx context.Context, id uuid.UUID) (int64, error)
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository builds a GORM-backed repository.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *model.StudySession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) List(ctx context.Context) ([]model.StudySession, error) {
	var sessions []model.StudySession
	if err := r.db.WithContext(ctx).Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.StudySession, error) {
	var session model.StudySession
	if err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) ListByTutor(ctx context.Context, tutorEmail string) ([]model.StudySession, error) {
	var sessions []model.StudySession
	if err := r.db.WithContext(ctx).Where("tutor_email = ?", tutorEmail).Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// Resubmit moves a rejected session back to pending.
func (r *sessionRepository) Resubmit(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.StudySession{}).
		Where("id = ? AND status = ?", id, model.SessionRejected).
		Update("status", model.SessionPending)
	return res.RowsAffected, res.Error
}

// Approve moves a pending session to approved and records the fee decision.
func (r *sessionRepository) Approve(ctx context.Context, id uuid.UUID, isFree bool, amount float64) (int64, error) {
	if isFree {
		amount = 0
	}
	res := r.db.WithContext(ctx).Model(&model.StudySession{}).
		Where("id = ? AND status = ?", id, model.SessionPending).
		Updates(map[string]interface{}{
			"status":  model.SessionApproved,
			"is_free": isFree,
			"amount":  amount,
		})
	return res.RowsAffected, res.Error
}

// DeletePending rejects a pending session by removing it.
func (r *sessionRepository) DeletePending(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, model.SessionPending).
		Delete(&model.StudySession{})
	return res.RowsAffected, res.Error
}

func (r *sessionRepository) UpdateApproved(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.StudySession{}).
		Where("id = ? AND status = ?", id, model.SessionApproved).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *sessionRepository) DeleteApproved(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, model.SessionApproved).
		Delete(&model.StudySession{})
	return res.RowsAffected, res.Error
}
