package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"learnbridge/internal/model"
)

// EventRepository defines persistence operations on community events.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	List(ctx context.Context) ([]model.Event, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	ListByCreator(ctx context.Context, creatorEmail string) ([]model.Event, error)
	ListJoined(ctx context.Context, userID string) ([]model.Event, error)
	Save(ctx context.Context, event *model.Event) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository builds a GORM-backed repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) List(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) ListByCreator(ctx context.Context, creatorEmail string) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).Where("creator_email = ?", creatorEmail).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// ListJoined returns events whose attendees JSON array contains userID.
func (r *eventRepository) ListJoined(ctx context.Context, userID string) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).
		Where(datatypes.JSONArrayQuery("attendees").Contains(userID)).
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Save(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Event{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Event{})
	return res.RowsAffected, res.Error
}
