package persistence

import (
	"context"
	"time"

	"botany/internal/domain/entity"
	domainerrors "botany/internal/domain/errors"
	"botany/internal/domain/repository"
	"botany/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// eventRepository implements the repository.EventRepository interface using GORM.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

// Create appends an event to the log.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM := &model.EventModel{
		ID:        event.ID,
		UserID:    event.UserID,
		EventType: event.EventType,
		Target:    event.Target,
		CreatedAt: event.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = eventM.ID

	return nil
}

// Exists reports whether the user has a matching event at or after the given
// time. Target may be empty to match any target.
func (repo *eventRepository) Exists(ctx context.Context, userID uuid.UUID, eventType, target string, since time.Time) (bool, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("user_id = ? AND event_type = ? AND created_at >= ?", userID, eventType, since)
	if target != "" {
		query = query.Where("target = ?", target)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check events")
	}

	return count > 0, nil
}
