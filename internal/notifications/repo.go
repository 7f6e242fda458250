package notifications

import (
	"context"
	"time"

	"github.com/giftnest/giftnest-backend/internal/repo"
	"github.com/giftnest/giftnest-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository persists the operational notification feed.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create inserts one notification.
func (r *Repository) Create(ctx context.Context, notification *models.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	return r.DB(ctx).Create(notification).Error
}

// List returns notifications newest-first, optionally unread only.
func (r *Repository) List(ctx context.Context, filters ListFilters) ([]models.Notification, error) {
	query := r.DB(ctx).Order("created_at DESC")
	if filters.UnreadOnly {
		query = query.Where("read_at IS NULL")
	}
	if filters.Kind != nil {
		query = query.Where("kind = ?", *filters.Kind)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	var rows []models.Notification
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// MarkRead stamps a single notification as read.
func (r *Repository) MarkRead(ctx context.Context, id uuid.UUID) error {
	now := time.Now().UTC()
	result := r.DB(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND read_at IS NULL", id).
		Update("read_at", now)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkAllRead stamps every unread notification and reports how many changed.
func (r *Repository) MarkAllRead(ctx context.Context) (int64, error) {
	now := time.Now().UTC()
	result := r.DB(ctx).
		Model(&models.Notification{}).
		Where("read_at IS NULL").
		Update("read_at", now)
	return result.RowsAffected, result.Error
}
