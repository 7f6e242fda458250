package events

import (
	"context"

	"github.com/giftnest/giftnest-backend/internal/repo"
	"github.com/giftnest/giftnest-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes read operations over seasonal campaigns.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// FindByID loads one event by primary key.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	var event models.Event
	if err := r.DB(ctx).First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindActive returns the most recently started active campaign.
func (r *Repository) FindActive(ctx context.Context) (*models.Event, error) {
	var event models.Event
	err := r.DB(ctx).
		Where("is_active = ?", true).
		Order("starts_at DESC").
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}
