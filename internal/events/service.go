package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/giftnest/giftnest-backend/pkg/db/models"
	pkgerrors "github.com/giftnest/giftnest-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service exposes campaign reads to the HTTP surface and the order pipeline.
type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	GetActive(ctx context.Context) (*models.Event, error)
}

type service struct {
	repo *Repository
}

// NewService builds the events read service.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("events repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "event id required")
	}
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "event not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load event")
	}
	return event, nil
}

func (s *service) GetActive(ctx context.Context) (*models.Event, error) {
	event, err := s.repo.FindActive(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no active event")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load active event")
	}
	return event, nil
}
