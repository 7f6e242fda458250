package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Bundle is a pre-composed package sold at its own price. Contents are
// informational; the bundle price is authoritative regardless of what the
// constituent products cost individually.
type Bundle struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EventID     uuid.UUID      `gorm:"column:event_id;type:uuid;not null" json:"eventId"`
	Name        string         `gorm:"column:name;not null" json:"name"`
	Slug        string         `gorm:"column:slug;not null;uniqueIndex" json:"slug"`
	Description *string        `gorm:"column:description" json:"description,omitempty"`
	Price       int            `gorm:"column:price;not null" json:"price"`
	Contents    pq.StringArray `gorm:"column:contents;type:text[];not null;default:ARRAY[]::text[]" json:"contents"`
	IsActive    bool           `gorm:"column:is_active;not null;default:true" json:"isActive"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
