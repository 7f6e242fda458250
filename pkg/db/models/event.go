package models

import (
	"time"

	"github.com/google/uuid"
)

// Event is a seasonal campaign (Valentine, Christmas, ...). Every order and
// catalog record belongs to exactly one event.
type Event struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string     `gorm:"column:name;not null" json:"name"`
	Slug      string     `gorm:"column:slug;not null;uniqueIndex" json:"slug"`
	Tagline   *string    `gorm:"column:tagline" json:"tagline,omitempty"`
	StartsAt  *time.Time `gorm:"column:starts_at" json:"startsAt,omitempty"`
	EndsAt    *time.Time `gorm:"column:ends_at" json:"endsAt,omitempty"`
	IsActive  bool       `gorm:"column:is_active;not null;default:false" json:"isActive"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
