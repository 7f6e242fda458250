package models

import (
	"time"

	"github.com/google/uuid"
)

// ServiceOffering is a bookable service (decoration, delivery serenade, ...).
// Booking date and time travel with the cart line as opaque metadata;
// availability is checked outside this service.
type ServiceOffering struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EventID         uuid.UUID `gorm:"column:event_id;type:uuid;not null" json:"eventId"`
	Name            string    `gorm:"column:name;not null" json:"name"`
	Slug            string    `gorm:"column:slug;not null;uniqueIndex" json:"slug"`
	Description     *string   `gorm:"column:description" json:"description,omitempty"`
	BasePrice       int       `gorm:"column:base_price;not null" json:"basePrice"`
	DurationMinutes int       `gorm:"column:duration_minutes;not null;default:0" json:"durationMinutes"`
	IsActive        bool      `gorm:"column:is_active;not null;default:true" json:"isActive"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
