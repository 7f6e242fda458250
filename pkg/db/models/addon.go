package models

import (
	"time"

	"github.com/google/uuid"
)

// Addon is a miscellaneous order extra. Price 0 marks a pay-what-you-choose
// addon: the customer's proposed unit price is honored at resolution time.
type Addon struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EventID     uuid.UUID `gorm:"column:event_id;type:uuid;not null" json:"eventId"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Slug        string    `gorm:"column:slug;not null;uniqueIndex" json:"slug"`
	Description *string   `gorm:"column:description" json:"description,omitempty"`
	Price       int       `gorm:"column:price;not null;default:0" json:"price"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true" json:"isActive"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
