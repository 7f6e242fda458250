package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/giftnest/giftnest-backend/pkg/types"
)

// Product is a physical catalog listing. BasePrice is whole naira; variant
// option values adjust the unit price by their signed modifier.
type Product struct {
	ID            uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EventID       uuid.UUID            `gorm:"column:event_id;type:uuid;not null" json:"eventId"`
	Name          string               `gorm:"column:name;not null" json:"name"`
	Slug          string               `gorm:"column:slug;not null;uniqueIndex" json:"slug"`
	Description   *string              `gorm:"column:description" json:"description,omitempty"`
	BasePrice     int                  `gorm:"column:base_price;not null" json:"basePrice"`
	Options       types.VariantOptions `gorm:"column:options;type:jsonb;serializer:json" json:"options,omitempty"`
	FeaturedImage *string              `gorm:"column:featured_image" json:"featuredImage,omitempty"`
	IsActive      bool                 `gorm:"column:is_active;not null;default:true" json:"isActive"`
	CreatedAt     time.Time            `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time            `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
