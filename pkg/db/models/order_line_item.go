package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/giftnest/giftnest-backend/pkg/enums"
	"github.com/giftnest/giftnest-backend/pkg/types"
)

// OrderLineItem is the priced snapshot of one resolved cart line. Catalog
// price changes after creation must not alter historical orders, so name and
// prices are copied here verbatim.
type OrderLineItem struct {
	ID               uuid.UUID              `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID          uuid.UUID              `gorm:"column:order_id;type:uuid;not null" json:"orderId"`
	Position         int                    `gorm:"column:position;not null" json:"-"`
	LineType         enums.LineType         `gorm:"column:line_type;not null" json:"type"`
	ReferenceID      string                 `gorm:"column:reference_id;not null" json:"referenceId"`
	Name             string                 `gorm:"column:name;not null" json:"name"`
	Qty              int                    `gorm:"column:qty;not null" json:"quantity"`
	UnitPrice        int                    `gorm:"column:unit_price;not null" json:"unitPrice"`
	LineTotal        int                    `gorm:"column:line_total;not null" json:"lineTotal"`
	VariantSelection types.VariantSelection `gorm:"column:variant_selection;type:jsonb;serializer:json" json:"variantSelection,omitempty"`
	Customization    types.Customization    `gorm:"column:customization;type:jsonb;serializer:json" json:"customizationData,omitempty"`
	BookingDate      *string                `gorm:"column:booking_date" json:"bookingDate,omitempty"`
	BookingTime      *string                `gorm:"column:booking_time" json:"bookingTime,omitempty"`
	CreatedAt        time.Time              `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}
