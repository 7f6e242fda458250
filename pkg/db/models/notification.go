package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/giftnest/giftnest-backend/pkg/enums"
)

// Notification is one entry in the operational feed shown to fulfillment
// staff. Writes are best-effort; a failed insert never fails the triggering
// operation.
type Notification struct {
	ID        uuid.UUID              `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Kind      enums.NotificationKind `gorm:"column:kind;not null" json:"kind"`
	OrderID   *uuid.UUID             `gorm:"column:order_id;type:uuid" json:"orderId,omitempty"`
	Message   string                 `gorm:"column:message;not null" json:"message"`
	ReadAt    *time.Time             `gorm:"column:read_at" json:"readAt,omitempty"`
	CreatedAt time.Time              `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}
