package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/giftnest/giftnest-backend/pkg/enums"
)

// Order is the immutable record produced by the assembler. Totals are frozen
// at creation and never recomputed from catalog state; only Status is
// mutated afterwards, by fulfillment staff.
type Order struct {
	ID             uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	OrderNumber    string            `gorm:"column:order_number;not null;uniqueIndex" json:"orderId"`
	EventID        uuid.UUID         `gorm:"column:event_id;type:uuid;not null" json:"eventId"`
	CustomerName   string            `gorm:"column:customer_name;not null" json:"customerName"`
	CustomerEmail  *string           `gorm:"column:customer_email" json:"customerEmail,omitempty"`
	CustomerPhone  string            `gorm:"column:customer_phone;not null" json:"customerPhone"`
	SecondaryPhone *string           `gorm:"column:secondary_phone" json:"secondaryPhone,omitempty"`
	WhatsApp       *string           `gorm:"column:whatsapp" json:"whatsapp,omitempty"`
	Address        string            `gorm:"column:address;not null" json:"address"`
	City           string            `gorm:"column:city;not null" json:"city"`
	CustomMessage  *string           `gorm:"column:custom_message" json:"customMessage,omitempty"`
	SubTotal       int               `gorm:"column:sub_total;not null" json:"subTotal"`
	ServiceFee     int               `gorm:"column:service_fee;not null" json:"serviceFee"`
	TotalAmount    int               `gorm:"column:total_amount;not null" json:"totalAmount"`
	Status         enums.OrderStatus `gorm:"column:status;not null;default:'PENDING'" json:"status"`
	Items          []OrderLineItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt      time.Time         `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
