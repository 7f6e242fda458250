package orders

import (
	"github.com/giftnest/giftnest-backend/pkg/enums"
	"github.com/giftnest/giftnest-backend/pkg/types"

	"github.com/giftnest/giftnest-backend/internal/pricing"
)

// CustomerInput carries the contact and delivery fields submitted at checkout.
type CustomerInput struct {
	Name           string `json:"name" validate:"required,min=2"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" validate:"required,min=10"`
	WhatsApp       string `json:"whatsapp" validate:"omitempty"`
	Address        string `json:"address" validate:"required,min=5"`
	City           string `json:"city" validate:"required"`
	SecondaryPhone string `json:"secondaryPhone" validate:"omitempty"`
	CustomMessage  string `json:"customMessage" validate:"omitempty,max=1000"`
}

// CartLineInput is one raw cart line as submitted by the storefront. It is
// transient: resolved into an OrderLineItem snapshot and then discarded.
type CartLineInput struct {
	Type              string                 `json:"type" validate:"required"`
	ReferenceID       string                 `json:"referenceId" validate:"required"`
	Quantity          int                    `json:"quantity" validate:"required,min=1"`
	VariantSelection  types.VariantSelection `json:"variantSelection,omitempty"`
	CustomizationData types.Customization    `json:"customizationData,omitempty"`
	BookingDate       string                 `json:"bookingDate,omitempty"`
	BookingTime       string                 `json:"bookingTime,omitempty"`
	// PriceAtPurchase is the customer-declared unit price. It is honored
	// only when the catalog price for the reference is exactly zero.
	PriceAtPurchase *int `json:"priceAtPurchase,omitempty"`
}

// CreateOrderRequest is the full order submission payload.
type CreateOrderRequest struct {
	EventID  string          `json:"eventId" validate:"required,uuid"`
	Customer CustomerInput   `json:"customer" validate:"required"`
	Items    []CartLineInput `json:"items" validate:"required,min=1,dive"`
}

// QuoteRequest prices a cart without persisting anything.
type QuoteRequest struct {
	Items []CartLineInput `json:"items" validate:"required,min=1,dive"`
}

// ResolvedLineItem is the priced, named result of resolving one cart line.
// Immutable once computed.
type ResolvedLineItem struct {
	LineType         enums.LineType         `json:"type"`
	ReferenceID      string                 `json:"referenceId"`
	Name             string                 `json:"name"`
	Qty              int                    `json:"quantity"`
	UnitPrice        int                    `json:"unitPrice"`
	LineTotal        int                    `json:"lineTotal"`
	VariantSelection types.VariantSelection `json:"variantSelection,omitempty"`
	Customization    types.Customization    `json:"customizationData,omitempty"`
	BookingDate      *string                `json:"bookingDate,omitempty"`
	BookingTime      *string                `json:"bookingTime,omitempty"`
}

// QuoteResult mirrors the totals order creation would persist for this cart.
type QuoteResult struct {
	Items []ResolvedLineItem `json:"items"`
	pricing.Quote
}

// ListFilters narrows the admin order list.
type ListFilters struct {
	Status *enums.OrderStatus
	Limit  int
	Offset int
}
