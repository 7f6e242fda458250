package checkout

import (
	"fmt"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/giftnest/giftnest-backend/pkg/db/models"
	"github.com/giftnest/giftnest-backend/pkg/enums"
	"github.com/giftnest/giftnest-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() *models.Order {
	secondary := "08123456789"
	note := "Happy Valentine's, Ngozi!"
	date := "2026-02-14"
	slot := "10:00"
	return &models.Order{
		ID:             uuid.New(),
		OrderNumber:    "GFT-K7M2P4QX",
		CustomerName:   "Adaeze Obi",
		CustomerPhone:  "08012345678",
		SecondaryPhone: &secondary,
		Address:        "14 Admiralty Way, Lekki Phase 1",
		City:           "Lagos",
		CustomMessage:  &note,
		SubTotal:       42000,
		ServiceFee:     2500,
		TotalAmount:    44500,
		Status:         enums.OrderStatusPending,
		CreatedAt:      time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC),
		Items: []models.OrderLineItem{
			{
				LineType:  enums.LineTypeProduct,
				Name:      "Velvet Rose Box",
				Qty:       2,
				UnitPrice: 20000,
				LineTotal: 40000,
				VariantSelection: types.VariantSelection{
					"Size": {Value: "Large", PriceModifier: 5000},
				},
				Customization: types.Customization{"Card text": "With love"},
			},
			{
				LineType:    enums.LineTypeService,
				Name:        "Same-day Delivery",
				Qty:         1,
				UnitPrice:   2000,
				LineTotal:   2000,
				BookingDate: &date,
				BookingTime: &slot,
			},
		},
	}
}

func TestFormatHandoffEchoesStoredTotals(t *testing.T) {
	t.Parallel()

	order := sampleOrder()
	// Deliberately inconsistent with the line totals: the formatter must
	// echo what is stored, not re-add the items.
	order.SubTotal = 99000
	order.ServiceFee = 3500
	order.TotalAmount = 102500

	msg := NewFormatter("2348000000000").FormatHandoff(order)

	assert.Contains(t, msg, "Subtotal: ₦99,000")
	assert.Contains(t, msg, "Service fee: ₦3,500")
	assert.Contains(t, msg, "Total: ₦102,500")
}

func TestFormatHandoffRendersLineDetail(t *testing.T) {
	t.Parallel()

	msg := NewFormatter("2348000000000").FormatHandoff(sampleOrder())

	assert.Contains(t, msg, "GFT-K7M2P4QX")
	assert.Contains(t, msg, "1. Velvet Rose Box x2 — ₦40,000")
	assert.Contains(t, msg, "Size: Large")
	assert.Contains(t, msg, "Card text: With love")
	assert.Contains(t, msg, "2. Same-day Delivery x1 — ₦2,000")
	assert.Contains(t, msg, "Booking: 2026-02-14 10:00")
	assert.Contains(t, msg, "Adaeze Obi")
	assert.Contains(t, msg, "Alt: 08123456789")
	assert.Contains(t, msg, "14 Admiralty Way, Lekki Phase 1, Lagos")
	assert.Contains(t, msg, "Gift message: Happy Valentine's, Ngozi!")
}

func TestFormatHandoffOmitsEmptyOptionalFields(t *testing.T) {
	t.Parallel()

	order := sampleOrder()
	order.SecondaryPhone = nil
	order.CustomMessage = nil
	order.Items = order.Items[:1]
	order.Items[0].VariantSelection = nil
	order.Items[0].Customization = nil

	msg := NewFormatter("2348000000000").FormatHandoff(order)

	assert.NotContains(t, msg, "Alt:")
	assert.NotContains(t, msg, "Gift message:")
	assert.NotContains(t, msg, "•")
	assert.NotContains(t, msg, "Booking:")
}

func TestHandoffLink(t *testing.T) {
	t.Parallel()

	f := NewFormatter("+2348000000000")
	order := sampleOrder()

	link := f.HandoffLink(order)

	require.True(t, strings.HasPrefix(link, "https://wa.me/2348000000000?text="), link)
	encoded := strings.TrimPrefix(link, "https://wa.me/2348000000000?text=")
	decoded, err := url.QueryUnescape(encoded)
	require.NoError(t, err)
	assert.Equal(t, f.FormatHandoff(order), decoded)
}

func TestNairaGrouping(t *testing.T) {
	t.Parallel()

	f := NewFormatter("2348000000000")
	cases := map[int]string{
		0:       "₦0",
		999:     "₦999",
		1000:    "₦1,000",
		32500:   "₦32,500",
		1250000: "₦1,250,000",
	}
	for amount, want := range cases {
		assert.Equal(t, want, f.Naira(amount), fmt.Sprintf("amount %d", amount))
	}
}
