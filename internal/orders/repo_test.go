package orders

import (
	"context"
	"testing"

	"github.com/giftnest/giftnest-backend/pkg/db/models"
	"github.com/giftnest/giftnest-backend/pkg/enums"
	"github.com/giftnest/giftnest-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	orders := `
CREATE TABLE orders (
  id TEXT PRIMARY KEY,
  order_number TEXT NOT NULL UNIQUE,
  event_id TEXT NOT NULL,
  customer_name TEXT NOT NULL,
  customer_email TEXT,
  customer_phone TEXT NOT NULL,
  secondary_phone TEXT,
  whatsapp TEXT,
  address TEXT NOT NULL,
  city TEXT NOT NULL,
  custom_message TEXT,
  sub_total INTEGER NOT NULL,
  service_fee INTEGER NOT NULL,
  total_amount INTEGER NOT NULL,
  status TEXT NOT NULL DEFAULT 'PENDING',
  created_at DATETIME,
  updated_at DATETIME
);`
	items := `
CREATE TABLE order_line_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  position INTEGER NOT NULL DEFAULT 0,
  line_type TEXT NOT NULL,
  reference_id TEXT NOT NULL,
  name TEXT NOT NULL,
  qty INTEGER NOT NULL,
  unit_price INTEGER NOT NULL,
  line_total INTEGER NOT NULL,
  variant_selection TEXT,
  customization TEXT,
  booking_date TEXT,
  booking_time TEXT,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(orders).Error)
	require.NoError(t, db.Exec(items).Error)
	return db
}

func sampleOrder() *models.Order {
	return &models.Order{
		ID:            uuid.New(),
		OrderNumber:   NewOrderNumber("GFT"),
		EventID:       uuid.New(),
		CustomerName:  "Adaeze Obi",
		CustomerPhone: "08031234567",
		Address:       "14 Glover Road, Ikoyi",
		City:          "Lagos",
		SubTotal:      30000,
		ServiceFee:    2500,
		TotalAmount:   32500,
		Status:        enums.OrderStatusPending,
		Items: []models.OrderLineItem{
			{
				ID:          uuid.New(),
				LineType:    enums.LineTypeProduct,
				ReferenceID: uuid.New().String(),
				Name:        "Rose Box",
				Qty:         2,
				UnitPrice:   15000,
				LineTotal:   30000,
				VariantSelection: types.VariantSelection{
					"size": {Value: "deluxe", PriceModifier: 5000},
				},
			},
		},
	}
}

func TestCreateAndFindByOrderNumber(t *testing.T) {
	t.Parallel()

	repo := NewRepository(setupOrdersTestDB(t))
	ctx := context.Background()

	order := sampleOrder()
	_, err := repo.Create(ctx, order)
	require.NoError(t, err)

	found, err := repo.FindByOrderNumber(ctx, order.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
	assert.Equal(t, 32500, found.TotalAmount)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Rose Box", found.Items[0].Name)
	assert.Equal(t, 5000, found.Items[0].VariantSelection["size"].PriceModifier)
}

func TestFindKeepsItemSequence(t *testing.T) {
	t.Parallel()

	repo := NewRepository(setupOrdersTestDB(t))
	ctx := context.Background()

	order := sampleOrder()
	// Rows are written out of sequence; the reload must follow position,
	// not insertion order.
	order.Items = []models.OrderLineItem{
		{ID: uuid.New(), Position: 2, LineType: enums.LineTypeAddon, ReferenceID: uuid.New().String(), Name: "Gift Wrap", Qty: 1, UnitPrice: 2000, LineTotal: 2000},
		{ID: uuid.New(), Position: 0, LineType: enums.LineTypeProduct, ReferenceID: uuid.New().String(), Name: "Rose Box", Qty: 1, UnitPrice: 15000, LineTotal: 15000},
		{ID: uuid.New(), Position: 1, LineType: enums.LineTypeProduct, ReferenceID: uuid.New().String(), Name: "Chocolate Tray", Qty: 1, UnitPrice: 13000, LineTotal: 13000},
	}
	_, err := repo.Create(ctx, order)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 3)
	assert.Equal(t, "Rose Box", found.Items[0].Name)
	assert.Equal(t, "Chocolate Tray", found.Items[1].Name)
	assert.Equal(t, "Gift Wrap", found.Items[2].Name)
}

func TestListFiltersByStatus(t *testing.T) {
	t.Parallel()

	repo := NewRepository(setupOrdersTestDB(t))
	ctx := context.Background()

	pending := sampleOrder()
	_, err := repo.Create(ctx, pending)
	require.NoError(t, err)

	shipped := sampleOrder()
	shipped.Status = enums.OrderStatusShipped
	_, err = repo.Create(ctx, shipped)
	require.NoError(t, err)

	status := enums.OrderStatusShipped
	orders, err := repo.List(ctx, ListFilters{Status: &status, Limit: 10})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, shipped.ID, orders[0].ID)
}

func TestUpdateStatusMissingOrder(t *testing.T) {
	t.Parallel()

	repo := NewRepository(setupOrdersTestDB(t))
	err := repo.UpdateStatus(context.Background(), uuid.New(), enums.OrderStatusConfirmed)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateStatusPersists(t *testing.T) {
	t.Parallel()

	repo := NewRepository(setupOrdersTestDB(t))
	ctx := context.Background()

	order := sampleOrder()
	_, err := repo.Create(ctx, order)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(ctx, order.ID, enums.OrderStatusConfirmed))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusConfirmed, found.Status)
}
