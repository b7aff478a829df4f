// internal/domain/order/service_test.go
package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/store-admin/internal/config"
	"github.com/your-org/store-admin/internal/domain/catalog"
	"github.com/your-org/store-admin/internal/domain/user"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&user.User{},
		&catalog.Category{},
		&catalog.Product{},
		&Order{},
		&OrderItem{},
	))

	return db
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func seedCatalog(t *testing.T, db *gorm.DB) (user.User, catalog.Product, catalog.Product) {
	t.Helper()

	buyer := user.User{Name: "Ada", Email: "ada@example.com", Password: "hash"}
	require.NoError(t, db.Create(&buyer).Error)

	category := catalog.Category{Name: "Electronics"}
	require.NoError(t, db.Create(&category).Error)

	keyboard := catalog.Product{CategoryID: category.ID, Name: "Keyboard", Price: mustDecimal(t, "80.00"), Stock: 10}
	require.NoError(t, db.Create(&keyboard).Error)
	mouse := catalog.Product{CategoryID: category.ID, Name: "Mouse", Price: mustDecimal(t, "25.50"), Stock: 10}
	require.NoError(t, db.Create(&mouse).Error)

	return buyer, keyboard, mouse
}

func TestCreateOrderComputesTotalAndSnapshotsPrices(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, &config.Config{})

	buyer, keyboard, mouse := seedCatalog(t, db)

	created, err := svc.CreateOrder(&OrderCreateRequest{
		UserID: buyer.ID,
		Items: []OrderItemRequest{
			{ProductID: keyboard.ID, Quantity: 2},
			{ProductID: mouse.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)

	// 2 x 80.00 + 3 x 25.50
	assert.True(t, created.Total.Equal(mustDecimal(t, "236.50")))
	assert.Equal(t, OrderStatusPending, created.Status)
	require.Len(t, created.Items, 2)

	// The returned order carries its user and products
	assert.Equal(t, "Ada", created.User.Name)
	assert.NotEmpty(t, created.Items[0].Product.Name)

	// Later price changes must not alter the stored line items
	require.NoError(t, db.Model(&catalog.Product{}).Where("id = ?", keyboard.ID).
		Update("price", mustDecimal(t, "999.00")).Error)

	fetched, err := svc.GetOrder(created.ID)
	require.NoError(t, err)
	for _, item := range fetched.Items {
		if item.ProductID == keyboard.ID {
			assert.True(t, item.UnitPrice.Equal(mustDecimal(t, "80.00")))
		}
	}
	assert.True(t, fetched.Total.Equal(mustDecimal(t, "236.50")))
}

func TestCreateOrderRejectsInvalidStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, &config.Config{})

	buyer, keyboard, _ := seedCatalog(t, db)

	_, err := svc.CreateOrder(&OrderCreateRequest{
		UserID: buyer.ID,
		Status: "refunded",
		Items:  []OrderItemRequest{{ProductID: keyboard.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order status")
}

func TestCreateOrderUnknownUserOrProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, &config.Config{})

	buyer, keyboard, _ := seedCatalog(t, db)

	_, err := svc.CreateOrder(&OrderCreateRequest{
		UserID: 999,
		Items:  []OrderItemRequest{{ProductID: keyboard.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user not found")

	_, err = svc.CreateOrder(&OrderCreateRequest{
		UserID: buyer.ID,
		Items:  []OrderItemRequest{{ProductID: 999, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	// Nothing should have been written by the failed transactions
	var count int64
	db.Model(&Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, &config.Config{})

	buyer, keyboard, _ := seedCatalog(t, db)

	created, err := svc.CreateOrder(&OrderCreateRequest{
		UserID: buyer.ID,
		Items:  []OrderItemRequest{{ProductID: keyboard.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(created.ID, &OrderStatusUpdateRequest{Status: "shipped"})
	require.NoError(t, err)
	assert.Equal(t, OrderStatusShipped, updated.Status)
	assert.Equal(t, "Ada", updated.User.Name)
	require.Len(t, updated.Items, 1)

	_, err = svc.UpdateStatus(created.ID, &OrderStatusUpdateRequest{Status: "lost"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order status")
}

func TestDeleteOrderRemovesItems(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, &config.Config{})

	buyer, keyboard, mouse := seedCatalog(t, db)

	created, err := svc.CreateOrder(&OrderCreateRequest{
		UserID: buyer.ID,
		Items: []OrderItemRequest{
			{ProductID: keyboard.ID, Quantity: 1},
			{ProductID: mouse.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(created.ID))

	var itemCount int64
	db.Model(&OrderItem{}).Where("order_id = ?", created.ID).Count(&itemCount)
	assert.Equal(t, int64(0), itemCount)

	_, err = svc.GetOrder(created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order not found")
}

func TestGetOrdersFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, &config.Config{})

	buyer, keyboard, _ := seedCatalog(t, db)
	other := user.User{Name: "Bob", Email: "bob@example.com", Password: "hash"}
	require.NoError(t, db.Create(&other).Error)

	_, err := svc.CreateOrder(&OrderCreateRequest{
		UserID: buyer.ID,
		Status: "delivered",
		Items:  []OrderItemRequest{{ProductID: keyboard.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	_, err = svc.CreateOrder(&OrderCreateRequest{
		UserID: other.ID,
		Items:  []OrderItemRequest{{ProductID: keyboard.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	resp, err := svc.GetOrders(&OrderListRequest{Page: 1, Limit: 20, UserID: buyer.ID, Status: "delivered"})
	require.NoError(t, err)
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, buyer.ID, resp.Orders[0].UserID)
	assert.Equal(t, OrderStatusDelivered, resp.Orders[0].Status)
}

func TestOrderStatusMetadata(t *testing.T) {
	cases := []struct {
		status OrderStatus
		label  string
		color  string
		icon   string
	}{
		{OrderStatusPending, "Pending", "warning", "clock"},
		{OrderStatusProcessing, "Processing", "info", "arrow-path"},
		{OrderStatusShipped, "Shipped", "primary", "truck"},
		{OrderStatusDelivered, "Delivered", "success", "check-circle"},
		{OrderStatusCancelled, "Cancelled", "danger", "x-circle"},
	}

	for _, c := range cases {
		assert.Equal(t, c.label, c.status.Label())
		assert.Equal(t, c.color, c.status.Color())
		assert.Equal(t, c.icon, c.status.Icon())
	}

	_, ok := ParseStatus("refunded")
	assert.False(t, ok)
}
