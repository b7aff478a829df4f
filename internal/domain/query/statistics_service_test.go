// internal/domain/query/statistics_service_test.go
package query

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/store-admin/internal/domain/order"
)

func TestStatisticsOverview(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatisticsService(db)

	category := newCategory(t, db, "Electronics")
	newProduct(t, db, category.ID, "Laptop", "1200.00", 5)
	newProduct(t, db, category.ID, "Mouse", "25.00", 50)

	buyer := newUser(t, db, "Ada", "ada@example.com")
	newUser(t, db, "Window Shopper", "idle@example.com")

	for i := 0; i < 3; i++ {
		newOrder(t, db, buyer.ID, order.OrderStatusDelivered, "100.00", time.Time{})
	}

	result, err := svc.Handle(Params{"type": "overview"})
	require.NoError(t, err)
	require.False(t, result.IsMessage())

	overview := result.Records().(Overview)
	assert.True(t, overview.TotalRevenue.Equal(mustDecimal(t, "300.00")))
	assert.Equal(t, int64(3), overview.TotalOrders)
	assert.Equal(t, int64(2), overview.TotalProducts)
	assert.Equal(t, int64(1), overview.TotalCustomers)
	assert.True(t, overview.AverageOrderValue.Equal(mustDecimal(t, "100.00")))
}

func TestStatisticsMissingTypeDefaultsToOverview(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatisticsService(db)

	result, err := svc.Handle(Params{})
	require.NoError(t, err)
	require.False(t, result.IsMessage())

	overview := result.Records().(Overview)
	assert.Equal(t, int64(0), overview.TotalOrders)
	assert.True(t, overview.AverageOrderValue.Equal(mustDecimal(t, "0")))
}

func TestStatisticsTopProducts(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatisticsService(db)

	category := newCategory(t, db, "Electronics")
	keyboard := newProduct(t, db, category.ID, "Keyboard", "80.00", 10)
	mouse := newProduct(t, db, category.ID, "Mouse", "25.00", 10)
	buyer := newUser(t, db, "Ada", "ada@example.com")

	newOrder(t, db, buyer.ID, order.OrderStatusDelivered, "185.00", time.Time{},
		order.OrderItem{ProductID: keyboard.ID, Quantity: 2, UnitPrice: mustDecimal(t, "80.00")},
		order.OrderItem{ProductID: mouse.ID, Quantity: 1, UnitPrice: mustDecimal(t, "25.00")},
	)
	newOrder(t, db, buyer.ID, order.OrderStatusPending, "100.00", time.Time{},
		order.OrderItem{ProductID: mouse.ID, Quantity: 4, UnitPrice: mustDecimal(t, "25.00")},
	)

	result, err := svc.Handle(Params{"type": "top_products"})
	require.NoError(t, err)

	records := result.Records().([]TopProductRecord)
	require.Len(t, records, 2)

	// Mouse sold 5 units, keyboard 2; ordered by units sold
	assert.Equal(t, "Mouse", records[0].Name)
	assert.Equal(t, int64(5), records[0].TotalSold)
	assert.True(t, records[0].TotalRevenue.Equal(mustDecimal(t, "125.00")))

	assert.Equal(t, "Keyboard", records[1].Name)
	assert.Equal(t, int64(2), records[1].TotalSold)
	assert.True(t, records[1].TotalRevenue.Equal(mustDecimal(t, "160.00")))
}

func TestStatisticsTopProductsCapped(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatisticsService(db)

	category := newCategory(t, db, "Electronics")
	buyer := newUser(t, db, "Ada", "ada@example.com")

	for i := 0; i < 12; i++ {
		product := newProduct(t, db, category.ID, fmt.Sprintf("Product %02d", i), "10.00", 99)
		newOrder(t, db, buyer.ID, order.OrderStatusDelivered, "10.00", time.Time{},
			order.OrderItem{ProductID: product.ID, Quantity: i + 1, UnitPrice: mustDecimal(t, "10.00")},
		)
	}

	result, err := svc.Handle(Params{"type": "top_products"})
	require.NoError(t, err)

	records := result.Records().([]TopProductRecord)
	require.Len(t, records, 10)
	assert.Equal(t, int64(12), records[0].TotalSold)
	assert.Equal(t, int64(3), records[9].TotalSold)
}

func TestStatisticsTopProductsEmptySentinel(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatisticsService(db)

	result, err := svc.Handle(Params{"type": "top_products"})
	require.NoError(t, err)
	require.True(t, result.IsMessage())
	assert.Equal(t, "No product sales data available.", result.Message())
}

func TestStatisticsTopCustomers(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatisticsService(db)

	big := newUser(t, db, "Big Spender", "big@example.com")
	small := newUser(t, db, "Small Spender", "small@example.com")
	newUser(t, db, "No Orders", "none@example.com")

	newOrder(t, db, big.ID, order.OrderStatusDelivered, "500.00", time.Time{})
	newOrder(t, db, big.ID, order.OrderStatusDelivered, "250.00", time.Time{})
	newOrder(t, db, small.ID, order.OrderStatusDelivered, "40.00", time.Time{})

	result, err := svc.Handle(Params{"type": "top_customers"})
	require.NoError(t, err)

	records := result.Records().([]TopCustomerRecord)
	require.Len(t, records, 2)

	assert.Equal(t, "Big Spender", records[0].Name)
	assert.Equal(t, int64(2), records[0].OrdersCount)
	assert.True(t, records[0].TotalSpent.Equal(mustDecimal(t, "750.00")))

	assert.Equal(t, "Small Spender", records[1].Name)
	assert.Equal(t, int64(1), records[1].OrdersCount)
}

func TestStatisticsTopCustomersCapped(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatisticsService(db)

	for i := 0; i < 12; i++ {
		customer := newUser(t, db, fmt.Sprintf("Customer %02d", i), fmt.Sprintf("c%02d@example.com", i))
		newOrder(t, db, customer.ID, order.OrderStatusDelivered,
			fmt.Sprintf("%d.00", (i+1)*10), time.Time{})
	}

	result, err := svc.Handle(Params{"type": "top_customers"})
	require.NoError(t, err)

	records := result.Records().([]TopCustomerRecord)
	require.Len(t, records, 10)
	assert.True(t, records[0].TotalSpent.Equal(mustDecimal(t, "120.00")))
	assert.True(t, records[9].TotalSpent.Equal(mustDecimal(t, "30.00")))
}

func TestStatisticsTopCustomersEmptySentinel(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatisticsService(db)

	newUser(t, db, "No Orders", "none@example.com")

	result, err := svc.Handle(Params{"type": "top_customers"})
	require.NoError(t, err)
	require.True(t, result.IsMessage())
	assert.Equal(t, "No customer data available.", result.Message())
}

func TestStatisticsLowStock(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatisticsService(db)

	category := newCategory(t, db, "Electronics")
	newProduct(t, db, category.ID, "Nearly Gone", "10.00", 1)
	newProduct(t, db, category.ID, "Boundary", "10.00", 10)
	newProduct(t, db, category.ID, "Plenty", "10.00", 40)

	result, err := svc.Handle(Params{"type": "low_stock"})
	require.NoError(t, err)

	records := result.Records().([]LowStockRecord)
	require.Len(t, records, 2)

	// Ordered by stock ascending, category name included
	assert.Equal(t, "Nearly Gone", records[0].Name)
	assert.Equal(t, 1, records[0].Stock)
	assert.Equal(t, "Electronics", records[0].Category)
	assert.Equal(t, "Boundary", records[1].Name)
}

func TestStatisticsLowStockCapped(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatisticsService(db)

	category := newCategory(t, db, "Electronics")
	for i := 0; i < 25; i++ {
		newProduct(t, db, category.ID, fmt.Sprintf("Scarce %02d", i), "10.00", i%10+1)
	}

	result, err := svc.Handle(Params{"type": "low_stock"})
	require.NoError(t, err)

	records := result.Records().([]LowStockRecord)
	require.Len(t, records, 20)
	for i := 1; i < len(records); i++ {
		assert.LessOrEqual(t, records[i-1].Stock, records[i].Stock)
	}
}

func TestStatisticsLowStockEmptySentinel(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatisticsService(db)

	category := newCategory(t, db, "Electronics")
	newProduct(t, db, category.ID, "Plenty", "10.00", 40)

	result, err := svc.Handle(Params{"type": "low_stock"})
	require.NoError(t, err)
	require.True(t, result.IsMessage())
	assert.Equal(t, "No low stock products found.", result.Message())
}

func TestStatisticsRevenueByStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatisticsService(db)

	buyer := newUser(t, db, "Ada", "ada@example.com")
	newOrder(t, db, buyer.ID, order.OrderStatusDelivered, "100.00", time.Time{})
	newOrder(t, db, buyer.ID, order.OrderStatusDelivered, "100.00", time.Time{})
	newOrder(t, db, buyer.ID, order.OrderStatusPending, "50.00", time.Time{})

	result, err := svc.Handle(Params{"type": "revenue_by_status"})
	require.NoError(t, err)
	require.False(t, result.IsMessage())

	records := result.Records().([]StatusRevenueRecord)
	require.Len(t, records, 2)

	byStatus := map[string]StatusRevenueRecord{}
	for _, r := range records {
		byStatus[r.Status] = r
	}

	assert.Equal(t, int64(2), byStatus["delivered"].OrderCount)
	assert.True(t, byStatus["delivered"].TotalRevenue.Equal(mustDecimal(t, "200.00")))
	assert.Equal(t, int64(1), byStatus["pending"].OrderCount)
	assert.True(t, byStatus["pending"].TotalRevenue.Equal(mustDecimal(t, "50.00")))
}

func TestStatisticsRevenueByStatusEmptyIsValid(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatisticsService(db)

	result, err := svc.Handle(Params{"type": "revenue_by_status"})
	require.NoError(t, err)
	require.False(t, result.IsMessage())

	records := result.Records().([]StatusRevenueRecord)
	assert.Empty(t, records)
}

func TestStatisticsUnknownTypeMessage(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatisticsService(db)

	result, err := svc.Handle(Params{"type": "weekly_digest"})
	require.NoError(t, err)
	require.True(t, result.IsMessage())
	assert.Equal(t,
		"Unknown statistic type. Available types: overview, top_products, top_customers, low_stock, revenue_by_status",
		result.Message())
}
