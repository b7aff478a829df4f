// internal/domain/query/statistics_service.go
package query

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/your-org/store-admin/internal/domain/catalog"
	"github.com/your-org/store-admin/internal/domain/order"
	"github.com/your-org/store-admin/internal/domain/user"
	"gorm.io/gorm"
)

// StatisticsService computes fixed aggregate reports over the store
type StatisticsService struct {
	db *gorm.DB
}

// NewStatisticsService creates a new statistics service
func NewStatisticsService(db *gorm.DB) *StatisticsService {
	return &StatisticsService{db: db}
}

// Overview is the store-wide summary report
type Overview struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalOrders       int64           `json:"total_orders"`
	TotalProducts     int64           `json:"total_products"`
	TotalCustomers    int64           `json:"total_customers"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

// TopProductRecord is one row of the top selling products report
type TopProductRecord struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	TotalSold    int64           `json:"total_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// TopCustomerRecord is one row of the top customers report
type TopCustomerRecord struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	OrdersCount int64           `json:"orders_count"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
}

// LowStockRecord is one row of the low stock report
type LowStockRecord struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Stock    int             `json:"stock"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

// StatusRevenueRecord is one row of the revenue by status report
type StatusRevenueRecord struct {
	Status       string          `json:"status"`
	OrderCount   int64           `json:"order_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// Name returns the tool name
func (s *StatisticsService) Name() string {
	return "query_statistics"
}

// Description returns the tool description
func (s *StatisticsService) Description() string {
	return "Get aggregate statistics about the store: total revenue, order counts by status, top selling products, top customers by spending, and low stock products."
}

// Schema returns the tool parameter schema
func (s *StatisticsService) Schema() Schema {
	return Schema{
		"type": {Type: "string", Description: "Type of statistic: overview, top_products, top_customers, low_stock, revenue_by_status", Required: true},
	}
}

// Handle dispatches on the report type. A missing type falls back to
// the overview report; an unknown type yields a message listing the
// valid options.
func (s *StatisticsService) Handle(params Params) (Result, error) {
	reportType, ok := params.String("type")
	if !ok {
		reportType = "overview"
	}

	switch reportType {
	case "overview":
		return s.overview()
	case "top_products":
		return s.topProducts()
	case "top_customers":
		return s.topCustomers()
	case "low_stock":
		return s.lowStock()
	case "revenue_by_status":
		return s.revenueByStatus()
	}
	return NewMessage(MsgUnknownStatistic), nil
}

func (s *StatisticsService) overview() (Result, error) {
	var revenue struct {
		Total decimal.Decimal
	}
	if err := s.db.Model(&order.Order{}).
		Select("COALESCE(SUM(total), 0) AS total").
		Scan(&revenue).Error; err != nil {
		return Result{}, fmt.Errorf("failed to sum order totals: %w", err)
	}
	totalRevenue := revenue.Total

	var totalOrders int64
	if err := s.db.Model(&order.Order{}).Count(&totalOrders).Error; err != nil {
		return Result{}, fmt.Errorf("failed to count orders: %w", err)
	}

	var totalProducts int64
	if err := s.db.Model(&catalog.Product{}).Count(&totalProducts).Error; err != nil {
		return Result{}, fmt.Errorf("failed to count products: %w", err)
	}

	var totalCustomers int64
	if err := s.db.Model(&user.User{}).
		Where("EXISTS (SELECT 1 FROM orders WHERE orders.user_id = users.id)").
		Count(&totalCustomers).Error; err != nil {
		return Result{}, fmt.Errorf("failed to count customers: %w", err)
	}

	// AVG over zero rows is NULL; the average of no orders is zero
	average := decimal.Zero
	if totalOrders > 0 {
		average = totalRevenue.Div(decimal.NewFromInt(totalOrders)).Round(2)
	}

	return NewRecords(Overview{
		TotalRevenue:      totalRevenue,
		TotalOrders:       totalOrders,
		TotalProducts:     totalProducts,
		TotalCustomers:    totalCustomers,
		AverageOrderValue: average,
	}), nil
}

func (s *StatisticsService) topProducts() (Result, error) {
	var records []TopProductRecord
	err := s.db.Model(&catalog.Product{}).
		Select("products.id, products.name, products.price, "+
			"SUM(order_items.quantity) AS total_sold, "+
			"SUM(order_items.quantity * order_items.unit_price) AS total_revenue").
		Joins("JOIN order_items ON order_items.product_id = products.id").
		Group("products.id, products.name, products.price").
		Order("total_sold DESC").
		Limit(topListCap).
		Scan(&records).Error
	if err != nil {
		return Result{}, fmt.Errorf("failed to query top products: %w", err)
	}

	if len(records) == 0 {
		return NewMessage(MsgNoProductSales), nil
	}

	return NewRecords(records), nil
}

func (s *StatisticsService) topCustomers() (Result, error) {
	var records []TopCustomerRecord
	err := s.db.Model(&user.User{}).
		Select("users.id, users.name, users.email, "+
			"COUNT(orders.id) AS orders_count, "+
			"SUM(orders.total) AS total_spent").
		Joins("JOIN orders ON orders.user_id = users.id").
		Group("users.id, users.name, users.email").
		Order("total_spent DESC").
		Limit(topListCap).
		Scan(&records).Error
	if err != nil {
		return Result{}, fmt.Errorf("failed to query top customers: %w", err)
	}

	if len(records) == 0 {
		return NewMessage(MsgNoCustomerData), nil
	}

	return NewRecords(records), nil
}

func (s *StatisticsService) lowStock() (Result, error) {
	var records []LowStockRecord
	err := s.db.Model(&catalog.Product{}).
		Select("products.id, products.name, products.stock, products.price, categories.name AS category").
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.stock <= ?", catalog.LowStockThreshold).
		Order("products.stock ASC").
		Limit(lowStockCap).
		Scan(&records).Error
	if err != nil {
		return Result{}, fmt.Errorf("failed to query low stock products: %w", err)
	}

	if len(records) == 0 {
		return NewMessage(MsgNoLowStockProducts), nil
	}

	return NewRecords(records), nil
}

// revenueByStatus has no empty sentinel; an empty list is valid output
func (s *StatisticsService) revenueByStatus() (Result, error) {
	var records []StatusRevenueRecord
	err := s.db.Model(&order.Order{}).
		Select("status, COUNT(*) AS order_count, SUM(total) AS total_revenue").
		Group("status").
		Order("status ASC").
		Scan(&records).Error
	if err != nil {
		return Result{}, fmt.Errorf("failed to query revenue by status: %w", err)
	}

	if records == nil {
		records = []StatusRevenueRecord{}
	}

	return NewRecords(records), nil
}
