// internal/domain/query/order_service.go
package query

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/your-org/store-admin/internal/domain/order"
	"gorm.io/gorm"
)

// OrderService answers order search queries
type OrderService struct {
	db *gorm.DB
}

// NewOrderService creates a new order query service
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// OrderLineRecord is one shaped line item nested in an order result.
// UnitPrice is the price stored at sale time, not the product's
// current price.
type OrderLineRecord struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderRecord is the shaped order result row
type OrderRecord struct {
	ID        uint              `json:"id"`
	User      string            `json:"user"`
	UserEmail string            `json:"user_email"`
	Status    string            `json:"status"`
	Total     decimal.Decimal   `json:"total"`
	Products  []OrderLineRecord `json:"products"`
	CreatedAt string            `json:"created_at"`
}

// Name returns the tool name
func (s *OrderService) Name() string {
	return "query_orders"
}

// Description returns the tool description
func (s *OrderService) Description() string {
	return "Search and filter orders by status, user, date range, and total amount. Returns order details including user, status, total, and products."
}

// Schema returns the tool parameter schema
func (s *OrderService) Schema() Schema {
	return Schema{
		"status":    {Type: "string", Description: "Filter by order status: pending, processing, shipped, delivered, cancelled"},
		"user_id":   {Type: "integer", Description: "Filter by user ID"},
		"date_from": {Type: "string", Description: "Start date filter (YYYY-MM-DD)"},
		"date_to":   {Type: "string", Description: "End date filter (YYYY-MM-DD)"},
		"min_total": {Type: "number", Description: "Minimum order total"},
		"max_total": {Type: "number", Description: "Maximum order total"},
	}
}

// Handle executes the order query. A status value outside the closed
// enum is ignored, not an error. Date filters compare by calendar
// date, inclusive on both ends. Newest orders come first.
func (s *OrderService) Handle(params Params) (Result, error) {
	query := s.db.Model(&order.Order{}).
		Preload("User").
		Preload("Items.Product")

	if raw, ok := params.String("status"); ok {
		if status, valid := order.ParseStatus(raw); valid {
			query = query.Where("status = ?", status)
		}
	}

	if userID, ok := params.Uint("user_id"); ok {
		query = query.Where("user_id = ?", userID)
	}

	if from, ok := params.Date("date_from"); ok {
		query = query.Where("DATE(created_at) >= ?", from.Format("2006-01-02"))
	}

	if to, ok := params.Date("date_to"); ok {
		query = query.Where("DATE(created_at) <= ?", to.Format("2006-01-02"))
	}

	if minTotal, ok := params.Decimal("min_total"); ok {
		query = query.Where("total >= ?", minTotal)
	}

	if maxTotal, ok := params.Decimal("max_total"); ok {
		query = query.Where("total <= ?", maxTotal)
	}

	var orders []order.Order
	if err := query.Order("created_at DESC").Limit(resultCap).Find(&orders).Error; err != nil {
		return Result{}, fmt.Errorf("failed to query orders: %w", err)
	}

	if len(orders) == 0 {
		return NewMessage(MsgNoOrders), nil
	}

	records := make([]OrderRecord, 0, len(orders))
	for _, o := range orders {
		lines := make([]OrderLineRecord, 0, len(o.Items))
		for _, item := range o.Items {
			lines = append(lines, OrderLineRecord{
				Name:      item.Product.Name,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			})
		}

		records = append(records, OrderRecord{
			ID:        o.ID,
			User:      o.User.Name,
			UserEmail: o.User.Email,
			Status:    string(o.Status),
			Total:     o.Total,
			Products:  lines,
			CreatedAt: o.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return NewRecords(records), nil
}
