// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/store-admin/internal/domain/catalog"
	"github.com/your-org/store-admin/internal/domain/user"
)

// OrderStatus represents the order status
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Statuses returns all valid order statuses in display order
func Statuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

// ParseStatus maps a string onto the closed status set. Unknown values
// report ok=false; filters treat that as "no filter applied".
func ParseStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

// Valid reports whether the status belongs to the closed set
func (s OrderStatus) Valid() bool {
	_, ok := ParseStatus(string(s))
	return ok
}

// Label returns the human-readable status label
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusPending:
		return "Pending"
	case OrderStatusProcessing:
		return "Processing"
	case OrderStatusShipped:
		return "Shipped"
	case OrderStatusDelivered:
		return "Delivered"
	case OrderStatusCancelled:
		return "Cancelled"
	}
	return string(s)
}

// Color returns the badge color used by admin UIs
func (s OrderStatus) Color() string {
	switch s {
	case OrderStatusPending:
		return "warning"
	case OrderStatusProcessing:
		return "info"
	case OrderStatusShipped:
		return "primary"
	case OrderStatusDelivered:
		return "success"
	case OrderStatusCancelled:
		return "danger"
	}
	return ""
}

// Icon returns the icon name used by admin UIs
func (s OrderStatus) Icon() string {
	switch s {
	case OrderStatusPending:
		return "clock"
	case OrderStatusProcessing:
		return "arrow-path"
	case OrderStatusShipped:
		return "truck"
	case OrderStatusDelivered:
		return "check-circle"
	case OrderStatusCancelled:
		return "x-circle"
	}
	return ""
}

// Order represents the order entity. Total is set by the writer at
// creation time and is never recomputed by readers.
type Order struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"not null;index" json:"user_id"`
	Status    OrderStatus     `gorm:"not null;size:20;default:'pending'" json:"status"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// Relationships
	User  user.User   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"user"`
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// OrderItem associates an order with a product. UnitPrice is a snapshot
// of the product price at the time of sale, independent of the
// product's current price.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"not null;index" json:"order_id"`
	ProductID uint            `gorm:"not null;index" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// Relationships
	Product catalog.Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"product"`
}

// TableName overrides
func (Order) TableName() string     { return "orders" }
func (OrderItem) TableName() string { return "order_items" }

// LineTotal returns quantity x unit price for the item
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CanBeCancelled checks if the order can still be cancelled
func (o *Order) CanBeCancelled() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusProcessing
}
