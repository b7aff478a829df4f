// internal/domain/order/service.go
package order

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/your-org/store-admin/internal/config"
	"github.com/your-org/store-admin/internal/domain/catalog"
	"github.com/your-org/store-admin/internal/domain/user"
	"gorm.io/gorm"
)

// Service handles order business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new order service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// OrderItemRequest represents a single line in an order creation request
type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// OrderCreateRequest represents order creation data
type OrderCreateRequest struct {
	UserID uint               `json:"user_id" binding:"required"`
	Status string             `json:"status"`
	Items  []OrderItemRequest `json:"items" binding:"required,min=1"`
}

// OrderStatusUpdateRequest represents status update data
type OrderStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderListRequest represents order list query parameters
type OrderListRequest struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=20"`
	UserID uint   `form:"user_id"`
	Status string `form:"status"`
}

// OrderListResponse represents order list with pagination
type OrderListResponse struct {
	Orders     []Order `json:"orders"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"total_pages"`
}

// CreateOrder creates an order with its items in a single transaction.
// Unit prices are snapshotted from the current product price and the
// total is the sum of quantity x unit price over all items.
func (s *Service) CreateOrder(req *OrderCreateRequest) (*Order, error) {
	status := OrderStatusPending
	if req.Status != "" {
		parsed, ok := ParseStatus(req.Status)
		if !ok {
			return nil, fmt.Errorf("invalid order status: %s", req.Status)
		}
		status = parsed
	}

	var order Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var owner user.User
		if result := tx.Where("id = ?", req.UserID).First(&owner); result.Error != nil {
			return fmt.Errorf("user not found")
		}

		total := decimal.Zero
		items := make([]OrderItem, 0, len(req.Items))

		for _, line := range req.Items {
			if line.Quantity < 1 {
				return fmt.Errorf("quantity must be at least 1")
			}

			var product catalog.Product
			if result := tx.Where("id = ?", line.ProductID).First(&product); result.Error != nil {
				return fmt.Errorf("product %d not found", line.ProductID)
			}

			item := OrderItem{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				UnitPrice: product.Price,
			}
			items = append(items, item)
			total = total.Add(item.LineTotal())
		}

		order = Order{
			UserID: req.UserID,
			Status: status,
			Total:  total,
			Items:  items,
		}

		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("User").Preload("Items.Product").First(&order, order.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload order: %w", err)
	}

	return &order, nil
}

// GetOrders retrieves orders with filtering and pagination, newest first
func (s *Service) GetOrders(req *OrderListRequest) (*OrderListResponse, error) {
	var orders []Order
	var total int64

	query := s.db.Model(&Order{}).
		Preload("User").
		Preload("Items.Product")

	if req.UserID > 0 {
		query = query.Where("user_id = ?", req.UserID)
	}

	if req.Status != "" {
		if status, ok := ParseStatus(req.Status); ok {
			query = query.Where("status = ?", status)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	offset := (req.Page - 1) * req.Limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(req.Limit).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))

	return &OrderListResponse{
		Orders:     orders,
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: totalPages,
	}, nil
}

// GetOrder retrieves a single order by ID with user and items
func (s *Service) GetOrder(id uint) (*Order, error) {
	var order Order
	result := s.db.
		Preload("User").
		Preload("Items.Product").
		Where("id = ?", id).
		First(&order)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("failed to retrieve order: %w", result.Error)
	}

	return &order, nil
}

// UpdateStatus transitions an order to a new status
func (s *Service) UpdateStatus(id uint, req *OrderStatusUpdateRequest) (*Order, error) {
	status, ok := ParseStatus(req.Status)
	if !ok {
		return nil, fmt.Errorf("invalid order status: %s", req.Status)
	}

	var order Order
	result := s.db.Where("id = ?", id).First(&order)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("failed to find order: %w", result.Error)
	}

	if err := s.db.Model(&order).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	if err := s.db.Preload("User").Preload("Items.Product").First(&order, order.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload order: %w", err)
	}

	return &order, nil
}

// DeleteOrder deletes an order and its items in one transaction
func (s *Service) DeleteOrder(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var order Order
		result := tx.Where("id = ?", id).First(&order)
		if result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				return fmt.Errorf("order not found")
			}
			return fmt.Errorf("failed to find order: %w", result.Error)
		}

		if err := tx.Where("order_id = ?", id).Delete(&OrderItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}

		if err := tx.Delete(&order).Error; err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}

		return nil
	})
}
