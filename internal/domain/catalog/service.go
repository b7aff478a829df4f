// internal/domain/catalog/service.go
package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/your-org/store-admin/internal/config"
	"gorm.io/gorm"
)

// Service handles product business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new product service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ProductListRequest represents product list query parameters
type ProductListRequest struct {
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=20"`
	CategoryID uint   `form:"category_id"`
	Search     string `form:"search"`
	LowStock   bool   `form:"low_stock"`
}

// ProductCreateRequest represents product creation data
type ProductCreateRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       int             `json:"stock"`
	CategoryID  uint            `json:"category_id" binding:"required"`
}

// ProductUpdateRequest represents product update data
type ProductUpdateRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	CategoryID  *uint            `json:"category_id"`
}

// ProductResponse represents product response with pagination
type ProductResponse struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// Pagination represents pagination information
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// GetProducts retrieves products with filtering and pagination
func (s *Service) GetProducts(req *ProductListRequest) (*ProductResponse, error) {
	var products []Product
	var total int64

	query := s.db.Model(&Product{}).Preload("Category")

	if req.CategoryID > 0 {
		query = query.Where("category_id = ?", req.CategoryID)
	}

	if req.Search != "" {
		search := "%" + strings.ToLower(req.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", search, search)
	}

	if req.LowStock {
		query = query.Where("stock <= ?", LowStockThreshold)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	offset := (req.Page - 1) * req.Limit
	if err := query.Order("name ASC").Offset(offset).Limit(req.Limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))
	pagination := Pagination{
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    req.Page < totalPages,
		HasPrev:    req.Page > 1,
	}

	return &ProductResponse{
		Products:   products,
		Pagination: pagination,
	}, nil
}

// GetProduct retrieves a single product by ID
func (s *Service) GetProduct(id uint) (*Product, error) {
	var product Product
	result := s.db.
		Preload("Category").
		Where("id = ?", id).
		First(&product)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}

	return &product, nil
}

// CreateProduct creates a new product
func (s *Service) CreateProduct(req *ProductCreateRequest) (*Product, error) {
	// Validate category
	var category Category
	if result := s.db.Where("id = ?", req.CategoryID).First(&category); result.Error != nil {
		return nil, fmt.Errorf("category not found")
	}

	if req.Price.IsNegative() {
		return nil, fmt.Errorf("price must not be negative")
	}
	if req.Stock < 0 {
		return nil, fmt.Errorf("stock must not be negative")
	}

	product := Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
	}

	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if err := s.db.Preload("Category").First(&product, product.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload product: %w", err)
	}

	return &product, nil
}

// UpdateProduct updates an existing product. Price changes never touch
// order items already written; unit prices stay frozen at sale time.
func (s *Service) UpdateProduct(id uint, req *ProductUpdateRequest) (*Product, error) {
	var product Product
	result := s.db.Where("id = ?", id).First(&product)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to find product: %w", result.Error)
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, fmt.Errorf("price must not be negative")
		}
		updates["price"] = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, fmt.Errorf("stock must not be negative")
		}
		updates["stock"] = *req.Stock
	}
	if req.CategoryID != nil {
		var category Category
		if result := s.db.Where("id = ?", *req.CategoryID).First(&category); result.Error != nil {
			return nil, fmt.Errorf("category not found")
		}
		updates["category_id"] = *req.CategoryID
	}

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	if err := s.db.Preload("Category").First(&product, product.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload product: %w", err)
	}

	return &product, nil
}

// DeleteProduct deletes a product. Deletion is blocked while any order
// item still references the product.
func (s *Service) DeleteProduct(id uint) error {
	var itemCount int64
	s.db.Table("order_items").Where("product_id = ?", id).Count(&itemCount)
	if itemCount > 0 {
		return fmt.Errorf("cannot delete product referenced by existing orders")
	}

	result := s.db.Where("id = ?", id).Delete(&Product{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product not found")
	}
	return nil
}
