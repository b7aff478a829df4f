// internal/domain/query/product_service.go
package query

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/your-org/store-admin/internal/domain/catalog"
	"gorm.io/gorm"
)

// ProductService answers product search queries
type ProductService struct {
	db *gorm.DB
}

// NewProductService creates a new product query service
func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// ProductRecord is the shaped product result row
type ProductRecord struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
}

// Name returns the tool name
func (s *ProductService) Name() string {
	return "query_products"
}

// Description returns the tool description
func (s *ProductService) Description() string {
	return "Search and filter products by name, category, price range, and stock level. Returns product details including name, description, price, stock, and category."
}

// Schema returns the tool parameter schema
func (s *ProductService) Schema() Schema {
	return Schema{
		"search":      {Type: "string", Description: "Search term to filter products by name or description"},
		"category_id": {Type: "integer", Description: "Filter by category ID"},
		"min_price":   {Type: "number", Description: "Minimum price filter"},
		"max_price":   {Type: "number", Description: "Maximum price filter"},
		"low_stock":   {Type: "boolean", Description: "If true, only return products with stock <= 10"},
	}
}

// Handle executes the product query. All supplied filters combine
// conjunctively; results are ordered by name and capped.
func (s *ProductService) Handle(params Params) (Result, error) {
	query := s.db.Model(&catalog.Product{}).Preload("Category")

	if search, ok := params.String("search"); ok {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}

	if categoryID, ok := params.Uint("category_id"); ok {
		query = query.Where("category_id = ?", categoryID)
	}

	if minPrice, ok := params.Decimal("min_price"); ok {
		query = query.Where("price >= ?", minPrice)
	}

	if maxPrice, ok := params.Decimal("max_price"); ok {
		query = query.Where("price <= ?", maxPrice)
	}

	if params.Bool("low_stock") {
		query = query.Where("stock <= ?", catalog.LowStockThreshold)
	}

	var products []catalog.Product
	if err := query.Order("name ASC").Limit(resultCap).Find(&products).Error; err != nil {
		return Result{}, fmt.Errorf("failed to query products: %w", err)
	}

	if len(products) == 0 {
		return NewMessage(MsgNoProducts), nil
	}

	records := make([]ProductRecord, 0, len(products))
	for _, p := range products {
		records = append(records, ProductRecord{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Stock:       p.Stock,
			Category:    p.Category.Name,
		})
	}

	return NewRecords(records), nil
}
