// internal/domain/query/category_service.go
package query

import (
	"fmt"
	"strings"

	"github.com/your-org/store-admin/internal/domain/catalog"
	"gorm.io/gorm"
)

// CategoryService answers category search queries
type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new category query service
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// CategoryRecord is the shaped category result row. ProductsCount is
// always present, zero for categories with no products.
type CategoryRecord struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	ProductsCount int64  `json:"products_count"`
}

// Name returns the tool name
func (s *CategoryService) Name() string {
	return "query_categories"
}

// Description returns the tool description
func (s *CategoryService) Description() string {
	return "List and search categories with their product counts. Use this to find categories by name or list all available categories."
}

// Schema returns the tool parameter schema
func (s *CategoryService) Schema() Schema {
	return Schema{
		"search": {Type: "string", Description: "Search term to filter categories by name"},
	}
}

// Handle executes the category query. Product counts come from a
// single grouped LEFT JOIN so categories with no products stay in the
// result with a zero count.
func (s *CategoryService) Handle(params Params) (Result, error) {
	query := s.db.Model(&catalog.Category{}).
		Select("categories.id, categories.name, COUNT(products.id) AS products_count").
		Joins("LEFT JOIN products ON products.category_id = categories.id").
		Group("categories.id, categories.name")

	if search, ok := params.String("search"); ok {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(categories.name) LIKE ?", term)
	}

	var records []CategoryRecord
	if err := query.Order("categories.name ASC").Limit(resultCap).Scan(&records).Error; err != nil {
		return Result{}, fmt.Errorf("failed to query categories: %w", err)
	}

	if len(records) == 0 {
		return NewMessage(MsgNoCategories), nil
	}

	return NewRecords(records), nil
}
