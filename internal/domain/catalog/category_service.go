// internal/domain/catalog/category_service.go
package catalog

import (
	"fmt"

	"github.com/your-org/store-admin/internal/config"
	"gorm.io/gorm"
)

// CategoryService handles category business logic
type CategoryService struct {
	db     *gorm.DB
	config *config.Config
}

// NewCategoryService creates a new category service
func NewCategoryService(db *gorm.DB, cfg *config.Config) *CategoryService {
	return &CategoryService{
		db:     db,
		config: cfg,
	}
}

// CategoryCreateRequest represents category creation data
type CategoryCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryUpdateRequest represents category update data
type CategoryUpdateRequest struct {
	Name *string `json:"name"`
}

// GetCategories retrieves all categories ordered by name
func (s *CategoryService) GetCategories() ([]Category, error) {
	var categories []Category

	if err := s.db.Model(&Category{}).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}

	return categories, nil
}

// GetCategory retrieves a single category by ID
func (s *CategoryService) GetCategory(id uint) (*Category, error) {
	var category Category
	result := s.db.Where("id = ?", id).First(&category)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("category not found")
		}
		return nil, fmt.Errorf("failed to retrieve category: %w", result.Error)
	}

	return &category, nil
}

// CreateCategory creates a new category
func (s *CategoryService) CreateCategory(req *CategoryCreateRequest) (*Category, error) {
	// Category names are unique
	var existing Category
	if result := s.db.Where("name = ?", req.Name).First(&existing); result.Error == nil {
		return nil, fmt.Errorf("category with name %s already exists", req.Name)
	}

	category := Category{
		Name: req.Name,
	}

	if err := s.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &category, nil
}

// UpdateCategory updates an existing category
func (s *CategoryService) UpdateCategory(id uint, req *CategoryUpdateRequest) (*Category, error) {
	var category Category
	result := s.db.Where("id = ?", id).First(&category)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("category not found")
		}
		return nil, fmt.Errorf("failed to find category: %w", result.Error)
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		var existing Category
		if result := s.db.Where("name = ? AND id <> ?", *req.Name, id).First(&existing); result.Error == nil {
			return nil, fmt.Errorf("category with name %s already exists", *req.Name)
		}
		updates["name"] = *req.Name
	}

	if len(updates) > 0 {
		if err := s.db.Model(&category).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update category: %w", err)
		}
	}

	return &category, nil
}

// DeleteCategory deletes a category. Deletion is blocked while any
// product still references the category.
func (s *CategoryService) DeleteCategory(id uint) error {
	var productCount int64
	s.db.Model(&Product{}).Where("category_id = ?", id).Count(&productCount)
	if productCount > 0 {
		return fmt.Errorf("cannot delete category with existing products")
	}

	result := s.db.Where("id = ?", id).Delete(&Category{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("category not found")
	}
	return nil
}
