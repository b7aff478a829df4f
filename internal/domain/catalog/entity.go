// internal/domain/catalog/entity.go
package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold is the stock level at or below which a product is
// considered low on stock.
const LowStockThreshold = 10

// Category represents a product category
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null;size:255" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"products,omitempty"`
}

// Product represents the product entity
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CategoryID  uint            `gorm:"not null;index" json:"category_id"`
	Name        string          `gorm:"not null;size:255" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category"`
}

// TableName overrides
func (Category) TableName() string { return "categories" }
func (Product) TableName() string  { return "products" }

// IsInStock reports whether the product has any units available
func (p *Product) IsInStock() bool {
	return p.Stock > 0
}

// IsLowStock reports whether the product is at or below the low stock threshold
func (p *Product) IsLowStock() bool {
	return p.Stock <= LowStockThreshold
}
