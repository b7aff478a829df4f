// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"github.com/your-org/store-admin/internal/domain/catalog"
	"github.com/your-org/store-admin/internal/domain/order"
	"github.com/your-org/store-admin/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Models in dependency order
	models := []interface{}{
		&user.User{},
		&catalog.Category{},
		&catalog.Product{},
		&order.Order{},
		&order.OrderItem{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		// User indexes
		"CREATE INDEX IF NOT EXISTS idx_users_created_at ON users(created_at DESC)",

		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",
		"CREATE INDEX IF NOT EXISTS idx_products_stock ON products(stock)",
		"CREATE INDEX IF NOT EXISTS idx_products_name ON products(name)",

		// Order indexes
		"CREATE INDEX IF NOT EXISTS idx_orders_user_status ON orders(user_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_orders_status_created ON orders(status, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_total ON orders(total)",
		"CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at DESC)",

		// Order items indexes
		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_product ON order_items(product_id)",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
			failCount++
		} else {
			successCount++
		}
	}

	log.Printf("✅ Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedInitialData inserts initial data into the database
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedCategories(); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	if err := m.seedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := m.seedProducts(); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

// seedCategories creates default product categories
func (m *Migration) seedCategories() error {
	log.Println("🏷️ Seeding categories...")

	categories := []catalog.Category{
		{Name: "Electronics"},
		{Name: "Clothing"},
		{Name: "Books"},
		{Name: "Home & Garden"},
	}

	for _, category := range categories {
		var existing catalog.Category
		result := m.db.Where("name = ?", category.Name).First(&existing)
		if result.Error == gorm.ErrRecordNotFound {
			if err := m.db.Create(&category).Error; err != nil {
				return fmt.Errorf("failed to create category %s: %w", category.Name, err)
			}
			log.Printf("Created category: %s", category.Name)
		}
	}

	return nil
}

// seedAdminUser creates the default admin user
func (m *Migration) seedAdminUser() error {
	log.Println("👤 Seeding admin user...")

	var existing user.User
	result := m.db.Where("email = ?", "admin@example.com").First(&existing)
	if result.Error != gorm.ErrRecordNotFound {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("Admin@Secure99!"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := user.User{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: string(hashed),
		IsAdmin:  true,
	}

	if err := m.db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Println("Created admin user: admin@example.com")
	return nil
}

// seedProducts creates sample products for development
func (m *Migration) seedProducts() error {
	log.Println("📦 Seeding products...")

	var count int64
	m.db.Model(&catalog.Product{}).Count(&count)
	if count > 0 {
		return nil
	}

	var electronics catalog.Category
	if result := m.db.Where("name = ?", "Electronics").First(&electronics); result.Error != nil {
		return nil
	}
	var books catalog.Category
	if result := m.db.Where("name = ?", "Books").First(&books); result.Error != nil {
		return nil
	}

	products := []catalog.Product{
		{
			Name:        "Wireless Headphones",
			Description: "Over-ear wireless headphones with noise cancellation",
			Price:       decimal.NewFromFloat(129.99),
			Stock:       40,
			CategoryID:  electronics.ID,
		},
		{
			Name:        "USB-C Charger",
			Description: "65W fast charger with a braided cable",
			Price:       decimal.NewFromFloat(29.90),
			Stock:       8,
			CategoryID:  electronics.ID,
		},
		{
			Name:        "The Pragmatic Programmer",
			Description: "Classic book on software craftsmanship",
			Price:       decimal.NewFromFloat(44.50),
			Stock:       15,
			CategoryID:  books.ID,
		},
	}

	for _, product := range products {
		if err := m.db.Create(&product).Error; err != nil {
			return fmt.Errorf("failed to create product %s: %w", product.Name, err)
		}
		log.Printf("Created product: %s", product.Name)
	}

	return nil
}

// GetTableInfo logs row counts for the main tables
func (m *Migration) GetTableInfo() {
	tables := []string{"users", "categories", "products", "orders", "order_items"}

	log.Println("📊 Database table information:")
	for _, table := range tables {
		var count int64
		if err := m.db.Table(table).Count(&count).Error; err != nil {
			log.Printf("  %s: error (%v)", table, err)
			continue
		}
		log.Printf("  %s: %d rows", table, count)
	}
}
