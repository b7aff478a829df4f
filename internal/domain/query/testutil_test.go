// internal/domain/query/testutil_test.go
package query

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/your-org/store-admin/internal/domain/catalog"
	"github.com/your-org/store-admin/internal/domain/order"
	"github.com/your-org/store-admin/internal/domain/user"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the full schema.
// A single connection keeps the in-memory database alive across
// queries.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&user.User{},
		&catalog.Category{},
		&catalog.Product{},
		&order.Order{},
		&order.OrderItem{},
	))

	return db
}

func newCategory(t *testing.T, db *gorm.DB, name string) catalog.Category {
	t.Helper()
	category := catalog.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func newProduct(t *testing.T, db *gorm.DB, categoryID uint, name string, price string, stock int) catalog.Product {
	t.Helper()
	product := catalog.Product{
		CategoryID:  categoryID,
		Name:        name,
		Description: name + " description",
		Price:       mustDecimal(t, price),
		Stock:       stock,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func newUser(t *testing.T, db *gorm.DB, name, email string) user.User {
	t.Helper()
	account := user.User{
		Name:          name,
		Email:         email,
		Password:      "secret-hash",
		RememberToken: "remember-token",
	}
	require.NoError(t, db.Create(&account).Error)
	return account
}

func newOrder(t *testing.T, db *gorm.DB, userID uint, status order.OrderStatus, total string, createdAt time.Time, items ...order.OrderItem) order.Order {
	t.Helper()
	o := order.Order{
		UserID: userID,
		Status: status,
		Total:  mustDecimal(t, total),
		Items:  items,
	}
	require.NoError(t, db.Create(&o).Error)
	if !createdAt.IsZero() {
		require.NoError(t, db.Model(&order.Order{}).Where("id = ?", o.ID).
			Update("created_at", createdAt).Error)
		o.CreatedAt = createdAt
	}
	return o
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
