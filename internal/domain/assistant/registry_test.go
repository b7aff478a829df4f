// internal/domain/assistant/registry_test.go
package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/store-admin/internal/domain/catalog"
	"github.com/your-org/store-admin/internal/domain/order"
	"github.com/your-org/store-admin/internal/domain/query"
	"github.com/your-org/store-admin/internal/domain/user"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

func TestDefaultRegistryToolOrder(t *testing.T) {
	registry := DefaultRegistry(newTestDB(t))

	descriptors := registry.Tools()
	require.Len(t, descriptors, 5)

	names := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{
		"query_products",
		"query_orders",
		"query_categories",
		"query_users",
		"query_statistics",
	}, names)

	for _, d := range descriptors {
		assert.NotEmpty(t, d.Description, d.Name)
		assert.NotEmpty(t, d.Parameters, d.Name)
	}
}

func TestRegistryDispatch(t *testing.T) {
	db := newTestDB(t)
	registry := DefaultRegistry(db)

	text, err := registry.Dispatch("query_products", query.Params{})
	require.NoError(t, err)
	assert.Equal(t, "No products found matching the criteria.", text)

	category := catalog.Category{Name: "Electronics"}
	require.NoError(t, db.Create(&category).Error)

	text, err = registry.Dispatch("query_categories", query.Params{})
	require.NoError(t, err)
	assert.Contains(t, text, "Electronics")
	assert.Contains(t, text, "products_count")
}

func TestRegistryDispatchUnknownTool(t *testing.T) {
	registry := DefaultRegistry(newTestDB(t))

	_, err := registry.Dispatch("drop_tables", query.Params{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tool")
}

func TestRegistryRegisterReplacesByName(t *testing.T) {
	db := newTestDB(t)
	registry := DefaultRegistry(db)

	// Re-registering a name keeps its slot instead of appending
	registry.Register(query.NewProductService(db))

	descriptors := registry.Tools()
	require.Len(t, descriptors, 5)
	assert.Equal(t, "query_products", descriptors[0].Name)
}
