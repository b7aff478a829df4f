// internal/domain/query/product_service_test.go
package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductServiceFiltersAreConjunctive(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)

	electronics := newCategory(t, db, "Electronics")
	books := newCategory(t, db, "Books")

	newProduct(t, db, electronics.ID, "Laptop Pro", "1200.00", 5)
	newProduct(t, db, electronics.ID, "Laptop Air", "45.00", 30)
	newProduct(t, db, books.ID, "Laptop Repair Guide", "60.00", 12)
	newProduct(t, db, electronics.ID, "Mouse", "25.00", 50)

	result, err := svc.Handle(Params{
		"search":      "laptop",
		"category_id": float64(electronics.ID),
		"min_price":   20.0,
		"max_price":   80.0,
	})
	require.NoError(t, err)
	require.False(t, result.IsMessage())

	records := result.Records().([]ProductRecord)
	require.Len(t, records, 1)
	assert.Equal(t, "Laptop Air", records[0].Name)
	assert.Equal(t, "Electronics", records[0].Category)
	assert.True(t, records[0].Price.GreaterThanOrEqual(mustDecimal(t, "20")))
	assert.True(t, records[0].Price.LessThanOrEqual(mustDecimal(t, "80")))
}

func TestProductServiceLowStockFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)

	category := newCategory(t, db, "Electronics")
	newProduct(t, db, category.ID, "Scarce", "10.00", 3)
	newProduct(t, db, category.ID, "Boundary", "10.00", 10)
	newProduct(t, db, category.ID, "Plenty", "10.00", 11)

	result, err := svc.Handle(Params{"low_stock": true})
	require.NoError(t, err)

	records := result.Records().([]ProductRecord)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.LessOrEqual(t, r.Stock, 10)
	}
}

func TestProductServiceOrdersByNameAndCaps(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)

	category := newCategory(t, db, "Bulk")
	for i := 0; i < 55; i++ {
		newProduct(t, db, category.ID, fmt.Sprintf("Product %03d", i), "5.00", 1)
	}

	result, err := svc.Handle(Params{})
	require.NoError(t, err)

	records := result.Records().([]ProductRecord)
	assert.Len(t, records, 50)
	for i := 1; i < len(records); i++ {
		assert.LessOrEqual(t, records[i-1].Name, records[i].Name)
	}
}

func TestProductServiceEmptySentinel(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)

	result, err := svc.Handle(Params{"search": "nothing matches this"})
	require.NoError(t, err)
	require.True(t, result.IsMessage())
	assert.Equal(t, "No products found matching the criteria.", result.Message())
}

func TestProductServiceMalformedFiltersIgnored(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)

	category := newCategory(t, db, "Electronics")
	newProduct(t, db, category.ID, "Widget", "10.00", 5)

	// Malformed values behave as if the filter was never supplied
	result, err := svc.Handle(Params{
		"category_id": "not-a-number",
		"min_price":   "garbage",
	})
	require.NoError(t, err)

	records := result.Records().([]ProductRecord)
	assert.Len(t, records, 1)
}
