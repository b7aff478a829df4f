// internal/domain/query/category_service_test.go
package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryServiceProductCounts(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	electronics := newCategory(t, db, "Electronics")
	newCategory(t, db, "Empty Shelf")

	newProduct(t, db, electronics.ID, "Laptop", "1200.00", 5)
	newProduct(t, db, electronics.ID, "Mouse", "25.00", 50)

	result, err := svc.Handle(Params{})
	require.NoError(t, err)
	require.False(t, result.IsMessage())

	records := result.Records().([]CategoryRecord)
	require.Len(t, records, 2)

	// Ordered by name: Electronics before Empty Shelf
	assert.Equal(t, "Electronics", records[0].Name)
	assert.Equal(t, int64(2), records[0].ProductsCount)

	// A category with no products still appears with an explicit zero
	assert.Equal(t, "Empty Shelf", records[1].Name)
	assert.Equal(t, int64(0), records[1].ProductsCount)
}

func TestCategoryServiceSearch(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	newCategory(t, db, "Electronics")
	newCategory(t, db, "Books")

	result, err := svc.Handle(Params{"search": "ELECT"})
	require.NoError(t, err)

	records := result.Records().([]CategoryRecord)
	require.Len(t, records, 1)
	assert.Equal(t, "Electronics", records[0].Name)
}

func TestCategoryServiceCapsResults(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	for i := 0; i < 55; i++ {
		newCategory(t, db, fmt.Sprintf("Category %03d", i))
	}

	result, err := svc.Handle(Params{})
	require.NoError(t, err)

	records := result.Records().([]CategoryRecord)
	assert.Len(t, records, 50)
}

func TestCategoryServiceEmptySentinel(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	result, err := svc.Handle(Params{"search": "nothing"})
	require.NoError(t, err)
	require.True(t, result.IsMessage())
	assert.Equal(t, "No categories found matching the criteria.", result.Message())
}
