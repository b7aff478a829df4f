// internal/domain/query/result.go
package query

import (
	"encoding/json"
	"fmt"
)

// Result caps shared by the query services
const (
	resultCap   = 50
	topListCap  = 10
	lowStockCap = 20
)

// Fixed messages returned in place of empty result sets, and the
// statistics response for an unknown report type. Callers compare
// these byte-for-byte.
const (
	MsgNoProducts         = "No products found matching the criteria."
	MsgNoOrders           = "No orders found matching the criteria."
	MsgNoCategories       = "No categories found matching the criteria."
	MsgNoUsers            = "No users found matching the criteria."
	MsgNoProductSales     = "No product sales data available."
	MsgNoCustomerData     = "No customer data available."
	MsgNoLowStockProducts = "No low stock products found."
	MsgUnknownStatistic   = "Unknown statistic type. Available types: overview, top_products, top_customers, low_stock, revenue_by_status"
)

// Result is the tagged outcome of a query: either an ordered list of
// shaped records, or a fixed human-readable message. The two are
// distinguishable so callers cannot confuse "no rows" with a populated
// response.
type Result struct {
	records interface{}
	message string
}

// NewRecords wraps a populated record list
func NewRecords(records interface{}) Result {
	return Result{records: records}
}

// NewMessage wraps a fixed message
func NewMessage(message string) Result {
	return Result{message: message}
}

// IsMessage reports whether the result carries a message instead of records
func (r Result) IsMessage() bool {
	return r.message != ""
}

// Message returns the fixed message, empty for record results
func (r Result) Message() string {
	return r.message
}

// Records returns the record list, nil for message results
func (r Result) Records() interface{} {
	return r.records
}

// Text renders the result for a text consumer: the message verbatim,
// or the records as a JSON array.
func (r Result) Text() (string, error) {
	if r.IsMessage() {
		return r.message, nil
	}
	data, err := json.Marshal(r.records)
	if err != nil {
		return "", fmt.Errorf("failed to encode records: %w", err)
	}
	return string(data), nil
}
