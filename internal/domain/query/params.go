// internal/domain/query/params.go

// Package query implements the read-only analytics layer: five
// stateless services answering parameterized questions about products,
// orders, categories, users and aggregate statistics. Results are
// bounded and shaped for text consumers; malformed filter values are
// treated as absent rather than rejected.
package query

import (
	"time"

	"github.com/shopspring/decimal"
)

// Params is the loosely typed parameter mapping supplied by callers
// (admin report endpoints or the assistant's tool dispatcher). Values
// arrive as JSON-decoded interface{} types.
type Params map[string]interface{}

// ParamSpec describes a single parameter for the tool schema exposed
// to external agents. It is metadata only; no runtime validation is
// derived from it.
type ParamSpec struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required,omitempty"`
}

// Schema maps parameter names to their descriptions
type Schema map[string]ParamSpec

// String extracts a non-empty string parameter
func (p Params) String(key string) (string, bool) {
	v, ok := p[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Bool extracts a boolean parameter. Absent, false or non-boolean
// values all report false.
func (p Params) Bool(key string) bool {
	v, ok := p[key]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// Uint extracts a positive integer parameter. JSON numbers decode as
// float64; integer-typed values are accepted too. Zero, negative and
// malformed values report absent.
func (p Params) Uint(key string) (uint, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		if n > 0 && n == float64(uint(n)) {
			return uint(n), true
		}
	case int:
		if n > 0 {
			return uint(n), true
		}
	case uint:
		if n > 0 {
			return n, true
		}
	}
	return 0, false
}

// Decimal extracts a positive decimal parameter from a JSON number or
// numeric string. Zero, negative and malformed values report absent,
// mirroring the "invalid filter means no filter" policy.
func (p Params) Decimal(key string) (decimal.Decimal, bool) {
	v, ok := p[key]
	if !ok {
		return decimal.Decimal{}, false
	}
	switch n := v.(type) {
	case float64:
		d := decimal.NewFromFloat(n)
		if d.IsPositive() {
			return d, true
		}
	case string:
		if d, err := decimal.NewFromString(n); err == nil && d.IsPositive() {
			return d, true
		}
	case decimal.Decimal:
		if n.IsPositive() {
			return n, true
		}
	}
	return decimal.Decimal{}, false
}

// Date extracts a YYYY-MM-DD date parameter
func (p Params) Date(key string) (time.Time, bool) {
	s, ok := p.String(key)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
