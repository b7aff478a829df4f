// internal/domain/assistant/tool.go

// Package assistant exposes the analytics query services as callable
// tools for an externally hosted language model, and persists
// conversation transcripts. The model itself is out of process; this
// layer only describes tools, executes calls and stores history.
package assistant

import "github.com/your-org/store-admin/internal/domain/query"

// Tool is one callable query exposed to the external agent
type Tool interface {
	Name() string
	Description() string
	Schema() query.Schema
	Handle(params query.Params) (query.Result, error)
}

// ToolDescriptor is the serializable tool metadata handed to callers
// so they can construct valid tool invocations.
type ToolDescriptor struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Parameters  query.Schema `json:"parameters"`
}
