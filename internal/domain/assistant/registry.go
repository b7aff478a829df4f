// internal/domain/assistant/registry.go
package assistant

import (
	"fmt"

	"github.com/your-org/store-admin/internal/domain/query"
	"gorm.io/gorm"
)

// Registry holds the available tools in declaration order
type Registry struct {
	tools []Tool
	index map[string]Tool
}

// NewRegistry creates an empty tool registry
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]Tool),
	}
}

// DefaultRegistry creates a registry with the five query services
func DefaultRegistry(db *gorm.DB) *Registry {
	r := NewRegistry()
	r.Register(query.NewProductService(db))
	r.Register(query.NewOrderService(db))
	r.Register(query.NewCategoryService(db))
	r.Register(query.NewUserService(db))
	r.Register(query.NewStatisticsService(db))
	return r
}

// Register adds a tool. Registering the same name twice replaces the
// earlier entry but keeps its position.
func (r *Registry) Register(tool Tool) {
	if _, exists := r.index[tool.Name()]; !exists {
		r.tools = append(r.tools, tool)
	} else {
		for i, t := range r.tools {
			if t.Name() == tool.Name() {
				r.tools[i] = tool
				break
			}
		}
	}
	r.index[tool.Name()] = tool
}

// Tools returns descriptors for all registered tools in order
func (r *Registry) Tools() []ToolDescriptor {
	descriptors := make([]ToolDescriptor, 0, len(r.tools))
	for _, tool := range r.tools {
		descriptors = append(descriptors, ToolDescriptor{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Schema(),
		})
	}
	return descriptors
}

// Get returns a tool by name
func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.index[name]
	return tool, ok
}

// Dispatch executes the named tool and renders its result as text
func (r *Registry) Dispatch(name string, params query.Params) (string, error) {
	tool, ok := r.index[name]
	if !ok {
		return "", fmt.Errorf("unknown tool: %s", name)
	}

	result, err := tool.Handle(params)
	if err != nil {
		return "", fmt.Errorf("tool %s failed: %w", name, err)
	}

	return result.Text()
}
