// internal/interfaces/http/handlers/reports.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/store-admin/internal/config"
	"github.com/your-org/store-admin/internal/domain/query"
	"gorm.io/gorm"
)

// reportTool is the common surface of the query services
type reportTool interface {
	Schema() query.Schema
	Handle(params query.Params) (query.Result, error)
}

// ReportsHandler exposes the analytics query layer as admin endpoints
type ReportsHandler struct {
	products   *query.ProductService
	orders     *query.OrderService
	categories *query.CategoryService
	users      *query.UserService
	statistics *query.StatisticsService
	config     *config.Config
}

// NewReportsHandler creates a new reports handler
func NewReportsHandler(db *gorm.DB, cfg *config.Config) *ReportsHandler {
	return &ReportsHandler{
		products:   query.NewProductService(db),
		orders:     query.NewOrderService(db),
		categories: query.NewCategoryService(db),
		users:      query.NewUserService(db),
		statistics: query.NewStatisticsService(db),
		config:     cfg,
	}
}

// GetProducts handles GET /admin/reports/products
func (h *ReportsHandler) GetProducts(c *gin.Context) {
	h.respond(c, h.products)
}

// GetOrders handles GET /admin/reports/orders
func (h *ReportsHandler) GetOrders(c *gin.Context) {
	h.respond(c, h.orders)
}

// GetCategories handles GET /admin/reports/categories
func (h *ReportsHandler) GetCategories(c *gin.Context) {
	h.respond(c, h.categories)
}

// GetUsers handles GET /admin/reports/users
func (h *ReportsHandler) GetUsers(c *gin.Context) {
	h.respond(c, h.users)
}

// GetStatistics handles GET /admin/reports/statistics
func (h *ReportsHandler) GetStatistics(c *gin.Context) {
	h.respond(c, h.statistics)
}

// respond maps the query string onto the tool's parameters and writes
// either the record list or the tool's message.
func (h *ReportsHandler) respond(c *gin.Context, tool reportTool) {
	params := paramsFromQuery(c, tool.Schema())

	result, err := tool.Handle(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to run report",
		})
		return
	}

	if result.IsMessage() {
		c.JSON(http.StatusOK, gin.H{
			"message": result.Message(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": result.Records(),
	})
}

// paramsFromQuery converts query string values using the tool's schema
// types. Unparseable values are dropped, matching the query layer's
// treatment of malformed filters.
func paramsFromQuery(c *gin.Context, schema query.Schema) query.Params {
	params := query.Params{}

	for name, spec := range schema {
		raw := c.Query(name)
		if raw == "" {
			continue
		}

		switch spec.Type {
		case "integer", "number":
			if f, err := strconv.ParseFloat(raw, 64); err == nil {
				params[name] = f
			}
		case "boolean":
			if b, err := strconv.ParseBool(raw); err == nil {
				params[name] = b
			}
		default:
			params[name] = raw
		}
	}

	return params
}
