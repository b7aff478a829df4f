// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/store-admin/internal/config"
	"github.com/your-org/store-admin/internal/infrastructure/database/redis"
	"github.com/your-org/store-admin/internal/interfaces/http/handlers"
	"github.com/your-org/store-admin/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires all API routes
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	setupAuthRoutes(rg, db, cfg)
	setupAdminRoutes(rg, db, cfg)
	setupAssistantRoutes(rg, db, redisClient, cfg)
}

// setupAuthRoutes sets up authentication related routes
func setupAuthRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)

	auth := rg.Group("/auth")
	{
		// Public auth endpoints
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)

		// Protected auth endpoints
		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.GET("/profile", authHandler.GetProfile)
		}
	}
}

// setupAdminRoutes sets up the admin back office routes
func setupAdminRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	categoryHandler := handlers.NewCategoryHandler(db, cfg)
	productHandler := handlers.NewProductHandler(db, cfg)
	orderHandler := handlers.NewOrderHandler(db, cfg)
	userHandler := handlers.NewUserAdminHandler(db, cfg)
	reportsHandler := handlers.NewReportsHandler(db, cfg)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.AdminMiddleware())
	{
		// Category management
		categories := admin.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.GET("/:id", categoryHandler.GetCategory)
			categories.POST("", categoryHandler.CreateCategory)
			categories.PUT("/:id", categoryHandler.UpdateCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}

		// Product management
		products := admin.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", productHandler.CreateProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}

		// Order management
		orders := admin.Group("/orders")
		{
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.POST("", orderHandler.CreateOrder)
			orders.PUT("/:id/status", orderHandler.UpdateOrderStatus)
			orders.DELETE("/:id", orderHandler.DeleteOrder)
			orders.GET("/:id/invoice", orderHandler.GetInvoice)
		}

		// User management
		users := admin.Group("/users")
		{
			users.GET("", userHandler.GetUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// Analytics reports
		reports := admin.Group("/reports")
		{
			reports.GET("/products", reportsHandler.GetProducts)
			reports.GET("/orders", reportsHandler.GetOrders)
			reports.GET("/categories", reportsHandler.GetCategories)
			reports.GET("/users", reportsHandler.GetUsers)
			reports.GET("/statistics", reportsHandler.GetStatistics)
		}
	}
}

// setupAssistantRoutes sets up the tool and conversation endpoints
// consumed by the external agent
func setupAssistantRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	assistantHandler := handlers.NewAssistantHandler(db, redisClient, cfg)

	agent := rg.Group("/assistant")
	agent.Use(middleware.AuthMiddleware(cfg))
	{
		agent.GET("/tools", assistantHandler.ListTools)
		agent.POST("/tools/:name", assistantHandler.ExecuteTool)

		conversations := agent.Group("/conversations")
		{
			conversations.POST("", assistantHandler.CreateConversation)
			conversations.GET("/:id", assistantHandler.GetConversation)
			conversations.POST("/:id/messages", assistantHandler.PostMessage)
			conversations.DELETE("/:id", assistantHandler.DeleteConversation)
		}
	}
}
