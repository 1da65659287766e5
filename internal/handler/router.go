package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshop-app/internal/middleware"
	"bookshop-app/internal/utils"
)

// Set bundles the handlers for route registration.
type Set struct {
	Auth      *AuthHandler
	Books     *BookHandler
	Sales     *SaleHandler
	Students  *StudentHandler
	Suppliers *SupplierHandler
	Settings  *SettingsHandler
	Dashboard *DashboardHandler
}

// RegisterRoutes binds every endpoint on the engine. Everything under
// /api/v1 except auth requires a bearer token.
func RegisterRoutes(r *gin.Engine, s *Set, tokens *utils.TokenManager) {
	authRoutes := r.Group("/api/v1/auth")
	{
		authRoutes.POST("/login", s.Auth.Login)
		authRoutes.POST("/signup", s.Auth.Signup)
	}

	api := r.Group("/api/v1")
	api.Use(middleware.AuthRequired(tokens))
	{
		api.GET("/books", s.Books.List)
		api.POST("/books", s.Books.Create)
		api.GET("/books/alerts", s.Books.LowStockAlerts)
		api.PATCH("/books/:id/stock", s.Books.UpdateStock)
		api.PATCH("/books/:id/price", s.Books.UpdatePrice)
		api.DELETE("/books/:id", s.Books.Delete)

		api.POST("/sales", s.Sales.Create)
		api.GET("/sales/report", s.Sales.Report)
		api.GET("/sales/recent", s.Sales.Recent)

		api.GET("/dashboard", s.Dashboard.Stats)

		api.GET("/students", s.Students.List)
		api.POST("/students", s.Students.Create)
		api.PUT("/students/:id", s.Students.Update)
		api.GET("/students/summaries", s.Students.Summaries)

		api.GET("/suppliers", s.Suppliers.List)
		api.POST("/suppliers", s.Suppliers.Create)
		api.POST("/suppliers/:id/payments", s.Suppliers.AddPayment)

		api.GET("/settings", s.Settings.Get)
		api.PUT("/settings", s.Settings.Update)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
