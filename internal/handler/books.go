package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookshop-app/internal/service"
)

type BookHandler struct {
	catalog  *service.CatalogService
	settings *service.SettingsService
	logger   *zap.Logger
}

func NewBookHandler(catalog *service.CatalogService, settings *service.SettingsService, logger *zap.Logger) *BookHandler {
	return &BookHandler{catalog: catalog, settings: settings, logger: logger}
}

func (h *BookHandler) List(c *gin.Context) {
	books, err := h.catalog.List()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, books)
}

func (h *BookHandler) Create(c *gin.Context) {
	var req service.CreateBookInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book, err := h.catalog.Create(req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, book)
}

func (h *BookHandler) UpdateStock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Stock *int `json:"stock" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stock is required"})
		return
	}

	book, err := h.catalog.UpdateStock(id, *req.Stock)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

func (h *BookHandler) UpdatePrice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Price *float64 `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price is required"})
		return
	}

	book, err := h.catalog.UpdatePrice(id, *req.Price)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.catalog.Delete(id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
}

// LowStockAlerts lists books under the configured threshold.
func (h *BookHandler) LowStockAlerts(c *gin.Context) {
	setting, err := h.settings.Get()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	books, err := h.catalog.LowStock(setting.LowStockThreshold)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, books)
}
