package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookshop-app/internal/service"
)

type DashboardHandler struct {
	reports  *service.ReportService
	settings *service.SettingsService
	logger   *zap.Logger
}

func NewDashboardHandler(reports *service.ReportService, settings *service.SettingsService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{reports: reports, settings: settings, logger: logger}
}

// Stats serves the landing-page aggregates. The client polls this endpoint on
// a refresh interval; every call recomputes from the ledger.
func (h *DashboardHandler) Stats(c *gin.Context) {
	setting, err := h.settings.Get()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	stats, err := h.reports.Dashboard(setting.LowStockThreshold)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"stats":    stats,
		"currency": setting.Currency,
	})
}
