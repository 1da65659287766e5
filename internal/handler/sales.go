package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookshop-app/internal/service"
)

type SaleHandler struct {
	sales   *service.SaleService
	reports *service.ReportService
	loc     *time.Location
	logger  *zap.Logger
}

func NewSaleHandler(sales *service.SaleService, reports *service.ReportService, loc *time.Location, logger *zap.Logger) *SaleHandler {
	if loc == nil {
		loc = time.Local
	}
	return &SaleHandler{sales: sales, reports: reports, loc: loc, logger: logger}
}

type createSaleRequest struct {
	StudentID    uint               `json:"student_id"`
	StudentName  string             `json:"student_name"`
	StudentClass string             `json:"student_class"`
	Items        []service.CartItem `json:"items"`
}

func (h *SaleHandler) Create(c *gin.Context) {
	var req createSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	sale, err := h.sales.Create(c.Request.Context(), service.CreateSaleInput{
		StudentID:    req.StudentID,
		StudentName:  req.StudentName,
		StudentClass: req.StudentClass,
		Items:        req.Items,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, sale)
}

// Report serves GET /sales/report?start_date&end_date (YYYY-MM-DD). Date-only
// bounds are widened to full days by the report service.
func (h *SaleHandler) Report(c *gin.Context) {
	var start, end *time.Time
	if v := c.Query("start_date"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date, expected YYYY-MM-DD"})
			return
		}
		start = &t
	}
	if v := c.Query("end_date"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date, expected YYYY-MM-DD"})
			return
		}
		end = &t
	}

	sales, summary, err := h.reports.Report(start, end)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"summary":      summary,
		"transactions": sales,
	})
}

func (h *SaleHandler) Recent(c *gin.Context) {
	n := 5
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		n = parsed
	}

	sales, err := h.reports.Recent(n)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}
