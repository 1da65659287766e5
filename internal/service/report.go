package service

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"bookshop-app/internal/apperr"
	"bookshop-app/internal/models"
	"bookshop-app/internal/storage"
)

// ReportService derives aggregates from the sale ledger. All figures are
// computed from the recorded price snapshots, so later catalog edits never
// change historical numbers.
type ReportService struct {
	store  storage.Store
	loc    *time.Location
	logger *zap.Logger
}

func NewReportService(store storage.Store, loc *time.Location, logger *zap.Logger) *ReportService {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{store: store, loc: loc, logger: logger}
}

type ReportSummary struct {
	TotalSales              float64 `json:"total_sales"`
	TotalTransactions       int     `json:"total_transactions"`
	TotalBooks              int     `json:"total_books"`
	AverageTransactionValue float64 `json:"average_transaction_value"`
}

// Report returns sales whose created_at falls within the given calendar days,
// newest first. Date-only bounds are widened to full-day boundaries in the
// reporting timezone; nil bounds are open-ended.
func (s *ReportService) Report(start, end *time.Time) ([]models.Sale, ReportSummary, error) {
	var from, to *time.Time
	if start != nil {
		t := s.startOfDay(*start)
		from = &t
	}
	if end != nil {
		t := s.endOfDay(*end)
		to = &t
	}

	sales, err := s.store.Sales().ListBetween(from, to)
	if err != nil {
		s.logger.Error("failed to fetch sales report", zap.Error(err))
		return nil, ReportSummary{}, apperr.Storage(err)
	}

	var summary ReportSummary
	for _, sale := range sales {
		summary.TotalSales += sale.TotalAmount
		summary.TotalTransactions++
		for _, item := range sale.Items {
			summary.TotalBooks += item.Quantity
		}
	}
	if summary.TotalTransactions > 0 {
		summary.AverageTransactionValue = summary.TotalSales / float64(summary.TotalTransactions)
	}
	return sales, summary, nil
}

// Recent returns the n newest sales; n defaults to 5.
func (s *ReportService) Recent(n int) ([]models.Sale, error) {
	if n <= 0 {
		n = 5
	}
	sales, err := s.store.Sales().Recent(n)
	if err != nil {
		s.logger.Error("failed to fetch recent sales", zap.Error(err))
		return nil, apperr.Storage(err)
	}
	return sales, nil
}

func (s *ReportService) TodayTotal() (float64, error) {
	now := time.Now().In(s.loc)
	from := s.startOfDay(now)
	to := s.endOfDay(now)
	total, err := s.store.Sales().TotalBetween(&from, &to)
	if err != nil {
		s.logger.Error("failed to compute today's total", zap.Error(err))
		return 0, apperr.Storage(err)
	}
	return total, nil
}

func (s *ReportService) AllTimeTotal() (float64, error) {
	total, err := s.store.Sales().TotalBetween(nil, nil)
	if err != nil {
		s.logger.Error("failed to compute all-time total", zap.Error(err))
		return 0, apperr.Storage(err)
	}
	return total, nil
}

type StudentSummary struct {
	Name          string    `json:"name"`
	ClassLevel    string    `json:"class_level"`
	TotalSpent    float64   `json:"total_spent"`
	PurchaseCount int       `json:"purchase_count"`
	BookCount     int       `json:"book_count"`
	LastPurchase  time.Time `json:"last_purchase"`
}

// StudentSummaries groups the whole ledger by (student name, class level).
// Grouping is by identity rather than record ID because a repeat buyer may
// hold several Student rows.
func (s *ReportService) StudentSummaries() ([]StudentSummary, error) {
	sales, err := s.store.Sales().ListBetween(nil, nil)
	if err != nil {
		s.logger.Error("failed to fetch sales for summaries", zap.Error(err))
		return nil, apperr.Storage(err)
	}

	type key struct{ name, class string }
	groups := map[key]*StudentSummary{}
	for _, sale := range sales {
		if sale.Student == nil {
			continue
		}
		k := key{sale.Student.Name, sale.Student.ClassLevel}
		g, ok := groups[k]
		if !ok {
			g = &StudentSummary{Name: k.name, ClassLevel: k.class}
			groups[k] = g
		}
		g.TotalSpent += sale.TotalAmount
		g.PurchaseCount++
		for _, item := range sale.Items {
			g.BookCount += item.Quantity
		}
		if sale.CreatedAt.After(g.LastPurchase) {
			g.LastPurchase = sale.CreatedAt
		}
	}

	summaries := make([]StudentSummary, 0, len(groups))
	for _, g := range groups {
		summaries = append(summaries, *g)
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].TotalSpent != summaries[j].TotalSpent {
			return summaries[i].TotalSpent > summaries[j].TotalSpent
		}
		return summaries[i].Name < summaries[j].Name
	})
	return summaries, nil
}

type DashboardStats struct {
	TodayTotal        float64       `json:"today_total"`
	AllTimeTotal      float64       `json:"all_time_total"`
	TotalTransactions int64         `json:"total_transactions"`
	LowStockCount     int           `json:"low_stock_count"`
	RecentSales       []models.Sale `json:"recent_sales"`
}

// Dashboard assembles the landing-page figures. lowStockThreshold comes from
// settings so the cutoff follows the configured value.
func (s *ReportService) Dashboard(lowStockThreshold int) (*DashboardStats, error) {
	today, err := s.TodayTotal()
	if err != nil {
		return nil, err
	}
	allTime, err := s.AllTimeTotal()
	if err != nil {
		return nil, err
	}
	count, err := s.store.Sales().Count()
	if err != nil {
		s.logger.Error("failed to count sales", zap.Error(err))
		return nil, apperr.Storage(err)
	}
	recent, err := s.Recent(5)
	if err != nil {
		return nil, err
	}
	if lowStockThreshold <= 0 {
		lowStockThreshold = 10
	}
	lowStock, err := s.store.Books().ListBelowStock(lowStockThreshold)
	if err != nil {
		s.logger.Error("failed to list low-stock books", zap.Error(err))
		return nil, apperr.Storage(err)
	}
	return &DashboardStats{
		TodayTotal:        today,
		AllTimeTotal:      allTime,
		TotalTransactions: count,
		LowStockCount:     len(lowStock),
		RecentSales:       recent,
	}, nil
}

func (s *ReportService) startOfDay(t time.Time) time.Time {
	t = t.In(s.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
}

func (s *ReportService) endOfDay(t time.Time) time.Time {
	t = t.In(s.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, s.loc)
}
