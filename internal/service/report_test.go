package service

import (
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"bookshop-app/internal/models"
	"bookshop-app/internal/storage/memstore"
)

func newReportFixture(t *testing.T) (*memstore.Store, *ReportService) {
	t.Helper()
	store := memstore.New()
	svc := NewReportService(store, time.Local, zaptest.NewLogger(t))
	return store, svc
}

func seedStudent(t *testing.T, store *memstore.Store, name, class string) *models.Student {
	t.Helper()
	student := &models.Student{Name: name, ClassLevel: class}
	if err := store.Students().Create(student); err != nil {
		t.Fatalf("seeding student: %v", err)
	}
	return student
}

func seedSale(t *testing.T, store *memstore.Store, studentID uint, total float64, qty int, at time.Time) *models.Sale {
	t.Helper()
	sale := &models.Sale{
		ReceiptNo:   "S-" + at.Format("20060102150405.000000000"),
		StudentID:   studentID,
		TotalAmount: total,
		Items:       []models.SaleItem{{BookID: 1, Quantity: qty, PriceAtSale: total / float64(qty)}},
		CreatedAt:   at,
	}
	if err := store.Sales().Create(sale); err != nil {
		t.Fatalf("seeding sale: %v", err)
	}
	return sale
}

func TestReportDayBoundaries(t *testing.T) {
	store, svc := newReportFixture(t)
	student := seedStudent(t, store, "Ama", models.ClassBasic2)

	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local)
	lastSecond := time.Date(2026, time.March, 10, 23, 59, 59, 0, time.Local)
	nextMidnight := time.Date(2026, time.March, 11, 0, 0, 0, 0, time.Local)

	inRange := seedSale(t, store, student.ID, 30.00, 3, lastSecond)
	seedSale(t, store, student.ID, 99.00, 1, nextMidnight)

	sales, summary, err := svc.Report(&day, &day)
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if len(sales) != 1 || sales[0].ID != inRange.ID {
		t.Fatalf("Report(d, d) returned %d sales, want only the 23:59:59 sale", len(sales))
	}
	if summary.TotalSales != 30.00 || summary.TotalTransactions != 1 || summary.TotalBooks != 3 {
		t.Errorf("unexpected summary: %+v", summary)
	}
}

func TestReportNewestFirst(t *testing.T) {
	store, svc := newReportFixture(t)
	student := seedStudent(t, store, "Ama", models.ClassBasic2)

	base := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local)
	seedSale(t, store, student.ID, 10.00, 1, base)
	newest := seedSale(t, store, student.ID, 20.00, 1, base.Add(2*time.Hour))
	seedSale(t, store, student.ID, 15.00, 1, base.Add(time.Hour))

	sales, _, err := svc.Report(nil, nil)
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if len(sales) != 3 || sales[0].ID != newest.ID {
		t.Fatalf("sales not ordered newest first: %+v", sales)
	}
	for i := 1; i < len(sales); i++ {
		if sales[i].CreatedAt.After(sales[i-1].CreatedAt) {
			t.Errorf("sale %d newer than sale %d", i, i-1)
		}
	}
}

func TestReportSummaryAverage(t *testing.T) {
	store, svc := newReportFixture(t)
	student := seedStudent(t, store, "Ama", models.ClassBasic2)

	now := time.Now()
	seedSale(t, store, student.ID, 30.00, 3, now.Add(-2*time.Hour))
	seedSale(t, store, student.ID, 10.00, 1, now.Add(-time.Hour))

	_, summary, err := svc.Report(nil, nil)
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if summary.AverageTransactionValue != 20.00 {
		t.Errorf("average = %v, want 20.00", summary.AverageTransactionValue)
	}
}

func TestRecent(t *testing.T) {
	store, svc := newReportFixture(t)
	student := seedStudent(t, store, "Ama", models.ClassBasic2)

	base := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local)
	for i := 0; i < 7; i++ {
		seedSale(t, store, student.ID, 10.00, 1, base.Add(time.Duration(i)*time.Minute))
	}

	recent, err := svc.Recent(5)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("Recent(5) returned %d sales", len(recent))
	}
	if !recent[0].CreatedAt.Equal(base.Add(6 * time.Minute)) {
		t.Errorf("Recent did not start with the newest sale")
	}
}

func TestTodayAndAllTimeTotals(t *testing.T) {
	store, svc := newReportFixture(t)
	student := seedStudent(t, store, "Ama", models.ClassBasic2)

	now := time.Now()
	seedSale(t, store, student.ID, 30.00, 3, now.Add(-time.Minute))
	seedSale(t, store, student.ID, 50.00, 2, now.AddDate(0, 0, -3))

	today, err := svc.TodayTotal()
	if err != nil {
		t.Fatalf("TodayTotal: %v", err)
	}
	if today != 30.00 {
		t.Errorf("today total = %v, want 30.00", today)
	}

	allTime, err := svc.AllTimeTotal()
	if err != nil {
		t.Fatalf("AllTimeTotal: %v", err)
	}
	if allTime != 80.00 {
		t.Errorf("all-time total = %v, want 80.00", allTime)
	}
}

func TestStudentSummaries(t *testing.T) {
	store, svc := newReportFixture(t)
	// Two separate records for the same (name, class) pair, the shape the
	// sale flow produces for repeat buyers.
	ama1 := seedStudent(t, store, "Ama", models.ClassBasic2)
	ama2 := seedStudent(t, store, "Ama", models.ClassBasic2)
	kofi := seedStudent(t, store, "Kofi", models.ClassBasic4)

	base := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local)
	seedSale(t, store, ama1.ID, 30.00, 3, base)
	latest := base.Add(time.Hour)
	seedSale(t, store, ama2.ID, 15.00, 2, latest)
	seedSale(t, store, kofi.ID, 5.00, 1, base)

	summaries, err := svc.StudentSummaries()
	if err != nil {
		t.Fatalf("StudentSummaries: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summary rows, got %d", len(summaries))
	}

	ama := summaries[0]
	if ama.Name != "Ama" || ama.ClassLevel != models.ClassBasic2 {
		t.Fatalf("expected Ama first (highest spend), got %+v", ama)
	}
	if ama.TotalSpent != 45.00 || ama.PurchaseCount != 2 || ama.BookCount != 5 {
		t.Errorf("Ama summary = %+v, want totalSpent=45 purchaseCount=2 bookCount=5", ama)
	}
	if !ama.LastPurchase.Equal(latest) {
		t.Errorf("Ama last purchase = %v, want %v", ama.LastPurchase, latest)
	}
}

func TestReportSurvivesDeletedBook(t *testing.T) {
	store, svc := newReportFixture(t)
	student := seedStudent(t, store, "Ama", models.ClassBasic2)
	book := &models.Book{Title: "Maths Workbook", Subject: "Mathematics", ClassLevel: models.ClassBasic2, Price: 10.00, Stock: 5}
	if err := store.Books().Create(book); err != nil {
		t.Fatalf("seeding book: %v", err)
	}

	at := time.Now().Add(-time.Hour)
	sale := &models.Sale{
		ReceiptNo:   "S-20260310-00001",
		StudentID:   student.ID,
		TotalAmount: 20.00,
		Items:       []models.SaleItem{{BookID: book.ID, Quantity: 2, PriceAtSale: 10.00}},
		CreatedAt:   at,
	}
	if err := store.Sales().Create(sale); err != nil {
		t.Fatalf("seeding sale: %v", err)
	}

	if err := store.Books().Delete(book.ID); err != nil {
		t.Fatalf("deleting book: %v", err)
	}

	sales, summary, err := svc.Report(nil, nil)
	if err != nil {
		t.Fatalf("Report after delete: %v", err)
	}
	if len(sales) != 1 {
		t.Fatalf("sale lost after book delete")
	}
	if sales[0].Items[0].Book != nil {
		t.Errorf("deleted book should read as absent, got %+v", sales[0].Items[0].Book)
	}
	if sales[0].Items[0].PriceAtSale != 10.00 || summary.TotalSales != 20.00 {
		t.Errorf("snapshot fields corrupted after delete")
	}
}

func TestDashboard(t *testing.T) {
	store, svc := newReportFixture(t)
	student := seedStudent(t, store, "Ama", models.ClassBasic2)
	if err := store.Books().Create(&models.Book{Title: "Low", Subject: "Maths", ClassLevel: models.ClassBasic1, Price: 5, Stock: 3}); err != nil {
		t.Fatal(err)
	}
	if err := store.Books().Create(&models.Book{Title: "Fine", Subject: "Maths", ClassLevel: models.ClassBasic1, Price: 5, Stock: 30}); err != nil {
		t.Fatal(err)
	}

	now := time.Now()
	seedSale(t, store, student.ID, 30.00, 3, now.Add(-time.Minute))
	seedSale(t, store, student.ID, 50.00, 2, now.AddDate(0, 0, -2))

	stats, err := svc.Dashboard(10)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if stats.TodayTotal != 30.00 || stats.AllTimeTotal != 80.00 {
		t.Errorf("totals = %v / %v", stats.TodayTotal, stats.AllTimeTotal)
	}
	if stats.TotalTransactions != 2 {
		t.Errorf("transactions = %d, want 2", stats.TotalTransactions)
	}
	if stats.LowStockCount != 1 {
		t.Errorf("low stock count = %d, want 1", stats.LowStockCount)
	}
	if len(stats.RecentSales) != 2 {
		t.Errorf("recent sales = %d, want 2", len(stats.RecentSales))
	}
}
