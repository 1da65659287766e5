package service

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"bookshop-app/internal/apperr"
	"bookshop-app/internal/models"
	"bookshop-app/internal/storage/memstore"
)

func newCatalogFixture(t *testing.T) (*memstore.Store, *CatalogService) {
	t.Helper()
	store := memstore.New()
	return store, NewCatalogService(store, zaptest.NewLogger(t))
}

func TestCatalogCreate(t *testing.T) {
	_, svc := newCatalogFixture(t)

	book, err := svc.Create(CreateBookInput{
		Title: "Maths Workbook", Subject: "Mathematics",
		ClassLevel: models.ClassBasic2, Price: 10.00, Stock: 5,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if book.ID == 0 {
		t.Errorf("book not assigned an id")
	}
}

func TestCatalogCreateValidation(t *testing.T) {
	_, svc := newCatalogFixture(t)

	cases := []struct {
		name string
		in   CreateBookInput
	}{
		{"missing title", CreateBookInput{Subject: "Maths", ClassLevel: models.ClassBasic1, Price: 1}},
		{"bad class", CreateBookInput{Title: "T", Subject: "S", ClassLevel: "JSS 1", Price: 1}},
		{"negative price", CreateBookInput{Title: "T", Subject: "S", ClassLevel: models.ClassBasic1, Price: -1}},
		{"negative stock", CreateBookInput{Title: "T", Subject: "S", ClassLevel: models.ClassBasic1, Price: 1, Stock: -2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(tc.in); apperr.KindOf(err) != apperr.KindValidation {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCatalogUpdateStock(t *testing.T) {
	_, svc := newCatalogFixture(t)
	book, _ := svc.Create(CreateBookInput{Title: "T", Subject: "S", ClassLevel: models.ClassBasic1, Price: 1, Stock: 5})

	updated, err := svc.UpdateStock(book.ID, 12)
	if err != nil {
		t.Fatalf("UpdateStock: %v", err)
	}
	if updated.Stock != 12 {
		t.Errorf("stock = %d, want 12", updated.Stock)
	}

	if _, err := svc.UpdateStock(book.ID, -1); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("negative stock accepted: %v", err)
	}
	if _, err := svc.UpdateStock(999, 1); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestCatalogUpdatePrice(t *testing.T) {
	_, svc := newCatalogFixture(t)
	book, _ := svc.Create(CreateBookInput{Title: "T", Subject: "S", ClassLevel: models.ClassBasic1, Price: 1, Stock: 5})

	updated, err := svc.UpdatePrice(book.ID, 9.75)
	if err != nil {
		t.Fatalf("UpdatePrice: %v", err)
	}
	if updated.Price != 9.75 {
		t.Errorf("price = %v, want 9.75", updated.Price)
	}

	if _, err := svc.UpdatePrice(book.ID, 0); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("zero price accepted: %v", err)
	}
	if _, err := svc.UpdatePrice(999, 5); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestCatalogDelete(t *testing.T) {
	_, svc := newCatalogFixture(t)
	book, _ := svc.Create(CreateBookInput{Title: "T", Subject: "S", ClassLevel: models.ClassBasic1, Price: 1, Stock: 5})

	if err := svc.Delete(book.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(book.ID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("second delete should be not found, got %v", err)
	}
}

func TestCatalogLowStock(t *testing.T) {
	store, svc := newCatalogFixture(t)
	if err := store.Books().Create(&models.Book{Title: "At threshold", Subject: "S", ClassLevel: models.ClassBasic1, Price: 1, Stock: 10}); err != nil {
		t.Fatal(err)
	}
	if err := store.Books().Create(&models.Book{Title: "Below", Subject: "S", ClassLevel: models.ClassBasic1, Price: 1, Stock: 9}); err != nil {
		t.Fatal(err)
	}

	low, err := svc.LowStock(10)
	if err != nil {
		t.Fatalf("LowStock: %v", err)
	}
	// Cutoff is strict: a book exactly at the threshold is not alerted.
	if len(low) != 1 || low[0].Title != "Below" {
		t.Errorf("low stock = %+v, want only the book below threshold", low)
	}
}
