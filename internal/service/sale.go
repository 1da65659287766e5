package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"bookshop-app/internal/apperr"
	"bookshop-app/internal/models"
	"bookshop-app/internal/storage"
)

// SaleService orchestrates the sale transaction: stock validation, price
// snapshotting, ledger write and stock decrement as one atomic unit.
type SaleService struct {
	store  storage.Store
	logger *zap.Logger
}

func NewSaleService(store storage.Store, logger *zap.Logger) *SaleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SaleService{store: store, logger: logger}
}

type CartItem struct {
	BookID   uint `json:"book_id"`
	Quantity int  `json:"quantity"`
}

// CreateSaleInput identifies the student either by ID or by name and class
// level; with name and class a new Student record is always created.
type CreateSaleInput struct {
	StudentID    uint       `json:"student_id"`
	StudentName  string     `json:"student_name"`
	StudentClass string     `json:"student_class"`
	Items        []CartItem `json:"items"`
}

// Create records a sale. Prices are snapshotted from the catalog at
// transaction time and the total is computed server-side; client-supplied
// amounts are never trusted. The whole operation commits or nothing does.
func (s *SaleService) Create(ctx context.Context, in CreateSaleInput) (*models.Sale, error) {
	if len(in.Items) == 0 {
		return nil, apperr.Validation("cart is empty")
	}
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return nil, apperr.Validation("quantity must be at least 1 for book %d", item.BookID)
		}
	}
	if in.StudentID == 0 {
		if in.StudentName == "" {
			return nil, apperr.Validation("student name is required")
		}
		if !models.ValidClassLevel(in.StudentClass) {
			return nil, apperr.Validation("invalid class level %q", in.StudentClass)
		}
	}

	var saleID uint
	err := s.store.Atomically(ctx, func(tx storage.Store) error {
		student, err := s.resolveStudent(tx, in)
		if err != nil {
			return err
		}

		items := make([]models.SaleItem, 0, len(in.Items))
		var total float64
		for _, item := range in.Items {
			book, err := tx.Books().FindByID(item.BookID)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					return apperr.NotFound("book %d not found", item.BookID)
				}
				return apperr.Storage(err)
			}
			if book.Stock < item.Quantity {
				return apperr.InsufficientStock(
					"insufficient stock for %s: requested %d, available %d",
					book.Title, item.Quantity, book.Stock)
			}
			items = append(items, models.SaleItem{
				BookID:      book.ID,
				Quantity:    item.Quantity,
				PriceAtSale: book.Price,
			})
			total += book.Price * float64(item.Quantity)
		}

		// The conditional decrement re-checks stock at write time, which
		// covers carts listing the same book twice and races the upfront
		// validation cannot see.
		for _, item := range in.Items {
			if err := tx.Books().DecrementStock(item.BookID, item.Quantity); err != nil {
				switch {
				case errors.Is(err, storage.ErrNotFound):
					return apperr.NotFound("book %d not found", item.BookID)
				case errors.Is(err, storage.ErrInsufficientStock):
					return s.shortfall(tx, item)
				default:
					return apperr.Storage(err)
				}
			}
		}

		sale := &models.Sale{
			ReceiptNo:   s.nextReceiptNo(tx),
			StudentID:   student.ID,
			TotalAmount: total,
			Items:       items,
		}
		if err := tx.Sales().Create(sale); err != nil {
			return apperr.Storage(err)
		}
		saleID = sale.ID
		return nil
	})
	if err != nil {
		if apperr.KindOf(err) == apperr.KindStorage {
			s.logger.Error("sale transaction failed", zap.Error(err))
		}
		return nil, err
	}

	sale, err := s.store.Sales().FindByID(saleID)
	if err != nil {
		s.logger.Error("failed to load recorded sale", zap.Uint("sale_id", saleID), zap.Error(err))
		return nil, apperr.Storage(err)
	}
	s.logger.Info("sale recorded",
		zap.String("receipt_no", sale.ReceiptNo),
		zap.Uint("student_id", sale.StudentID),
		zap.Float64("total_amount", sale.TotalAmount),
		zap.Int("items", len(sale.Items)))
	return sale, nil
}

func (s *SaleService) resolveStudent(tx storage.Store, in CreateSaleInput) (*models.Student, error) {
	if in.StudentID != 0 {
		student, err := tx.Students().FindByID(in.StudentID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, apperr.NotFound("student %d not found", in.StudentID)
			}
			return nil, apperr.Storage(err)
		}
		return student, nil
	}
	// A fresh record per sale, matching how the shop has always operated.
	// Reporting groups by (name, class), so repeat buyers still aggregate.
	student := &models.Student{Name: in.StudentName, ClassLevel: in.StudentClass}
	if err := tx.Students().Create(student); err != nil {
		return nil, apperr.Storage(err)
	}
	return student, nil
}

func (s *SaleService) shortfall(tx storage.Store, item CartItem) error {
	book, err := tx.Books().FindByID(item.BookID)
	if err != nil {
		return apperr.InsufficientStock("insufficient stock for book %d", item.BookID)
	}
	return apperr.InsufficientStock(
		"insufficient stock for %s: requested %d, available %d",
		book.Title, item.Quantity, book.Stock)
}

// Receipt numbers follow the till format S-YYYYMMDD-SEQ.
func (s *SaleService) nextReceiptNo(tx storage.Store) string {
	var lastID uint
	if last, err := tx.Sales().Last(); err == nil {
		lastID = last.ID
	}
	return fmt.Sprintf("S-%s-%05d", time.Now().Format("20060102"), lastID+1)
}
