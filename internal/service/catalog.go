package service

import (
	"errors"

	"go.uber.org/zap"

	"bookshop-app/internal/apperr"
	"bookshop-app/internal/models"
	"bookshop-app/internal/storage"
)

// CatalogService manages the textbook catalog.
type CatalogService struct {
	store  storage.Store
	logger *zap.Logger
}

func NewCatalogService(store storage.Store, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{store: store, logger: logger}
}

type CreateBookInput struct {
	Title      string  `json:"title"`
	Subject    string  `json:"subject"`
	ClassLevel string  `json:"class_level"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
}

func (s *CatalogService) Create(in CreateBookInput) (*models.Book, error) {
	if in.Title == "" || in.Subject == "" {
		return nil, apperr.Validation("title and subject are required")
	}
	if !models.ValidClassLevel(in.ClassLevel) {
		return nil, apperr.Validation("invalid class level %q", in.ClassLevel)
	}
	if in.Price < 0 {
		return nil, apperr.Validation("price must not be negative")
	}
	if in.Stock < 0 {
		return nil, apperr.Validation("stock must not be negative")
	}

	book := &models.Book{
		Title:      in.Title,
		Subject:    in.Subject,
		ClassLevel: in.ClassLevel,
		Price:      in.Price,
		Stock:      in.Stock,
	}
	if err := s.store.Books().Create(book); err != nil {
		s.logger.Error("failed to create book", zap.String("title", in.Title), zap.Error(err))
		return nil, apperr.Storage(err)
	}
	return book, nil
}

func (s *CatalogService) List() ([]models.Book, error) {
	books, err := s.store.Books().List()
	if err != nil {
		s.logger.Error("failed to list books", zap.Error(err))
		return nil, apperr.Storage(err)
	}
	return books, nil
}

func (s *CatalogService) UpdateStock(id uint, stock int) (*models.Book, error) {
	if stock < 0 {
		return nil, apperr.Validation("stock must not be negative")
	}
	book, err := s.store.Books().UpdateStock(id, stock)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound("book %d not found", id)
		}
		s.logger.Error("failed to update stock", zap.Uint("book_id", id), zap.Error(err))
		return nil, apperr.Storage(err)
	}
	return book, nil
}

func (s *CatalogService) UpdatePrice(id uint, price float64) (*models.Book, error) {
	if price <= 0 {
		return nil, apperr.Validation("price must be greater than zero")
	}
	book, err := s.store.Books().UpdatePrice(id, price)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound("book %d not found", id)
		}
		s.logger.Error("failed to update price", zap.Uint("book_id", id), zap.Error(err))
		return nil, apperr.Storage(err)
	}
	return book, nil
}

// Delete removes a book from the catalog. Historical sale items keep their
// snapshot fields, so past receipts and reports are unaffected.
func (s *CatalogService) Delete(id uint) error {
	if err := s.store.Books().Delete(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFound("book %d not found", id)
		}
		s.logger.Error("failed to delete book", zap.Uint("book_id", id), zap.Error(err))
		return apperr.Storage(err)
	}
	return nil
}

// LowStock lists books whose stock has fallen below the threshold. The view
// is recomputed on each call, never persisted.
func (s *CatalogService) LowStock(threshold int) ([]models.Book, error) {
	if threshold <= 0 {
		threshold = 10
	}
	books, err := s.store.Books().ListBelowStock(threshold)
	if err != nil {
		s.logger.Error("failed to list low-stock books", zap.Error(err))
		return nil, apperr.Storage(err)
	}
	return books, nil
}
