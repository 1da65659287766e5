package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"bookshop-app/internal/apperr"
	"bookshop-app/internal/models"
	"bookshop-app/internal/storage"
)

type SupplierService struct {
	store  storage.Store
	logger *zap.Logger
}

func NewSupplierService(store storage.Store, logger *zap.Logger) *SupplierService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SupplierService{store: store, logger: logger}
}

func (s *SupplierService) List() ([]models.Supplier, error) {
	suppliers, err := s.store.Suppliers().List()
	if err != nil {
		s.logger.Error("failed to list suppliers", zap.Error(err))
		return nil, apperr.Storage(err)
	}
	return suppliers, nil
}

func (s *SupplierService) Create(name string, totalDebt float64) (*models.Supplier, error) {
	if name == "" {
		return nil, apperr.Validation("supplier name is required")
	}
	if totalDebt < 0 {
		return nil, apperr.Validation("total debt must not be negative")
	}
	supplier := &models.Supplier{Name: name, TotalDebt: totalDebt}
	if err := s.store.Suppliers().Create(supplier); err != nil {
		s.logger.Error("failed to create supplier", zap.String("name", name), zap.Error(err))
		return nil, apperr.Storage(err)
	}
	return supplier, nil
}

// AddPayment records a payment and reduces the supplier's debt, floored at
// zero, in one transaction.
func (s *SupplierService) AddPayment(ctx context.Context, id uint, amount float64) (*models.Supplier, error) {
	if amount <= 0 {
		return nil, apperr.Validation("payment amount must be greater than zero")
	}

	var updated *models.Supplier
	err := s.store.Atomically(ctx, func(tx storage.Store) error {
		supplier, err := tx.Suppliers().FindByID(id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return apperr.NotFound("supplier %d not found", id)
			}
			return apperr.Storage(err)
		}
		newDebt := supplier.TotalDebt - amount
		if newDebt < 0 {
			newDebt = 0
		}
		updated, err = tx.Suppliers().AddPayment(id, &models.SupplierPayment{Amount: amount}, newDebt)
		if err != nil {
			return apperr.Storage(err)
		}
		return nil
	})
	if err != nil {
		if apperr.KindOf(err) == apperr.KindStorage {
			s.logger.Error("failed to record supplier payment", zap.Uint("supplier_id", id), zap.Error(err))
		}
		return nil, err
	}
	return updated, nil
}
