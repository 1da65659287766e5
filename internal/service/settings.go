package service

import (
	"errors"

	"go.uber.org/zap"

	"bookshop-app/internal/apperr"
	"bookshop-app/internal/models"
	"bookshop-app/internal/storage"
)

// SettingsService owns the store-wide settings lifecycle: the row is created
// from configured defaults on first read and updated in place afterwards.
// Consumers receive values through this service instead of reading globals.
type SettingsService struct {
	store    storage.Store
	defaults models.Setting
	logger   *zap.Logger
}

func NewSettingsService(store storage.Store, defaults models.Setting, logger *zap.Logger) *SettingsService {
	if defaults.StoreName == "" {
		defaults.StoreName = "School Bookshop"
	}
	if defaults.Currency == "" {
		defaults.Currency = "GHS"
	}
	if defaults.LowStockThreshold <= 0 {
		defaults.LowStockThreshold = 10
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{store: store, defaults: defaults, logger: logger}
}

func (s *SettingsService) Get() (*models.Setting, error) {
	setting, err := s.store.Settings().Get(s.defaults)
	if err != nil {
		s.logger.Error("failed to load settings", zap.Error(err))
		return nil, apperr.Storage(err)
	}
	return setting, nil
}

type UpdateSettingsInput struct {
	StoreName         string `json:"store_name"`
	Currency          string `json:"currency"`
	LowStockThreshold int    `json:"low_stock_threshold"`
}

func (s *SettingsService) Update(in UpdateSettingsInput) (*models.Setting, error) {
	if in.StoreName == "" {
		return nil, apperr.Validation("store name is required")
	}
	if !models.ValidCurrency(in.Currency) {
		return nil, apperr.Validation("invalid currency %q", in.Currency)
	}
	if in.LowStockThreshold < 0 {
		return nil, apperr.Validation("low stock threshold must not be negative")
	}

	setting, err := s.Get()
	if err != nil {
		return nil, err
	}
	setting.StoreName = in.StoreName
	setting.Currency = in.Currency
	setting.LowStockThreshold = in.LowStockThreshold
	if err := s.store.Settings().Update(setting); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound("settings not found")
		}
		s.logger.Error("failed to update settings", zap.Error(err))
		return nil, apperr.Storage(err)
	}
	return setting, nil
}
