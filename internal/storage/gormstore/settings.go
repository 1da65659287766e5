package gormstore

import (
	"errors"

	"gorm.io/gorm"

	"bookshop-app/internal/models"
)

type settingStore struct {
	db *gorm.DB
}

func (s *settingStore) Get(defaults models.Setting) (*models.Setting, error) {
	var setting models.Setting
	err := s.db.First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = defaults
		if err := s.db.Create(&setting).Error; err != nil {
			return nil, err
		}
		return &setting, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (s *settingStore) Update(setting *models.Setting) error {
	var existing models.Setting
	if err := s.db.First(&existing, setting.ID).Error; err != nil {
		return mapErr(err)
	}
	return s.db.Model(&existing).Updates(map[string]any{
		"store_name":          setting.StoreName,
		"currency":            setting.Currency,
		"low_stock_threshold": setting.LowStockThreshold,
	}).Error
}
