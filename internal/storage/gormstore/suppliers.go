package gormstore

import (
	"gorm.io/gorm"

	"bookshop-app/internal/models"
	"bookshop-app/internal/storage"
)

type supplierStore struct {
	db *gorm.DB
}

func (s *supplierStore) Create(supplier *models.Supplier) error {
	return s.db.Create(supplier).Error
}

func (s *supplierStore) List() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := s.db.Preload("Payments").Order("created_at desc").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (s *supplierStore) FindByID(id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := s.db.Preload("Payments").First(&supplier, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &supplier, nil
}

func (s *supplierStore) AddPayment(id uint, payment *models.SupplierPayment, newDebt float64) (*models.Supplier, error) {
	payment.SupplierID = id
	if err := s.db.Create(payment).Error; err != nil {
		return nil, err
	}
	res := s.db.Model(&models.Supplier{}).Where("id = ?", id).Update("total_debt", newDebt)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, storage.ErrNotFound
	}
	return s.FindByID(id)
}
