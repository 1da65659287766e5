package gormstore

import (
	"time"

	"gorm.io/gorm"

	"bookshop-app/internal/models"
)

type saleStore struct {
	db *gorm.DB
}

func (s *saleStore) Create(sale *models.Sale) error {
	return s.db.Create(sale).Error
}

func (s *saleStore) FindByID(id uint) (*models.Sale, error) {
	var sale models.Sale
	err := s.db.Preload("Student").Preload("Items").Preload("Items.Book").
		First(&sale, id).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &sale, nil
}

func (s *saleStore) ListBetween(start, end *time.Time) ([]models.Sale, error) {
	var sales []models.Sale
	if err := s.between(start, end).
		Preload("Student").Preload("Items").Preload("Items.Book").
		Order("created_at desc").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

func (s *saleStore) Recent(n int) ([]models.Sale, error) {
	var sales []models.Sale
	if err := s.db.Preload("Student").Preload("Items").Preload("Items.Book").
		Order("created_at desc").Limit(n).Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

func (s *saleStore) TotalBetween(start, end *time.Time) (float64, error) {
	var total float64
	err := s.between(start, end).Model(&models.Sale{}).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&total).Error
	return total, err
}

func (s *saleStore) Count() (int64, error) {
	var count int64
	err := s.db.Model(&models.Sale{}).Count(&count).Error
	return count, err
}

func (s *saleStore) Last() (*models.Sale, error) {
	var sale models.Sale
	if err := s.db.Order("id desc").First(&sale).Error; err != nil {
		return nil, mapErr(err)
	}
	return &sale, nil
}

func (s *saleStore) between(start, end *time.Time) *gorm.DB {
	q := s.db
	if start != nil {
		q = q.Where("created_at >= ?", *start)
	}
	if end != nil {
		q = q.Where("created_at <= ?", *end)
	}
	return q
}
