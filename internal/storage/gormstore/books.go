package gormstore

import (
	"gorm.io/gorm"

	"bookshop-app/internal/models"
	"bookshop-app/internal/storage"
)

type bookStore struct {
	db *gorm.DB
}

func (s *bookStore) Create(book *models.Book) error {
	return s.db.Create(book).Error
}

func (s *bookStore) List() ([]models.Book, error) {
	var books []models.Book
	if err := s.db.Order("created_at desc").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (s *bookStore) FindByID(id uint) (*models.Book, error) {
	var book models.Book
	if err := s.db.First(&book, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &book, nil
}

func (s *bookStore) UpdateStock(id uint, stock int) (*models.Book, error) {
	res := s.db.Model(&models.Book{}).Where("id = ?", id).Update("stock", stock)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, storage.ErrNotFound
	}
	return s.FindByID(id)
}

func (s *bookStore) UpdatePrice(id uint, price float64) (*models.Book, error) {
	res := s.db.Model(&models.Book{}).Where("id = ?", id).Update("price", price)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, storage.ErrNotFound
	}
	return s.FindByID(id)
}

func (s *bookStore) Delete(id uint) error {
	res := s.db.Delete(&models.Book{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DecrementStock is the row-level guard against lost updates: the conditional
// update only touches the row while stock covers the quantity, so a competing
// sale of the same units sees zero rows affected and aborts.
func (s *bookStore) DecrementStock(id uint, qty int) error {
	res := s.db.Model(&models.Book{}).
		Where("id = ? AND stock >= ?", id, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := s.FindByID(id); err != nil {
			return err
		}
		return storage.ErrInsufficientStock
	}
	return nil
}

func (s *bookStore) ListBelowStock(threshold int) ([]models.Book, error) {
	var books []models.Book
	if err := s.db.Where("stock < ?", threshold).Order("stock asc").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}
