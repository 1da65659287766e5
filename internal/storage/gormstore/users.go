package gormstore

import (
	"gorm.io/gorm"

	"bookshop-app/internal/models"
)

type userStore struct {
	db *gorm.DB
}

func (s *userStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *userStore) FindByName(name string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("name = ?", name).First(&user).Error; err != nil {
		return nil, mapErr(err)
	}
	return &user, nil
}

func (s *userStore) FindByNameOrEmail(name, email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("name = ? OR email = ?", name, email).First(&user).Error; err != nil {
		return nil, mapErr(err)
	}
	return &user, nil
}
