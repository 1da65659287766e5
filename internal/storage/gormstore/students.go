package gormstore

import (
	"gorm.io/gorm"

	"bookshop-app/internal/models"
)

type studentStore struct {
	db *gorm.DB
}

func (s *studentStore) Create(student *models.Student) error {
	return s.db.Create(student).Error
}

func (s *studentStore) List() ([]models.Student, error) {
	var students []models.Student
	if err := s.db.Order("created_at desc").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (s *studentStore) FindByID(id uint) (*models.Student, error) {
	var student models.Student
	if err := s.db.First(&student, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &student, nil
}

func (s *studentStore) Update(student *models.Student) error {
	var existing models.Student
	if err := s.db.First(&existing, student.ID).Error; err != nil {
		return mapErr(err)
	}
	return s.db.Model(&existing).
		Updates(map[string]any{"name": student.Name, "class_level": student.ClassLevel}).Error
}
