package service

import (
	"errors"

	"go.uber.org/zap"

	"bookshop-app/internal/apperr"
	"bookshop-app/internal/models"
	"bookshop-app/internal/storage"
)

type StudentService struct {
	store  storage.Store
	logger *zap.Logger
}

func NewStudentService(store storage.Store, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{store: store, logger: logger}
}

func (s *StudentService) List() ([]models.Student, error) {
	students, err := s.store.Students().List()
	if err != nil {
		s.logger.Error("failed to list students", zap.Error(err))
		return nil, apperr.Storage(err)
	}
	return students, nil
}

func (s *StudentService) Create(name, classLevel string) (*models.Student, error) {
	if name == "" {
		return nil, apperr.Validation("student name is required")
	}
	if !models.ValidClassLevel(classLevel) {
		return nil, apperr.Validation("invalid class level %q", classLevel)
	}
	student := &models.Student{Name: name, ClassLevel: classLevel}
	if err := s.store.Students().Create(student); err != nil {
		s.logger.Error("failed to create student", zap.String("name", name), zap.Error(err))
		return nil, apperr.Storage(err)
	}
	return student, nil
}

func (s *StudentService) Update(id uint, name, classLevel string) (*models.Student, error) {
	if name == "" {
		return nil, apperr.Validation("student name is required")
	}
	if !models.ValidClassLevel(classLevel) {
		return nil, apperr.Validation("invalid class level %q", classLevel)
	}
	student := &models.Student{ID: id, Name: name, ClassLevel: classLevel}
	if err := s.store.Students().Update(student); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound("student %d not found", id)
		}
		s.logger.Error("failed to update student", zap.Uint("student_id", id), zap.Error(err))
		return nil, apperr.Storage(err)
	}
	updated, err := s.store.Students().FindByID(id)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return updated, nil
}
