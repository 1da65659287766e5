// Package gormstore implements storage.Store on top of gorm/MySQL.
package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bookshop-app/internal/storage"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Books() storage.BookStore         { return &bookStore{db: s.db} }
func (s *Store) Students() storage.StudentStore   { return &studentStore{db: s.db} }
func (s *Store) Sales() storage.SaleStore         { return &saleStore{db: s.db} }
func (s *Store) Suppliers() storage.SupplierStore { return &supplierStore{db: s.db} }
func (s *Store) Settings() storage.SettingStore   { return &settingStore{db: s.db} }
func (s *Store) Users() storage.UserStore         { return &userStore{db: s.db} }

// Atomically wraps fn in a database transaction; the store handed to fn is
// bound to that transaction, so every repository call inside commits or
// rolls back as one unit.
func (s *Store) Atomically(ctx context.Context, fn func(tx storage.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return storage.ErrNotFound
	}
	return err
}
