// Package storage defines the persistence contracts the services are built
// against. The gormstore implementation backs them with MySQL; memstore is an
// in-memory implementation with the same transactional semantics.
package storage

import (
	"context"
	"errors"
	"time"

	"bookshop-app/internal/models"
)

// ErrNotFound is returned when a record with the given ID does not exist.
var ErrNotFound = errors.New("record not found")

// ErrInsufficientStock is returned by DecrementStock when the conditional
// update would drive a book's stock below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

type BookStore interface {
	Create(book *models.Book) error
	List() ([]models.Book, error)
	FindByID(id uint) (*models.Book, error)
	UpdateStock(id uint, stock int) (*models.Book, error)
	UpdatePrice(id uint, price float64) (*models.Book, error)
	Delete(id uint) error
	// DecrementStock applies `stock = stock - qty` only while stock >= qty,
	// so two transactions can never both consume the same remaining units.
	DecrementStock(id uint, qty int) error
	ListBelowStock(threshold int) ([]models.Book, error)
}

type StudentStore interface {
	Create(student *models.Student) error
	List() ([]models.Student, error)
	FindByID(id uint) (*models.Student, error)
	Update(student *models.Student) error
}

type SaleStore interface {
	Create(sale *models.Sale) error
	// FindByID returns the sale with student and item books populated.
	// Items referencing deleted books carry a nil Book.
	FindByID(id uint) (*models.Sale, error)
	// ListBetween returns populated sales with created_at in [start, end],
	// newest first. A nil bound is open-ended.
	ListBetween(start, end *time.Time) ([]models.Sale, error)
	Recent(n int) ([]models.Sale, error)
	TotalBetween(start, end *time.Time) (float64, error)
	Count() (int64, error)
	Last() (*models.Sale, error)
}

type SupplierStore interface {
	Create(supplier *models.Supplier) error
	List() ([]models.Supplier, error)
	FindByID(id uint) (*models.Supplier, error)
	AddPayment(id uint, payment *models.SupplierPayment, newDebt float64) (*models.Supplier, error)
}

type SettingStore interface {
	// Get returns the singleton settings row, creating it from defaults when
	// the table is empty.
	Get(defaults models.Setting) (*models.Setting, error)
	Update(setting *models.Setting) error
}

type UserStore interface {
	Create(user *models.User) error
	FindByName(name string) (*models.User, error)
	FindByNameOrEmail(name, email string) (*models.User, error)
}

// Store bundles the repositories with a transaction boundary.
type Store interface {
	Books() BookStore
	Students() StudentStore
	Sales() SaleStore
	Suppliers() SupplierStore
	Settings() SettingStore
	Users() UserStore

	// Atomically runs fn against a transactional view of the store. Effects
	// are committed only if fn returns nil; any error rolls everything back.
	Atomically(ctx context.Context, fn func(tx Store) error) error
}
