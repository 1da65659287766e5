// Package memstore is an in-memory storage.Store used by tests. Writes go
// through a single mutex; Atomically runs against a cloned state that is only
// swapped in on success, giving the same all-or-nothing behavior as the
// database transaction in gormstore.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"bookshop-app/internal/models"
	"bookshop-app/internal/storage"
)

type state struct {
	books     map[uint]*models.Book
	students  map[uint]*models.Student
	sales     map[uint]*models.Sale
	suppliers map[uint]*models.Supplier
	setting   *models.Setting
	users     map[uint]*models.User
	lastID    map[string]uint
}

func newState() *state {
	return &state{
		books:     map[uint]*models.Book{},
		students:  map[uint]*models.Student{},
		sales:     map[uint]*models.Sale{},
		suppliers: map[uint]*models.Supplier{},
		users:     map[uint]*models.User{},
		lastID:    map[string]uint{},
	}
}

func (st *state) next(entity string) uint {
	st.lastID[entity]++
	return st.lastID[entity]
}

func (st *state) clone() *state {
	c := newState()
	for id, b := range st.books {
		v := *b
		c.books[id] = &v
	}
	for id, s := range st.students {
		v := *s
		c.students[id] = &v
	}
	for id, s := range st.sales {
		v := *s
		v.Items = append([]models.SaleItem(nil), s.Items...)
		c.sales[id] = &v
	}
	for id, s := range st.suppliers {
		v := *s
		v.Payments = append([]models.SupplierPayment(nil), s.Payments...)
		c.suppliers[id] = &v
	}
	if st.setting != nil {
		v := *st.setting
		c.setting = &v
	}
	for id, u := range st.users {
		v := *u
		c.users[id] = &v
	}
	for k, v := range st.lastID {
		c.lastID[k] = v
	}
	return c
}

type Store struct {
	mu sync.Mutex
	st *state
	// tx stores operate on a private clone under the parent's lock and must
	// not lock again.
	tx bool
}

func New() *Store {
	return &Store{st: newState()}
}

func (s *Store) enter() func() {
	if s.tx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) Atomically(ctx context.Context, fn func(tx storage.Store) error) error {
	if s.tx {
		return fn(s)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	work := &Store{st: s.st.clone(), tx: true}
	if err := fn(work); err != nil {
		return err
	}
	s.st = work.st
	return nil
}

func (s *Store) Books() storage.BookStore         { return &bookStore{s} }
func (s *Store) Students() storage.StudentStore   { return &studentStore{s} }
func (s *Store) Sales() storage.SaleStore         { return &saleStore{s} }
func (s *Store) Suppliers() storage.SupplierStore { return &supplierStore{s} }
func (s *Store) Settings() storage.SettingStore   { return &settingStore{s} }
func (s *Store) Users() storage.UserStore         { return &userStore{s} }

type bookStore struct{ s *Store }

func (r *bookStore) Create(book *models.Book) error {
	defer r.s.enter()()
	if book.ID == 0 {
		book.ID = r.s.st.next("books")
	}
	if book.CreatedAt.IsZero() {
		book.CreatedAt = time.Now()
	}
	book.UpdatedAt = book.CreatedAt
	v := *book
	r.s.st.books[book.ID] = &v
	return nil
}

func (r *bookStore) List() ([]models.Book, error) {
	defer r.s.enter()()
	books := make([]models.Book, 0, len(r.s.st.books))
	for _, b := range r.s.st.books {
		books = append(books, *b)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].CreatedAt.After(books[j].CreatedAt) })
	return books, nil
}

func (r *bookStore) FindByID(id uint) (*models.Book, error) {
	defer r.s.enter()()
	b, ok := r.s.st.books[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	v := *b
	return &v, nil
}

func (r *bookStore) UpdateStock(id uint, stock int) (*models.Book, error) {
	defer r.s.enter()()
	b, ok := r.s.st.books[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	b.Stock = stock
	b.UpdatedAt = time.Now()
	v := *b
	return &v, nil
}

func (r *bookStore) UpdatePrice(id uint, price float64) (*models.Book, error) {
	defer r.s.enter()()
	b, ok := r.s.st.books[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	b.Price = price
	b.UpdatedAt = time.Now()
	v := *b
	return &v, nil
}

func (r *bookStore) Delete(id uint) error {
	defer r.s.enter()()
	if _, ok := r.s.st.books[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.s.st.books, id)
	return nil
}

func (r *bookStore) DecrementStock(id uint, qty int) error {
	defer r.s.enter()()
	b, ok := r.s.st.books[id]
	if !ok {
		return storage.ErrNotFound
	}
	if b.Stock < qty {
		return storage.ErrInsufficientStock
	}
	b.Stock -= qty
	b.UpdatedAt = time.Now()
	return nil
}

func (r *bookStore) ListBelowStock(threshold int) ([]models.Book, error) {
	defer r.s.enter()()
	var books []models.Book
	for _, b := range r.s.st.books {
		if b.Stock < threshold {
			books = append(books, *b)
		}
	}
	sort.Slice(books, func(i, j int) bool { return books[i].Stock < books[j].Stock })
	return books, nil
}

type studentStore struct{ s *Store }

func (r *studentStore) Create(student *models.Student) error {
	defer r.s.enter()()
	if student.ID == 0 {
		student.ID = r.s.st.next("students")
	}
	if student.CreatedAt.IsZero() {
		student.CreatedAt = time.Now()
	}
	student.UpdatedAt = student.CreatedAt
	v := *student
	r.s.st.students[student.ID] = &v
	return nil
}

func (r *studentStore) List() ([]models.Student, error) {
	defer r.s.enter()()
	students := make([]models.Student, 0, len(r.s.st.students))
	for _, s := range r.s.st.students {
		students = append(students, *s)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].CreatedAt.After(students[j].CreatedAt) })
	return students, nil
}

func (r *studentStore) FindByID(id uint) (*models.Student, error) {
	defer r.s.enter()()
	st, ok := r.s.st.students[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	v := *st
	return &v, nil
}

func (r *studentStore) Update(student *models.Student) error {
	defer r.s.enter()()
	existing, ok := r.s.st.students[student.ID]
	if !ok {
		return storage.ErrNotFound
	}
	existing.Name = student.Name
	existing.ClassLevel = student.ClassLevel
	existing.UpdatedAt = time.Now()
	return nil
}

type saleStore struct{ s *Store }

func (r *saleStore) Create(sale *models.Sale) error {
	defer r.s.enter()()
	if sale.ID == 0 {
		sale.ID = r.s.st.next("sales")
	}
	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = time.Now()
	}
	for i := range sale.Items {
		if sale.Items[i].ID == 0 {
			sale.Items[i].ID = r.s.st.next("sale_items")
		}
		sale.Items[i].SaleID = sale.ID
	}
	v := *sale
	v.Student = nil
	v.Items = append([]models.SaleItem(nil), sale.Items...)
	for i := range v.Items {
		v.Items[i].Book = nil
	}
	r.s.st.sales[sale.ID] = &v
	return nil
}

// populate resolves student and book references the way gorm preloads do;
// a deleted book leaves Item.Book nil.
func (st *state) populate(sale *models.Sale) models.Sale {
	v := *sale
	if s, ok := st.students[sale.StudentID]; ok {
		sv := *s
		v.Student = &sv
	}
	v.Items = append([]models.SaleItem(nil), sale.Items...)
	for i := range v.Items {
		if b, ok := st.books[v.Items[i].BookID]; ok {
			bv := *b
			v.Items[i].Book = &bv
		}
	}
	return v
}

func (r *saleStore) FindByID(id uint) (*models.Sale, error) {
	defer r.s.enter()()
	sale, ok := r.s.st.sales[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	v := r.s.st.populate(sale)
	return &v, nil
}

func (r *saleStore) ListBetween(start, end *time.Time) ([]models.Sale, error) {
	defer r.s.enter()()
	var sales []models.Sale
	for _, s := range r.s.st.sales {
		if start != nil && s.CreatedAt.Before(*start) {
			continue
		}
		if end != nil && s.CreatedAt.After(*end) {
			continue
		}
		sales = append(sales, r.s.st.populate(s))
	}
	sort.Slice(sales, func(i, j int) bool { return sales[i].CreatedAt.After(sales[j].CreatedAt) })
	return sales, nil
}

func (r *saleStore) Recent(n int) ([]models.Sale, error) {
	sales, err := r.ListBetween(nil, nil)
	if err != nil {
		return nil, err
	}
	if len(sales) > n {
		sales = sales[:n]
	}
	return sales, nil
}

func (r *saleStore) TotalBetween(start, end *time.Time) (float64, error) {
	defer r.s.enter()()
	var total float64
	for _, s := range r.s.st.sales {
		if start != nil && s.CreatedAt.Before(*start) {
			continue
		}
		if end != nil && s.CreatedAt.After(*end) {
			continue
		}
		total += s.TotalAmount
	}
	return total, nil
}

func (r *saleStore) Count() (int64, error) {
	defer r.s.enter()()
	return int64(len(r.s.st.sales)), nil
}

func (r *saleStore) Last() (*models.Sale, error) {
	defer r.s.enter()()
	var last *models.Sale
	for _, s := range r.s.st.sales {
		if last == nil || s.ID > last.ID {
			last = s
		}
	}
	if last == nil {
		return nil, storage.ErrNotFound
	}
	v := *last
	return &v, nil
}

type supplierStore struct{ s *Store }

func (r *supplierStore) Create(supplier *models.Supplier) error {
	defer r.s.enter()()
	if supplier.ID == 0 {
		supplier.ID = r.s.st.next("suppliers")
	}
	if supplier.CreatedAt.IsZero() {
		supplier.CreatedAt = time.Now()
	}
	v := *supplier
	v.Payments = append([]models.SupplierPayment(nil), supplier.Payments...)
	r.s.st.suppliers[supplier.ID] = &v
	return nil
}

func (r *supplierStore) List() ([]models.Supplier, error) {
	defer r.s.enter()()
	suppliers := make([]models.Supplier, 0, len(r.s.st.suppliers))
	for _, s := range r.s.st.suppliers {
		v := *s
		v.Payments = append([]models.SupplierPayment(nil), s.Payments...)
		suppliers = append(suppliers, v)
	}
	sort.Slice(suppliers, func(i, j int) bool { return suppliers[i].CreatedAt.After(suppliers[j].CreatedAt) })
	return suppliers, nil
}

func (r *supplierStore) FindByID(id uint) (*models.Supplier, error) {
	defer r.s.enter()()
	s, ok := r.s.st.suppliers[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	v := *s
	v.Payments = append([]models.SupplierPayment(nil), s.Payments...)
	return &v, nil
}

func (r *supplierStore) AddPayment(id uint, payment *models.SupplierPayment, newDebt float64) (*models.Supplier, error) {
	defer r.s.enter()()
	s, ok := r.s.st.suppliers[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if payment.ID == 0 {
		payment.ID = r.s.st.next("supplier_payments")
	}
	payment.SupplierID = id
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = time.Now()
	}
	s.Payments = append(s.Payments, *payment)
	s.TotalDebt = newDebt
	v := *s
	v.Payments = append([]models.SupplierPayment(nil), s.Payments...)
	return &v, nil
}

type settingStore struct{ s *Store }

func (r *settingStore) Get(defaults models.Setting) (*models.Setting, error) {
	defer r.s.enter()()
	if r.s.st.setting == nil {
		v := defaults
		if v.ID == 0 {
			v.ID = 1
		}
		v.CreatedAt = time.Now()
		v.UpdatedAt = v.CreatedAt
		r.s.st.setting = &v
	}
	v := *r.s.st.setting
	return &v, nil
}

func (r *settingStore) Update(setting *models.Setting) error {
	defer r.s.enter()()
	if r.s.st.setting == nil || r.s.st.setting.ID != setting.ID {
		return storage.ErrNotFound
	}
	r.s.st.setting.StoreName = setting.StoreName
	r.s.st.setting.Currency = setting.Currency
	r.s.st.setting.LowStockThreshold = setting.LowStockThreshold
	r.s.st.setting.UpdatedAt = time.Now()
	return nil
}

type userStore struct{ s *Store }

func (r *userStore) Create(user *models.User) error {
	defer r.s.enter()()
	if user.ID == 0 {
		user.ID = r.s.st.next("users")
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	v := *user
	r.s.st.users[user.ID] = &v
	return nil
}

func (r *userStore) FindByName(name string) (*models.User, error) {
	defer r.s.enter()()
	for _, u := range r.s.st.users {
		if u.Name == name {
			v := *u
			return &v, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *userStore) FindByNameOrEmail(name, email string) (*models.User, error) {
	defer r.s.enter()()
	for _, u := range r.s.st.users {
		if u.Name == name || u.Email == email {
			v := *u
			return &v, nil
		}
	}
	return nil, storage.ErrNotFound
}
