package models

import (
	"time"
)

// Sale is immutable once recorded. Item prices are snapshots taken at
// transaction time, so later book price edits never rewrite history.
type Sale struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ReceiptNo   string     `gorm:"size:50;unique;not null" json:"receipt_no"`
	StudentID   uint       `json:"student_id"`
	Student     *Student   `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	TotalAmount float64    `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Items       []SaleItem `gorm:"foreignKey:SaleID" json:"items"`
	CreatedAt   time.Time  `json:"created_at"`
}

type SaleItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	SaleID      uint    `json:"sale_id"`
	BookID      uint    `json:"book_id"`
	Book        *Book   `gorm:"foreignKey:BookID" json:"book,omitempty"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	PriceAtSale float64 `gorm:"type:decimal(10,2);not null" json:"price_at_sale"`
}
