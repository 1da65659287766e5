package models

import (
	"time"
)

type Supplier struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	Name      string            `gorm:"size:100;not null" json:"name"`
	TotalDebt float64           `gorm:"type:decimal(10,2);default:0.00" json:"total_debt"`
	Payments  []SupplierPayment `gorm:"foreignKey:SupplierID" json:"payments"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type SupplierPayment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SupplierID  uint      `json:"supplier_id"`
	Amount      float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentDate time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"payment_date"`
}
