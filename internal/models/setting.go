package models

import (
	"time"
)

// Setting is a single-row aggregate; the storage layer creates it with
// defaults on first read.
type Setting struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	StoreName         string    `gorm:"size:150;not null" json:"store_name"`
	Currency          string    `gorm:"type:enum('GHS','USD','EUR');default:'GHS'" json:"currency"`
	LowStockThreshold int       `gorm:"default:10" json:"low_stock_threshold"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ValidCurrency reports whether code is a supported currency.
func ValidCurrency(code string) bool {
	switch code {
	case "GHS", "USD", "EUR":
		return true
	}
	return false
}
