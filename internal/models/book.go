package models

import (
	"time"

	"gorm.io/gorm"
)

// Class levels sold by the shop.
const (
	ClassBasic1 = "Basic 1"
	ClassBasic2 = "Basic 2"
	ClassBasic3 = "Basic 3"
	ClassBasic4 = "Basic 4"
	ClassBasic5 = "Basic 5"
	ClassBasic6 = "Basic 6"
)

// ValidClassLevel reports whether level is one of the Basic 1..6 classes.
func ValidClassLevel(level string) bool {
	switch level {
	case ClassBasic1, ClassBasic2, ClassBasic3, ClassBasic4, ClassBasic5, ClassBasic6:
		return true
	}
	return false
}

type Book struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Title      string         `gorm:"size:150;not null" json:"title"`
	Subject    string         `gorm:"size:100;not null" json:"subject"`
	ClassLevel string         `gorm:"type:enum('Basic 1','Basic 2','Basic 3','Basic 4','Basic 5','Basic 6');not null" json:"class_level"`
	Price      float64        `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock      int            `gorm:"not null;default:0" json:"stock"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
