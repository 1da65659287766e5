package models

import (
	"time"
)

type Student struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	ClassLevel string    `gorm:"type:enum('Basic 1','Basic 2','Basic 3','Basic 4','Basic 5','Basic 6');not null" json:"class_level"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
