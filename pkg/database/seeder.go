package database

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"bookshop-app/config"
	"bookshop-app/internal/models"
	"bookshop-app/internal/utils"
)

// Seed creates the default settings row and the admin user when missing.
func Seed(db *gorm.DB, defaults config.DefaultsConfig) {
	var setting models.Setting
	if err := db.First(&setting).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.Setting{
			StoreName:         defaults.StoreName,
			Currency:          defaults.Currency,
			LowStockThreshold: defaults.LowStockThreshold,
		}
		if err := db.Create(&setting).Error; err != nil {
			log.Printf("Failed to seed settings: %v", err)
		} else {
			log.Println("Default settings seeded.")
		}
	}

	if defaults.AdminName == "" || defaults.AdminPassword == "" {
		return
	}
	var admin models.User
	err := db.Where("name = ?", defaults.AdminName).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := utils.HashPassword(defaults.AdminPassword)
		if err != nil {
			log.Printf("Failed to hash admin password: %v", err)
			return
		}
		admin = models.User{
			Name:         defaults.AdminName,
			Email:        defaults.AdminEmail,
			PasswordHash: hash,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Printf("Failed to seed admin user: %v", err)
		} else {
			log.Println("Admin user seeded successfully.")
		}
	}
}
