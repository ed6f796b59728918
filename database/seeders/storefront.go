package seeders

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/devansh742005/under-the-hoodies/app/models"
	"github.com/devansh742005/under-the-hoodies/config"
	"github.com/devansh742005/under-the-hoodies/pkg/auth"
)

func init() {
	Register("admin", SeedAdmin)
	Register("products", SeedProducts)
}

// SeedAdmin creates the admin account from SEED_ADMIN_EMAIL and
// SEED_ADMIN_PASSWORD. Running twice is safe: an existing row wins.
func SeedAdmin(db *gorm.DB) error {
	email := config.SeedAdminEmail()

	var count int64
	if err := db.Model(&models.Profile{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(config.SeedAdminPassword())
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	return db.Create(&models.Profile{
		Email:    email,
		Password: hash,
		FullName: "Store Admin",
		Role:     models.RoleAdmin,
	}).Error
}

// SeedProducts inserts the starter catalogue when the table is empty.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{
			Name:        "Midnight Classic",
			Description: "Heavyweight fleece hoodie in washed black.",
			Price:       59.00,
			Sizes:       []string{"S", "M", "L", "XL"},
			InStock:     true,
		},
		{
			Name:        "Forest Oversized",
			Description: "Drop-shoulder fit, brushed interior, deep green.",
			Price:       64.00,
			Sizes:       []string{"M", "L", "XL"},
			InStock:     true,
		},
		{
			Name:        "Cloud Zip-Up",
			Description: "Lightweight zip hoodie for layering.",
			Price:       49.00,
			Sizes:       []string{"S", "M", "L"},
			InStock:     true,
		},
	}

	return db.Create(&products).Error
}
