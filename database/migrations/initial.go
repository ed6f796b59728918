package migrations

import (
	"gorm.io/gorm"

	"github.com/devansh742005/under-the-hoodies/app/models"
	"github.com/devansh742005/under-the-hoodies/pkg/migration"
)

func init() {
	migration.Register("20260115000000_create_profiles_table", &CreateProfilesTable{})
	migration.Register("20260115000001_create_products_table", &CreateProductsTable{})
	migration.Register("20260115000002_create_orders_table", &CreateOrdersTable{})
}

// -------- 0001: profiles --------

type CreateProfilesTable struct{}

func (m *CreateProfilesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Profile{})
}

func (m *CreateProfilesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("profiles")
}

// -------- 0002: products --------

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

// -------- 0003: orders --------
//
// No foreign-key constraint on product_id: orders must survive product
// deletion, and the dashboards join with LEFT JOIN.

type CreateOrdersTable struct{}

func (m *CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{})
}

func (m *CreateOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("orders")
}
