package models

import "gorm.io/gorm"

// Order is created once at checkout and never updated or deleted here.
// The address fields are copied from the checkout form, so later profile
// edits do not rewrite order history.
type Order struct {
	gorm.Model
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	ProductID uint   `gorm:"not null;index" json:"product_id"`
	Quantity  int    `gorm:"not null;default:1" json:"quantity"`
	Size      string `gorm:"size:20;not null" json:"size"`
	Address   `gorm:"embedded"`
}

// UserOrder is an order row joined with the product it references, as shown
// on the customer dashboard. Product fields are null-safe: a deleted product
// leaves the order intact with empty name and zero price.
type UserOrder struct {
	Order
	ProductName  string  `gorm:"column:product_name" json:"product_name"`
	ProductPrice float64 `gorm:"column:product_price" json:"product_price"`
}

// AdminOrder adds the customer profile to the join for the admin overview.
type AdminOrder struct {
	UserOrder
	CustomerEmail string `gorm:"column:customer_email" json:"customer_email"`
	CustomerName  string `gorm:"column:customer_name" json:"customer_name"`
}
