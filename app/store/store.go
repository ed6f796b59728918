// Package store is the data-access boundary of the application. Every page
// handler reads and writes through a Store, so the whole persistence layer
// can be swapped for the in-memory implementation in tests.
package store

import (
	"context"
	"errors"

	"github.com/devansh742005/under-the-hoodies/app/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("store: not found")

// Profiles manages account rows.
type Profiles interface {
	Create(ctx context.Context, p *models.Profile) error
	Find(ctx context.Context, id uint) (models.Profile, error)
	FindByEmail(ctx context.Context, email string) (models.Profile, error)
	// UpdateAddress overwrites only the shipping address block.
	UpdateAddress(ctx context.Context, id uint, addr models.Address) error
}

// Products manages catalogue rows.
type Products interface {
	// All returns every product, newest first.
	All(ctx context.Context) ([]models.Product, error)
	Find(ctx context.Context, id uint) (models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id uint) error
}

// Orders manages order rows. Orders are append-only: there is no update
// or delete, and deleting a product never cascades into orders.
type Orders interface {
	Create(ctx context.Context, o *models.Order) error
	// ForUser returns the user's own orders joined with product name/price,
	// newest first.
	ForUser(ctx context.Context, userID uint) ([]models.UserOrder, error)
	// AllWithCustomer returns every order joined with product and customer
	// profile, newest first. Admin-only callers.
	AllWithCustomer(ctx context.Context) ([]models.AdminOrder, error)
}

// Store bundles the three table interfaces.
type Store interface {
	Profiles() Profiles
	Products() Products
	Orders() Orders
}
