package services

import (
	"context"
	"fmt"

	"github.com/devansh742005/under-the-hoodies/app/models"
	"github.com/devansh742005/under-the-hoodies/app/store"
	"github.com/devansh742005/under-the-hoodies/pkg/logger"
	"github.com/devansh742005/under-the-hoodies/pkg/metrics"
)

// OrderSummary is what the checkout page shows before the buyer confirms.
type OrderSummary struct {
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	Size         string  `json:"size"`
	Quantity     int     `json:"quantity"`
}

type CheckoutService struct {
	profiles store.Profiles
	products store.Products
	orders   store.Orders
}

func NewCheckoutService(s store.Store) *CheckoutService {
	return &CheckoutService{
		profiles: s.Profiles(),
		products: s.Products(),
		orders:   s.Orders(),
	}
}

// Summary loads the product behind an order intent. The chosen size is
// echoed back as given: membership in the product's size list is a
// client-side convention and is not enforced here.
func (s *CheckoutService) Summary(ctx context.Context, productID uint, size string) (OrderSummary, error) {
	product, err := s.products.Find(ctx, productID)
	if err != nil {
		return OrderSummary{}, err
	}

	return OrderSummary{
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductPrice: product.Price,
		Size:         size,
		Quantity:     1,
	}, nil
}

// Place runs the two checkout writes in sequence: first the buyer's profile
// address is overwritten, then the order row is inserted. The writes are
// NOT transactional: if the insert fails the address update stays, matching
// the storefront's long-standing behavior. Callers surface the insert
// error to the buyer.
func (s *CheckoutService) Place(ctx context.Context, userID, productID uint, size string, addr models.Address) (models.Order, error) {
	if err := s.profiles.UpdateAddress(ctx, userID, addr); err != nil {
		return models.Order{}, fmt.Errorf("checkout: save address: %w", err)
	}

	order := models.Order{
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
		Size:      size,
		Address:   addr,
	}
	if err := s.orders.Create(ctx, &order); err != nil {
		logger.WithCtx(ctx).Warn("order insert failed after address update",
			"user_id", userID,
			"product_id", productID,
			"error", err.Error(),
		)
		return models.Order{}, fmt.Errorf("checkout: place order: %w", err)
	}

	metrics.OrdersPlaced.Inc()
	return order, nil
}

// History returns the caller's orders joined with product name and price,
// newest first.
func (s *CheckoutService) History(ctx context.Context, userID uint) ([]models.UserOrder, error) {
	return s.orders.ForUser(ctx, userID)
}
