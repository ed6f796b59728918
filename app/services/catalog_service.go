// Package services holds the business rules between controllers and the
// store. Services take their store dependency at construction so tests can
// hand them the in-memory implementation.
package services

import (
	"context"
	"time"

	"github.com/devansh742005/under-the-hoodies/app/models"
	"github.com/devansh742005/under-the-hoodies/app/store"
	"github.com/devansh742005/under-the-hoodies/pkg/cache"
)

// catalogCacheKey holds the full product list. Any product mutation
// forgets it, so readers always refetch after a write.
const catalogCacheKey = "catalog:all"

const catalogCacheTTL = 5 * time.Minute

type CatalogService struct {
	products store.Products
}

func NewCatalogService(s store.Store) *CatalogService {
	return &CatalogService{products: s.Products()}
}

// All returns every product, newest first, via the cache when warm.
func (s *CatalogService) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if cache.Get(catalogCacheKey, &products) {
		return products, nil
	}

	products, err := s.products.All(ctx)
	if err != nil {
		return nil, err
	}

	cache.Set(catalogCacheKey, products, catalogCacheTTL)
	return products, nil
}

// Find returns one product. Unknown ids surface store.ErrNotFound.
func (s *CatalogService) Find(ctx context.Context, id uint) (models.Product, error) {
	return s.products.Find(ctx, id)
}
