package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/devansh742005/under-the-hoodies/app/models"
	"github.com/devansh742005/under-the-hoodies/app/store"
	"github.com/devansh742005/under-the-hoodies/pkg/cache"
	"github.com/devansh742005/under-the-hoodies/pkg/metrics"
	"github.com/devansh742005/under-the-hoodies/pkg/storage"
)

// imagePrefix is the storage folder for uploaded product images.
const imagePrefix = "product-images"

// ProductInput carries a validated admin product form into the store.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Sizes       []string
	ImageURL    string
	InStock     bool
}

type AdminService struct {
	products store.Products
	orders   store.Orders
}

func NewAdminService(s store.Store) *AdminService {
	return &AdminService{products: s.Products(), orders: s.Orders()}
}

func (s *AdminService) Products(ctx context.Context) ([]models.Product, error) {
	return s.products.All(ctx)
}

func (s *AdminService) CreateProduct(ctx context.Context, in ProductInput) (models.Product, error) {
	product := models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Sizes:       in.Sizes,
		ImageURL:    in.ImageURL,
		InStock:     in.InStock,
	}
	if err := s.products.Create(ctx, &product); err != nil {
		return models.Product{}, fmt.Errorf("admin: create product: %w", err)
	}

	s.bustCatalog("create")
	return product, nil
}

func (s *AdminService) UpdateProduct(ctx context.Context, id uint, in ProductInput) (models.Product, error) {
	product, err := s.products.Find(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.Sizes = in.Sizes
	product.ImageURL = in.ImageURL
	product.InStock = in.InStock

	if err := s.products.Update(ctx, &product); err != nil {
		return models.Product{}, fmt.Errorf("admin: update product: %w", err)
	}

	s.bustCatalog("update")
	return product, nil
}

// DeleteProduct removes the catalogue row only. Orders referencing the
// product are left alone; the dashboards render them via a left join.
func (s *AdminService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}

	s.bustCatalog("delete")
	return nil
}

// Orders returns every order joined with product and customer profile,
// newest first.
func (s *AdminService) Orders(ctx context.Context) ([]models.AdminOrder, error) {
	return s.orders.AllWithCustomer(ctx)
}

// StoreImage writes an uploaded image to the configured disk under a
// random hex name that keeps the original extension, and returns the
// public URL to persist on the product row.
func (s *AdminService) StoreImage(filename string, r io.Reader) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("admin: random name: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	path := fmt.Sprintf("%s/%s%s", imagePrefix, hex.EncodeToString(buf), ext)

	disk := storage.Default()
	if err := disk.PutStream(path, r); err != nil {
		return "", fmt.Errorf("admin: store image: %w", err)
	}

	return disk.URL(path), nil
}

func (s *AdminService) bustCatalog(kind string) {
	cache.Forget(catalogCacheKey)
	metrics.ProductMutations.WithLabelValues(kind).Inc()
}
