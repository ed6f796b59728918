package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/devansh742005/under-the-hoodies/app/models"
	"github.com/devansh742005/under-the-hoodies/pkg/metrics"
)

// Gorm is the production Store backed by a *gorm.DB.
type Gorm struct {
	profiles gormProfiles
	products gormProducts
	orders   gormOrders
}

// NewGorm wraps db in a Store.
func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{
		profiles: gormProfiles{db: db},
		products: gormProducts{db: db},
		orders:   gormOrders{db: db},
	}
}

func (g *Gorm) Profiles() Profiles { return g.profiles }
func (g *Gorm) Products() Products { return g.products }
func (g *Gorm) Orders() Orders     { return g.orders }

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ── Profiles ─────────────────────────────────────────────────────────────────

type gormProfiles struct{ db *gorm.DB }

func (s gormProfiles) Create(ctx context.Context, p *models.Profile) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return s.db.WithContext(ctx).Create(p).Error
}

func (s gormProfiles) Find(ctx context.Context, id uint) (models.Profile, error) {
	defer metrics.ObserveDBQuery("select", time.Now())
	var p models.Profile
	err := s.db.WithContext(ctx).First(&p, id).Error
	return p, translate(err)
}

func (s gormProfiles) FindByEmail(ctx context.Context, email string) (models.Profile, error) {
	defer metrics.ObserveDBQuery("select", time.Now())
	var p models.Profile
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&p).Error
	return p, translate(err)
}

func (s gormProfiles) UpdateAddress(ctx context.Context, id uint, addr models.Address) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return s.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"address":     addr.Address,
			"city":        addr.City,
			"state":       addr.State,
			"postal_code": addr.PostalCode,
			"country":     addr.Country,
		}).Error
}

// ── Products ─────────────────────────────────────────────────────────────────

type gormProducts struct{ db *gorm.DB }

func (s gormProducts) All(ctx context.Context) ([]models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())
	var out []models.Product
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (s gormProducts) Find(ctx context.Context, id uint) (models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())
	var p models.Product
	err := s.db.WithContext(ctx).First(&p, id).Error
	return p, translate(err)
}

func (s gormProducts) Create(ctx context.Context, p *models.Product) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return s.db.WithContext(ctx).Create(p).Error
}

func (s gormProducts) Update(ctx context.Context, p *models.Product) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return s.db.WithContext(ctx).Save(p).Error
}

func (s gormProducts) Delete(ctx context.Context, id uint) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	// Plain row delete: orders referencing the product are left alone.
	return s.db.WithContext(ctx).Delete(&models.Product{}, id).Error
}

// ── Orders ───────────────────────────────────────────────────────────────────

type gormOrders struct{ db *gorm.DB }

func (s gormOrders) Create(ctx context.Context, o *models.Order) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return s.db.WithContext(ctx).Create(o).Error
}

func (s gormOrders) ForUser(ctx context.Context, userID uint) ([]models.UserOrder, error) {
	defer metrics.ObserveDBQuery("select", time.Now())
	var out []models.UserOrder
	err := s.db.WithContext(ctx).
		Table("orders").
		Select("orders.*, products.name AS product_name, products.price AS product_price").
		Joins("LEFT JOIN products ON products.id = orders.product_id").
		Where("orders.user_id = ?", userID).
		Order("orders.created_at DESC").
		Scan(&out).Error
	return out, err
}

func (s gormOrders) AllWithCustomer(ctx context.Context) ([]models.AdminOrder, error) {
	defer metrics.ObserveDBQuery("select", time.Now())
	var out []models.AdminOrder
	err := s.db.WithContext(ctx).
		Table("orders").
		Select("orders.*, products.name AS product_name, products.price AS product_price, " +
			"profiles.email AS customer_email, profiles.full_name AS customer_name").
		Joins("LEFT JOIN products ON products.id = orders.product_id").
		Joins("LEFT JOIN profiles ON profiles.id = orders.user_id").
		Order("orders.created_at DESC").
		Scan(&out).Error
	return out, err
}
