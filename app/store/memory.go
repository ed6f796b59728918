package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/devansh742005/under-the-hoodies/app/models"
)

// Memory is an in-memory Store used by tests and local experiments, the
// same way the queue's memory driver stands in for Redis. Error fields
// let a test force a specific table operation to fail.
type Memory struct {
	mu sync.Mutex

	profiles map[uint]models.Profile
	products map[uint]models.Product
	orders   map[uint]models.Order

	nextProfileID uint
	nextProductID uint
	nextOrderID   uint

	// Failure injection: when non-nil, the matching operation returns the
	// error instead of touching state.
	FailOrderCreate   error
	FailProfileFind   error
	FailProfileUpdate error

	// OrderCreateCalls counts Create attempts on the orders table,
	// including ones that failed by injection.
	OrderCreateCalls int
	// ProductWriteCalls counts Create/Update attempts on products.
	ProductWriteCalls int
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		profiles: map[uint]models.Profile{},
		products: map[uint]models.Product{},
		orders:   map[uint]models.Order{},
	}
}

func (m *Memory) Profiles() Profiles { return memProfiles{m} }
func (m *Memory) Products() Products { return memProducts{m} }
func (m *Memory) Orders() Orders     { return memOrders{m} }

// ── Profiles ─────────────────────────────────────────────────────────────────

type memProfiles struct{ m *Memory }

func (s memProfiles) Create(_ context.Context, p *models.Profile) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	s.m.nextProfileID++
	p.ID = s.m.nextProfileID
	p.CreatedAt = time.Now()
	s.m.profiles[p.ID] = *p
	return nil
}

func (s memProfiles) Find(_ context.Context, id uint) (models.Profile, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if s.m.FailProfileFind != nil {
		return models.Profile{}, s.m.FailProfileFind
	}
	p, ok := s.m.profiles[id]
	if !ok {
		return models.Profile{}, ErrNotFound
	}
	return p, nil
}

func (s memProfiles) FindByEmail(_ context.Context, email string) (models.Profile, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for _, p := range s.m.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return models.Profile{}, ErrNotFound
}

func (s memProfiles) UpdateAddress(_ context.Context, id uint, addr models.Address) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if s.m.FailProfileUpdate != nil {
		return s.m.FailProfileUpdate
	}
	p, ok := s.m.profiles[id]
	if !ok {
		return ErrNotFound
	}
	p.Address = addr
	s.m.profiles[id] = p
	return nil
}

// ── Products ─────────────────────────────────────────────────────────────────

type memProducts struct{ m *Memory }

func (s memProducts) All(_ context.Context) ([]models.Product, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	out := make([]models.Product, 0, len(s.m.products))
	for _, p := range s.m.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s memProducts) Find(_ context.Context, id uint) (models.Product, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	p, ok := s.m.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

func (s memProducts) Create(_ context.Context, p *models.Product) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	s.m.ProductWriteCalls++
	s.m.nextProductID++
	p.ID = s.m.nextProductID
	p.CreatedAt = time.Now()
	s.m.products[p.ID] = *p
	return nil
}

func (s memProducts) Update(_ context.Context, p *models.Product) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	s.m.ProductWriteCalls++
	if _, ok := s.m.products[p.ID]; !ok {
		return ErrNotFound
	}
	s.m.products[p.ID] = *p
	return nil
}

func (s memProducts) Delete(_ context.Context, id uint) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	delete(s.m.products, id)
	return nil
}

// ── Orders ───────────────────────────────────────────────────────────────────

type memOrders struct{ m *Memory }

func (s memOrders) Create(_ context.Context, o *models.Order) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	s.m.OrderCreateCalls++
	if s.m.FailOrderCreate != nil {
		return s.m.FailOrderCreate
	}
	s.m.nextOrderID++
	o.ID = s.m.nextOrderID
	o.CreatedAt = time.Now()
	s.m.orders[o.ID] = *o
	return nil
}

func (s memOrders) ForUser(_ context.Context, userID uint) ([]models.UserOrder, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	var out []models.UserOrder
	for _, o := range s.m.orders {
		if o.UserID != userID {
			continue
		}
		row := models.UserOrder{Order: o}
		// Left-join semantics: a deleted product leaves the order with
		// empty product fields.
		if p, ok := s.m.products[o.ProductID]; ok {
			row.ProductName = p.Name
			row.ProductPrice = p.Price
		}
		out = append(out, row)
	}
	sortUserOrders(out)
	return out, nil
}

func (s memOrders) AllWithCustomer(_ context.Context) ([]models.AdminOrder, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	var out []models.AdminOrder
	for _, o := range s.m.orders {
		row := models.AdminOrder{UserOrder: models.UserOrder{Order: o}}
		if p, ok := s.m.products[o.ProductID]; ok {
			row.ProductName = p.Name
			row.ProductPrice = p.Price
		}
		if prof, ok := s.m.profiles[o.UserID]; ok {
			row.CustomerEmail = prof.Email
			row.CustomerName = prof.FullName
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return newerOrder(out[i].Order, out[j].Order) })
	return out, nil
}

func sortUserOrders(rows []models.UserOrder) {
	sort.Slice(rows, func(i, j int) bool { return newerOrder(rows[i].Order, rows[j].Order) })
}

func newerOrder(a, b models.Order) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID > b.ID
	}
	return a.CreatedAt.After(b.CreatedAt)
}

// SeedProfile inserts a profile directly, for test setup.
func (m *Memory) SeedProfile(p models.Profile) models.Profile {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.ID == 0 {
		m.nextProfileID++
		p.ID = m.nextProfileID
	} else if p.ID > m.nextProfileID {
		m.nextProfileID = p.ID
	}
	m.profiles[p.ID] = p
	return p
}

// SeedProduct inserts a product directly, for test setup.
func (m *Memory) SeedProduct(p models.Product) models.Product {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.ID == 0 {
		m.nextProductID++
		p.ID = m.nextProductID
	} else if p.ID > m.nextProductID {
		m.nextProductID = p.ID
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	m.products[p.ID] = p
	return p
}

// Profile returns the stored profile by id, for test assertions.
func (m *Memory) Profile(id uint) (models.Profile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[id]
	return p, ok
}

// OrderCount reports how many orders are stored.
func (m *Memory) OrderCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}
