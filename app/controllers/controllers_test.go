package controllers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/devansh742005/under-the-hoodies/app/models"
	"github.com/devansh742005/under-the-hoodies/app/routes"
	"github.com/devansh742005/under-the-hoodies/app/store"
	"github.com/devansh742005/under-the-hoodies/pkg/auth"
	"github.com/devansh742005/under-the-hoodies/pkg/router"
)

type envelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

// pagePayload is the shape of every page response: nav shell + page data.
type pagePayload struct {
	Nav []struct {
		Label string `json:"label"`
		Path  string `json:"path"`
	} `json:"nav"`
	Data json.RawMessage `json:"data"`
}

func newApp(t *testing.T) (*store.Memory, http.Handler) {
	t.Helper()
	mem := store.NewMemory()
	r := router.New()
	routes.Register(r, mem)
	return mem, r.Handler()
}

func tokenFor(t *testing.T, p models.Profile) string {
	t.Helper()
	token, err := auth.GenerateToken(p.ID, p.Email)
	require.NoError(t, err)
	return token
}

func do(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func get(h http.Handler, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return do(h, req)
}

func postForm(h http.Handler, target, token string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return do(h, req)
}

func postJSON(h http.Handler, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return do(h, req)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func decodePage(t *testing.T, rec *httptest.ResponseRecorder) pagePayload {
	t.Helper()
	env := decode(t, rec)
	var pp pagePayload
	require.NoError(t, json.Unmarshal(env.Data, &pp))
	return pp
}

func navLabels(pp pagePayload) []string {
	labels := make([]string, len(pp.Nav))
	for i, l := range pp.Nav {
		labels[i] = l.Label
	}
	return labels
}

var shipping = url.Values{
	"address":     {"12 Fleece Lane"},
	"city":        {"Portland"},
	"state":       {"OR"},
	"postal_code": {"97201"},
	"country":     {"USA"},
}

// ── navigation shell ─────────────────────────────────────────────────────────

func TestNavShellPerRole(t *testing.T) {
	mem, h := newApp(t)
	user := mem.SeedProfile(models.Profile{Email: "jo@example.com"})
	admin := mem.SeedProfile(models.Profile{Email: "boss@example.com", Role: models.RoleAdmin})

	t.Run("guest", func(t *testing.T) {
		pp := decodePage(t, get(h, "/", ""))
		assert.Equal(t, []string{"Home", "Shop", "Sign in"}, navLabels(pp))
	})

	t.Run("signed-in user", func(t *testing.T) {
		pp := decodePage(t, get(h, "/", tokenFor(t, user)))
		assert.Equal(t, []string{"Home", "Shop", "Dashboard", "Sign out"}, navLabels(pp))
	})

	t.Run("admin", func(t *testing.T) {
		pp := decodePage(t, get(h, "/", tokenFor(t, admin)))
		assert.Equal(t, []string{"Home", "Shop", "Dashboard", "Admin", "Sign out"}, navLabels(pp))
	})
}

// ── catalog ──────────────────────────────────────────────────────────────────

func TestShopListsNewestFirst(t *testing.T) {
	mem, h := newApp(t)
	mem.SeedProduct(models.Product{Model: gorm.Model{CreatedAt: time.Now().Add(-time.Hour)}, Name: "Old Hoodie"})
	mem.SeedProduct(models.Product{Model: gorm.Model{CreatedAt: time.Now()}, Name: "New Hoodie"})

	pp := decodePage(t, get(h, "/shop", ""))

	var products []models.Product
	require.NoError(t, json.Unmarshal(pp.Data, &products))
	require.Len(t, products, 2)
	assert.Equal(t, "New Hoodie", products[0].Name)
	assert.Equal(t, "Old Hoodie", products[1].Name)
}

func TestShopDetail(t *testing.T) {
	mem, h := newApp(t)
	p := mem.SeedProduct(models.Product{Name: "Midnight Classic", Sizes: []string{"S", "M", "L"}})

	t.Run("known product", func(t *testing.T) {
		rec := get(h, "/shop/1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		pp := decodePage(t, rec)
		var got models.Product
		require.NoError(t, json.Unmarshal(pp.Data, &got))
		assert.Equal(t, p.Name, got.Name)
		// Sizes come back in stored order so clients preselect the first.
		assert.Equal(t, []string{"S", "M", "L"}, got.Sizes)
	})

	t.Run("unknown product is a 404, not a failure", func(t *testing.T) {
		rec := get(h, "/shop/999", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("garbage id is a 404", func(t *testing.T) {
		rec := get(h, "/shop/banana", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

// ── order now ────────────────────────────────────────────────────────────────

func TestOrderNowGuestGoesToAuth(t *testing.T) {
	mem, h := newApp(t)
	mem.SeedProduct(models.Product{Name: "Midnight Classic"})

	rec := postForm(h, "/shop/1/order", "", url.Values{"size": {"M"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth", rec.Header().Get("Location"))
}

func TestOrderNowRequiresSize(t *testing.T) {
	mem, h := newApp(t)
	user := mem.SeedProfile(models.Profile{Email: "jo@example.com"})
	mem.SeedProduct(models.Product{Name: "Midnight Classic"})

	rec := postForm(h, "/shop/1/order", tokenFor(t, user), url.Values{})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decode(t, rec)
	assert.Contains(t, env.Errors, "size")
}

func TestOrderNowRedirectsToCheckoutWithIntent(t *testing.T) {
	mem, h := newApp(t)
	user := mem.SeedProfile(models.Profile{Email: "jo@example.com"})
	mem.SeedProduct(models.Product{Name: "Midnight Classic", Sizes: []string{"S", "M"}})

	rec := postForm(h, "/shop/1/order", tokenFor(t, user), url.Values{"size": {"M"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/checkout?product=1&size=M", rec.Header().Get("Location"))
}

// ── checkout ─────────────────────────────────────────────────────────────────

func TestCheckoutGuardChain(t *testing.T) {
	mem, h := newApp(t)
	user := mem.SeedProfile(models.Profile{Email: "jo@example.com"})
	mem.SeedProduct(models.Product{Name: "Midnight Classic", Price: 59})

	t.Run("guest goes to auth", func(t *testing.T) {
		rec := get(h, "/checkout?product=1&size=M", "")
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/auth", rec.Header().Get("Location"))
	})

	t.Run("guest dashboard goes to auth", func(t *testing.T) {
		rec := get(h, "/dashboard", "")
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/auth", rec.Header().Get("Location"))
	})

	t.Run("missing intent goes back to shop", func(t *testing.T) {
		rec := get(h, "/checkout", tokenFor(t, user))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/shop", rec.Header().Get("Location"))
	})

	t.Run("valid intent shows the summary", func(t *testing.T) {
		rec := get(h, "/checkout?product=1&size=M", tokenFor(t, user))
		require.Equal(t, http.StatusOK, rec.Code)

		pp := decodePage(t, rec)
		var summary struct {
			ProductName string  `json:"product_name"`
			Price       float64 `json:"product_price"`
			Size        string  `json:"size"`
			Quantity    int     `json:"quantity"`
		}
		require.NoError(t, json.Unmarshal(pp.Data, &summary))
		assert.Equal(t, "Midnight Classic", summary.ProductName)
		assert.Equal(t, 59.0, summary.Price)
		assert.Equal(t, "M", summary.Size)
		assert.Equal(t, 1, summary.Quantity)
	})
}

func TestCheckoutPlaceValidatesShipping(t *testing.T) {
	mem, h := newApp(t)
	user := mem.SeedProfile(models.Profile{Email: "jo@example.com"})
	mem.SeedProduct(models.Product{Name: "Midnight Classic"})

	partial := url.Values{"address": {"12 Fleece Lane"}, "city": {"Portland"}}
	rec := postForm(h, "/checkout?product=1&size=M", tokenFor(t, user), partial)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decode(t, rec)
	assert.Contains(t, env.Errors, "state")
	assert.Contains(t, env.Errors, "postal_code")
	assert.Contains(t, env.Errors, "country")
	assert.Equal(t, 0, mem.OrderCount())
}

func TestCheckoutInsertFailureKeepsAddress(t *testing.T) {
	mem, h := newApp(t)
	user := mem.SeedProfile(models.Profile{Email: "jo@example.com"})
	mem.SeedProduct(models.Product{Name: "Midnight Classic"})
	mem.FailOrderCreate = errors.New("orders table unavailable")

	rec := postForm(h, "/checkout?product=1&size=M", tokenFor(t, user), shipping)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Contains(t, env.Message, "orders table unavailable")

	// The profile address write is not undone.
	saved, _ := mem.Profile(user.ID)
	assert.Equal(t, "12 Fleece Lane", saved.Address.Address)
	assert.Equal(t, 0, mem.OrderCount())
}

// ── admin guards ─────────────────────────────────────────────────────────────

func TestAdminRoutesGuarded(t *testing.T) {
	mem, h := newApp(t)
	user := mem.SeedProfile(models.Profile{Email: "jo@example.com"})

	paths := []string{"/admin", "/admin/products", "/admin/orders"}

	t.Run("guest goes home", func(t *testing.T) {
		for _, path := range paths {
			rec := get(h, path, "")
			assert.Equal(t, http.StatusSeeOther, rec.Code, path)
			assert.Equal(t, "/", rec.Header().Get("Location"), path)
		}
	})

	t.Run("non-admin", func(t *testing.T) {
		for _, path := range paths {
			rec := get(h, path, tokenFor(t, user))
			assert.Equal(t, http.StatusSeeOther, rec.Code, path)
			assert.Equal(t, "/", rec.Header().Get("Location"), path)
		}
	})

	t.Run("non-admin write never reaches the store", func(t *testing.T) {
		form := url.Values{"name": {"Sneaky"}, "price": {"1"}, "sizes": {"S"}}
		rec := postForm(h, "/admin/products", tokenFor(t, user), form)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, 0, mem.ProductWriteCalls)
	})
}

// ── admin product management ─────────────────────────────────────────────────

func TestAdminCreateProduct(t *testing.T) {
	mem, h := newApp(t)
	admin := mem.SeedProfile(models.Profile{Email: "boss@example.com", Role: models.RoleAdmin})

	form := url.Values{
		"name":      {"Midnight Classic"},
		"price":     {"59.99"},
		"sizes":     {"S, M ,L"},
		"image_url": {"https://cdn.example.com/midnight.png"},
	}
	rec := postForm(h, "/admin/products", tokenFor(t, admin), form)
	require.Equal(t, http.StatusCreated, rec.Code)

	env := decode(t, rec)
	var product models.Product
	require.NoError(t, json.Unmarshal(env.Data, &product))
	assert.Equal(t, 59.99, product.Price)
	assert.Equal(t, []string{"S", "M", "L"}, product.Sizes)
	assert.Equal(t, "https://cdn.example.com/midnight.png", product.ImageURL)
	assert.True(t, product.InStock)
}

func TestAdminCreateProductEmptyNameNoInsert(t *testing.T) {
	mem, h := newApp(t)
	admin := mem.SeedProfile(models.Profile{Email: "boss@example.com", Role: models.RoleAdmin})

	form := url.Values{"name": {""}, "price": {"59"}, "sizes": {"S"}}
	rec := postForm(h, "/admin/products", tokenFor(t, admin), form)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decode(t, rec)
	assert.Contains(t, env.Errors, "name")
	assert.Equal(t, 0, mem.ProductWriteCalls)
}

func TestAdminCreateProductRejectsBadPrice(t *testing.T) {
	mem, h := newApp(t)
	admin := mem.SeedProfile(models.Profile{Email: "boss@example.com", Role: models.RoleAdmin})

	form := url.Values{"name": {"Midnight"}, "price": {"fifty"}, "sizes": {"S"}}
	rec := postForm(h, "/admin/products", tokenFor(t, admin), form)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decode(t, rec)
	assert.Contains(t, env.Errors, "price")
	assert.Equal(t, 0, mem.ProductWriteCalls)
}

func TestAdminUpdateProduct(t *testing.T) {
	mem, h := newApp(t)
	admin := mem.SeedProfile(models.Profile{Email: "boss@example.com", Role: models.RoleAdmin})
	mem.SeedProduct(models.Product{Name: "Old Name", Price: 10, Sizes: []string{"S"}})

	form := url.Values{"name": {"New Name"}, "price": {"75"}, "sizes": {"M,L"}}
	req := httptest.NewRequest(http.MethodPut, "/admin/products/1", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, admin))
	rec := do(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	var product models.Product
	require.NoError(t, json.Unmarshal(env.Data, &product))
	assert.Equal(t, "New Name", product.Name)
	assert.Equal(t, 75.0, product.Price)
	assert.Equal(t, []string{"M", "L"}, product.Sizes)
}

func TestAdminDeleteProductLeavesOrders(t *testing.T) {
	mem, h := newApp(t)
	admin := mem.SeedProfile(models.Profile{Email: "boss@example.com", Role: models.RoleAdmin})
	user := mem.SeedProfile(models.Profile{Email: "jo@example.com"})
	mem.SeedProduct(models.Product{Name: "Midnight Classic", Price: 59})

	rec := postForm(h, "/checkout?product=1&size=M", tokenFor(t, user), shipping)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	req := httptest.NewRequest(http.MethodDelete, "/admin/products/1", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, admin))
	rec = do(h, req)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 1, mem.OrderCount())

	// The buyer's dashboard still renders the orphaned order.
	pp := decodePage(t, get(h, "/dashboard", tokenFor(t, user)))
	var orders []models.UserOrder
	require.NoError(t, json.Unmarshal(pp.Data, &orders))
	require.Len(t, orders, 1)
	assert.Empty(t, orders[0].ProductName)

	// And the admin overview keeps the customer columns.
	pp = decodePage(t, get(h, "/admin/orders", tokenFor(t, admin)))
	var adminOrders []models.AdminOrder
	require.NoError(t, json.Unmarshal(pp.Data, &adminOrders))
	require.Len(t, adminOrders, 1)
	assert.Equal(t, "jo@example.com", adminOrders[0].CustomerEmail)
}

// ── auth endpoints ───────────────────────────────────────────────────────────

func TestRegisterValidation(t *testing.T) {
	_, h := newApp(t)

	rec := postJSON(h, "/auth/register", "", `{"email":"nope","password":"short","full_name":""}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decode(t, rec)
	assert.Contains(t, env.Errors, "email")
	assert.Contains(t, env.Errors, "password")
	assert.Contains(t, env.Errors, "full_name")
}

func TestLoginWrongPassword(t *testing.T) {
	_, h := newApp(t)

	rec := postJSON(h, "/auth/register", "", `{"email":"jo@example.com","password":"supersecret","full_name":"Jo"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(h, "/auth/login", "", `{"email":"jo@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ── end to end ───────────────────────────────────────────────────────────────

func TestEndToEndOrderFlow(t *testing.T) {
	mem, h := newApp(t)
	mem.SeedProduct(models.Product{Name: "Midnight Classic", Price: 59, Sizes: []string{"S", "M", "L"}})

	// Register and capture the token.
	rec := postJSON(h, "/auth/register", "", `{"email":"jo@example.com","password":"supersecret","full_name":"Jo Doe"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var registered struct {
		Token string `json:"token"`
	}
	env := decode(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &registered))
	token := registered.Token
	require.NotEmpty(t, token)

	// Browse the shop and the product page.
	require.Equal(t, http.StatusOK, get(h, "/shop", token).Code)
	require.Equal(t, http.StatusOK, get(h, "/shop/1", token).Code)

	// Order Now with size L lands on checkout carrying the intent.
	rec = postForm(h, "/shop/1/order", token, url.Values{"size": {"L"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	checkoutURL := rec.Header().Get("Location")
	assert.Equal(t, "/checkout?product=1&size=L", checkoutURL)

	require.Equal(t, http.StatusOK, get(h, checkoutURL, token).Code)

	// Confirm with a full shipping form.
	rec = postForm(h, checkoutURL, token, shipping)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	// The dashboard shows the order joined with the product.
	pp := decodePage(t, get(h, "/dashboard", token))
	var orders []models.UserOrder
	require.NoError(t, json.Unmarshal(pp.Data, &orders))
	require.Len(t, orders, 1)

	order := orders[0]
	assert.Equal(t, 1, order.Quantity)
	assert.Equal(t, "L", order.Size)
	assert.Equal(t, "Midnight Classic", order.ProductName)
	assert.Equal(t, 59.0, order.ProductPrice)
	assert.Equal(t, "12 Fleece Lane", order.Address.Address)
	assert.Equal(t, "97201", order.Address.PostalCode)
}
