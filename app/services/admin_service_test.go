package services

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devansh742005/under-the-hoodies/app/models"
	"github.com/devansh742005/under-the-hoodies/app/store"
	"github.com/devansh742005/under-the-hoodies/pkg/storage"
)

// fakeDisk records writes in memory so upload tests never touch the
// filesystem.
type fakeDisk struct {
	files map[string][]byte
}

func newFakeDisk() *fakeDisk { return &fakeDisk{files: map[string][]byte{}} }

func (d *fakeDisk) Put(path string, content []byte) error {
	d.files[path] = content
	return nil
}

func (d *fakeDisk) PutStream(path string, r io.Reader) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	d.files[path] = content
	return nil
}

func (d *fakeDisk) Get(path string) ([]byte, error) { return d.files[path], nil }
func (d *fakeDisk) Exists(path string) bool         { _, ok := d.files[path]; return ok }
func (d *fakeDisk) Delete(path string) error        { delete(d.files, path); return nil }
func (d *fakeDisk) URL(path string) string          { return "https://cdn.test/" + path }

func useFakeDisk(t *testing.T) *fakeDisk {
	t.Helper()
	storage.Connect()
	d := newFakeDisk()
	storage.RegisterDisk("local", d)
	return d
}

func TestCreateProduct(t *testing.T) {
	mem := store.NewMemory()
	svc := NewAdminService(mem)

	product, err := svc.CreateProduct(context.Background(), ProductInput{
		Name:    "Midnight Classic",
		Price:   59,
		Sizes:   models.ParseSizes("S, M ,L"),
		InStock: true,
	})
	require.NoError(t, err)

	assert.NotZero(t, product.ID)
	assert.Equal(t, []string{"S", "M", "L"}, product.Sizes)
}

func TestUpdateProductUnknownID(t *testing.T) {
	svc := NewAdminService(store.NewMemory())

	_, err := svc.UpdateProduct(context.Background(), 99, ProductInput{Name: "X"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteProductLeavesOrders(t *testing.T) {
	mem := store.NewMemory()
	buyer := mem.SeedProfile(models.Profile{Email: "jo@example.com", FullName: "Jo"})
	product := mem.SeedProduct(models.Product{Name: "Midnight Classic", Price: 59})

	_, err := NewCheckoutService(mem).Place(context.Background(), buyer.ID, product.ID, "M", testAddress)
	require.NoError(t, err)

	svc := NewAdminService(mem)
	require.NoError(t, svc.DeleteProduct(context.Background(), product.ID))

	assert.Equal(t, 1, mem.OrderCount())

	orders, err := svc.Orders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "jo@example.com", orders[0].CustomerEmail)
	assert.Empty(t, orders[0].ProductName)
}

func TestStoreImageRandomizesNameKeepsExtension(t *testing.T) {
	disk := useFakeDisk(t)
	svc := NewAdminService(store.NewMemory())

	url, err := svc.StoreImage("Hoodie Photo.PNG", bytes.NewReader([]byte("png-bytes")))
	require.NoError(t, err)

	require.Len(t, disk.files, 1)
	for path := range disk.files {
		assert.True(t, strings.HasPrefix(path, "product-images/"))
		assert.True(t, strings.HasSuffix(path, ".png"), "extension lowercased and kept: %s", path)
		assert.NotContains(t, path, "Hoodie", "original name must not leak")
		assert.Equal(t, "https://cdn.test/"+path, url)
	}

	// A second upload of the same file gets a different name.
	url2, err := svc.StoreImage("Hoodie Photo.PNG", bytes.NewReader([]byte("png-bytes")))
	require.NoError(t, err)
	assert.NotEqual(t, url, url2)
}
