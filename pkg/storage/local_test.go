package storage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDisk(t *testing.T) *localDisk {
	t.Helper()
	return &localDisk{root: t.TempDir(), baseURL: "http://localhost:8080/files"}
}

func TestLocalDiskPutGet(t *testing.T) {
	d := testDisk(t)

	require.NoError(t, d.Put("product-images/a1b2.png", []byte("png-bytes")))
	assert.True(t, d.Exists("product-images/a1b2.png"))

	content, err := d.Get("product-images/a1b2.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), content)
}

func TestLocalDiskPutStream(t *testing.T) {
	d := testDisk(t)

	require.NoError(t, d.PutStream("img.jpg", bytes.NewReader([]byte("jpeg"))))

	content, err := d.Get("img.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg"), content)
}

func TestLocalDiskDelete(t *testing.T) {
	d := testDisk(t)

	require.NoError(t, d.Put("x.png", []byte("x")))
	require.NoError(t, d.Delete("x.png"))
	assert.False(t, d.Exists("x.png"))

	// Deleting a missing file is not an error.
	assert.NoError(t, d.Delete("x.png"))
}

func TestLocalDiskURL(t *testing.T) {
	d := testDisk(t)

	assert.Equal(t, "http://localhost:8080/files/product-images/a.png", d.URL("product-images/a.png"))
}
