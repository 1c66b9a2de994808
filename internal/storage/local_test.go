package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_PutGetList(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	key := UploadKey("products", "run-1", "catalog.csv", at)
	assert.Equal(t, "uploads/products/2026-03-01/run-1-catalog.csv", key)

	content := []byte("name,price\nFern,12\n")
	require.NoError(t, s.Put(ctx, key, content, &Metadata{OriginalName: "catalog.csv", Entity: "products", RunID: "run-1"}))
	require.NoError(t, s.Put(ctx, UploadKey("blog_posts", "run-2", "export.xml", at), []byte("<rss/>"), nil))

	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	files, err := s.List(ctx, "uploads/products/")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, key, files[0].Key)
	assert.Equal(t, int64(len(content)), files[0].Size)
	require.NotNil(t, files[0].Metadata)
	assert.Equal(t, ComputeChecksum(content), files[0].Metadata.Checksum)

	all, err := s.List(ctx, "uploads/")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, s.Delete(ctx, key))
	_, err = s.Get(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, s.Delete(ctx, key))
}

func TestLocalStorage_KeysStayInsideBase(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	s, err := NewLocalStorage(base)
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "../../escape.txt", []byte("x"), nil))
	files, err := s.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "escape.txt", files[0].Key)
}

func TestUploadKey_StripsDirectories(t *testing.T) {
	at := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "uploads/products/2026-01-02/r-data.csv", UploadKey("products", "r", `C:\Users\admin\data.csv`, at))
	assert.Equal(t, "uploads/products/2026-01-02/r-upload", UploadKey("products", "r", "", at))
}
