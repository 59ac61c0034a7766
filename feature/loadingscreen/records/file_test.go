package records

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"loadscreen-export/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []reconcile.Record {
	return []reconcile.Record{
		{ID: 5001, Name: "Axe", ImageLink: "Axe.jpeg", Crc32: 111, Size: 50, FullPath: "panorama/images/loadingscreens/axe/axe_png.vtex_c"},
		{ID: 5003, Name: "Dark Willow", ImageLink: "Dark Willow.jpeg", Crc32: 222, Size: 70, FullPath: "panorama/images/loadingscreens/dw/dw_png.vtex_c"},
	}
}

func TestFileStore_MissingAndBlank(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	got, err := NewFileStore(filepath.Join(dir, "none.json")).Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	blank := filepath.Join(dir, "blank.json")
	require.NoError(t, os.WriteFile(blank, []byte("  \n"), 0o644))
	got, err = NewFileStore(blank).Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStore_RoundTripLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "loadingscreens-db.json")
	s := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleRecords()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  {\n    \"ID\": 5001,\n    \"Name\": \"Axe\",\n    \"ImageLink\": \"Axe.jpeg\",\n    \"Crc32\": 111,")

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestFileStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	assert.ErrorContains(t, err, "decode records")
}

func TestNew(t *testing.T) {
	s, err := New(Config{Driver: DriverJSON, DBFile: "db.json"}, "/out", nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/out", "db.json"), s.Location())

	_, err = New(Config{Driver: "redis"}, "/out", nil)
	assert.ErrorContains(t, err, "unknown records driver")
}
