package checks

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"loadscreen-export/core/archive"
	"loadscreen-export/core/reconcile"
	"loadscreen-export/core/storage"
	"loadscreen-export/core/storage/mocks"
	"loadscreen-export/feature/loadingscreen/records"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type fakeSource map[string][]archive.Entry

func (f fakeSource) Entries(ext string) []archive.Entry { return f[ext] }

func (f fakeSource) ReadEntry(context.Context, archive.Entry) ([]byte, error) { return nil, nil }

var archiveCfg = archive.Config{
	ItemsEntry:     "scripts/items/items_game.txt",
	AssetExtension: "vtex_c",
	AssetDir:       "panorama/images/loadingscreens",
}

func TestCheckArchive(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		src := fakeSource{
			"txt":    {{Directory: "scripts/items", FileName: "items_game", Extension: "txt"}},
			"vtex_c": {{Directory: "panorama/images/loadingscreens/axe", FileName: "axe_png", Extension: "vtex_c"}},
		}
		report, err := CheckArchive(src, archiveCfg)
		require.NoError(t, err)
		assert.Equal(t, "ok", report.Status)
		assert.True(t, report.ItemsFound)
		assert.Equal(t, 1, report.Assets)
		assert.Empty(t, report.Errors)
	})

	t.Run("Empty", func(t *testing.T) {
		report, err := CheckArchive(fakeSource{}, archiveCfg)
		require.NoError(t, err)
		assert.Equal(t, "error", report.Status)
		assert.False(t, report.ItemsFound)
		assert.Len(t, report.Errors, 2)
	})

	t.Run("Nil", func(t *testing.T) {
		_, err := CheckArchive(nil, archiveCfg)
		assert.Error(t, err)
	})
}

func TestCheckOutput(t *testing.T) {
	root := t.TempDir()
	present := filepath.Join(root, "present")
	absent := filepath.Join(root, "out")
	require.NoError(t, os.Mkdir(present, 0o755))

	missing, err := CheckOutput([]string{present, absent})
	require.NoError(t, err)
	assert.Equal(t, []string{absent}, missing)

	require.NoError(t, FixOutput(zap.NewNop(), missing))
	missing, err = CheckOutput([]string{present, absent})
	require.NoError(t, err)
	assert.Empty(t, missing)

	file := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = CheckOutput([]string{file})
	assert.ErrorContains(t, err, "not a directory")
}

func TestCheckRecords(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Axe.jpeg"), []byte("x"), 0o644))

	recs := []reconcile.Record{
		{ID: 1, Name: "Axe", ImageLink: "Axe.jpeg", Crc32: 1, Size: 2, FullPath: "a/axe.vtex_c"},
		{ID: 2, Name: "Lina", ImageLink: "Lina.jpeg", Crc32: 3, Size: 4, FullPath: "a/lina.vtex_c"},
		{ID: 1, Name: "Axe", ImageLink: "Axe.jpeg", Crc32: 1, Size: 2, FullPath: "a/axe.vtex_c"},
	}

	report := CheckRecords(recs, dir)
	assert.Equal(t, "error", report.Status)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, []string{"Lina.jpeg"}, report.MissingImages)
	assert.Equal(t, []string{"a/axe.vtex_c"}, report.Duplicates)

	assert.Equal(t, "ok", CheckRecords(recs[:1], dir).Status)
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestCheckSchema(t *testing.T) {
	t.Run("NilDB", func(t *testing.T) {
		report, err := CheckSchema(nil, records.Row{})
		assert.Error(t, err)
		assert.Nil(t, report)
	})

	t.Run("MissingColumns", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
		for _, col := range []string{"seq", "item_id", "name", "image_link", "crc32", "size"} {
			rows.AddRow(col, "varchar(255)", "NO", "", nil, "")
		}
		sqlMock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `loading_screen_records`")).WillReturnRows(rows)

		report, err := CheckSchema(db, records.Row{})
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Equal(t, "mysql", report.Driver)
		tbl := report.Tables[records.TableName]
		assert.Equal(t, "error", tbl.Status)
		assert.Equal(t, []string{"full_path", "created_at"}, tbl.MissingColumns)
	})

	t.Run("NotAStruct", func(t *testing.T) {
		db, _ := setupMockDB(t)
		_, err := CheckSchema(db, "row")
		assert.Error(t, err)
	})
}

func TestCheckPublished(t *testing.T) {
	ctx := context.Background()
	cfg := storage.Config{Bucket: "b", Prefix: "dota"}

	client := new(mocks.Client)
	client.On("BucketExists", ctx, "b").Return(true, nil)
	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Key: "dota/out/Axe.jpeg", Size: 10}
	close(ch)
	client.On("ListObjects", ctx, "b", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	missing, err := CheckPublished(ctx, client, cfg, []string{"out/Lina.jpeg", "out/Axe.jpeg", "loadingscreens-db.json"})
	require.NoError(t, err)
	assert.Equal(t, []string{"loadingscreens-db.json", "out/Lina.jpeg"}, missing)
}

func TestCheckPublished_NoBucket(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	client.On("BucketExists", ctx, "b").Return(false, nil)

	_, err := CheckPublished(ctx, client, storage.Config{Bucket: "b"}, nil)
	assert.ErrorContains(t, err, "does not exist")
}

func TestFixPublished(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "out"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "out", "Lina.jpeg"), []byte("img"), 0o644))

	client := new(mocks.Client)
	client.On("PutObject", ctx, "b", "out/Lina.jpeg", mock.Anything, int64(3), mock.Anything).Return(minio.UploadInfo{}, nil)

	pub := records.NewPublisher(client, storage.Config{Bucket: "b"})
	require.NoError(t, FixPublished(ctx, pub, dir, zap.NewNop(), []string{"out/Lina.jpeg"}))
	client.AssertExpectations(t)
}
