package loadingscreen

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"loadscreen-export/core/archive"
	"loadscreen-export/core/reconcile"
	"loadscreen-export/feature/loadingscreen/export"
	"loadscreen-export/feature/loadingscreen/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testItemsGame = `"items_game"
{
	"items"
	{
		"default"
		{
			"prefab"	"default"
		}
		"5001"
		{
			"name"	"#DOTA_Item_Axe_Loading_Screen"
			"prefab"	"loading_screen"
			"asset"	"console/loadingscreens/axe"
		}
		"5002"
		{
			"name"	"#DOTA_Item_The_Ghost_Ship_That_Sails_Forever_Loading_Screen"
			"prefab"	"loading_screen"
			"asset"	"loadingscreens/ghost"
		}
		"5003"
		{
			"name"	"#DOTA_Item_Lina_Loading_Screen_Style2"
			"prefab"	"loading_screen"
			"visuals"
			{
				"asset"	"loadingscreens/lina"
			}
		}
		"6000"
		{
			"name"	"#DOTA_Item_Blink"
			"prefab"	"wearable"
		}
	}
}
`

type memPackage struct {
	entries map[string][]archive.Entry
	data    map[string][]byte
	closed  int
}

func (m *memPackage) Entries(ext string) []archive.Entry { return m.entries[ext] }

func (m *memPackage) ReadEntry(_ context.Context, e archive.Entry) ([]byte, error) {
	data, ok := m.data[e.FullPath()]
	if !ok {
		return nil, archive.ErrEntryNotFound
	}
	return data, nil
}

func (m *memPackage) Close() error {
	m.closed++
	return nil
}

func pngData(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 4))))
	return buf.Bytes()
}

func newPackage(t *testing.T) *memPackage {
	axe := archive.Entry{Directory: "panorama/images/loadingscreens/axe", FileName: "axe_png", Extension: "vtex_c", CRC32: 111, Length: 50}
	lina := archive.Entry{Directory: "panorama/images/loadingscreens/lina", FileName: "lina_png", Extension: "vtex_c", CRC32: 222, Length: 60}
	hero := archive.Entry{Directory: "panorama/images/heroes", FileName: "axe_png", Extension: "vtex_c", CRC32: 333, Length: 70}
	items := archive.Entry{Directory: "scripts/items", FileName: "items_game", Extension: "txt"}
	return &memPackage{
		entries: map[string][]archive.Entry{
			"vtex_c": {axe, lina, hero},
			"txt":    {items},
		},
		data: map[string][]byte{
			axe.FullPath():   pngData(t),
			lina.FullPath():  []byte("compiled texture"),
			items.FullPath(): []byte(testItemsGame),
		},
	}
}

func testOptions(t *testing.T, pkg *memPackage) (Options, string) {
	out := t.TempDir()
	return Options{
		Open: func() (Package, error) { return pkg, nil },
		Archive: archive.Config{
			ItemsEntry:     "scripts/items/items_game.txt",
			AssetExtension: "vtex_c",
			AssetDir:       "panorama/images/loadingscreens",
			DirPrefix:      "panorama/images/",
		},
		Export: export.Config{
			OutDir: out, ImageDir: "out", Width: 32, Height: 18,
			Format: "jpeg", Quality: 80, Concurrency: 2, TieBreak: "shortest",
		},
		Records: records.Config{Driver: "json", DBFile: "loadingscreens-db.json", BasicFile: "loadingscreens.json"},
		Store:   records.NewFileStore(filepath.Join(out, "loadingscreens-db.json")),
	}, out
}

func TestService_Run(t *testing.T) {
	pkg := newPackage(t)
	opts, out := testOptions(t, pkg)
	core, logs := observer.New(zapcore.DebugLevel)
	opts.Logger = zap.New(core)

	svc, err := NewService(opts)
	require.NoError(t, err)
	ctx := context.Background()

	report, err := svc.Run(ctx, RunOptions{})
	assert.ErrorIs(t, err, ErrPartialExport)
	require.NotNil(t, report)

	assert.Equal(t, reconcile.Summary{TotalItems: 3, Export: 2, NotFound: 1}, report.Summary)
	require.Len(t, report.Exported, 1)
	assert.Equal(t, reconcile.Record{
		ID: 5001, Name: "Axe", ImageLink: "Axe.jpeg", Crc32: 111, Size: 50,
		FullPath: "panorama/images/loadingscreens/axe/axe_png.vtex_c",
	}, report.Exported[0])
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "Lina", report.Failed[0].Name)
	assert.Equal(t, 1, report.Records)
	assert.Equal(t, 1, pkg.closed)

	assert.FileExists(t, filepath.Join(out, "out", "Axe.jpeg"))

	var doc records.Document
	raw, err := os.ReadFile(filepath.Join(out, "loadingscreens.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, []records.BasicInfo{{Name: "Axe", ImageLink: "Axe.jpeg"}}, doc.Info)
	assert.Equal(t, report.RunID, doc.RunID)

	warn := logs.FilterMessage("Loading screen asset not found").All()
	require.Len(t, warn, 1)
	assert.Equal(t, "The Ghost Ship That Sails F...", warn[0].ContextMap()["name"])

	// second run: Axe is skipped, Lina still fails
	report, err = svc.Run(ctx, RunOptions{})
	assert.ErrorIs(t, err, ErrPartialExport)
	assert.Equal(t, 1, report.Summary.Skip)
	assert.Empty(t, report.Exported)

	stored, err := svc.Records(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestService_DryRun(t *testing.T) {
	pkg := newPackage(t)
	opts, out := testOptions(t, pkg)
	svc, err := NewService(opts)
	require.NoError(t, err)

	var planned *reconcile.Plan
	report, err := svc.Run(context.Background(), RunOptions{DryRun: true, OnPlan: func(p *reconcile.Plan) { planned = p }})
	require.NoError(t, err)
	assert.True(t, report.DryRun)
	require.NotNil(t, planned)
	assert.Len(t, planned.Work, 2)

	_, err = os.Stat(filepath.Join(out, "out"))
	assert.True(t, os.IsNotExist(err))
}

func TestService_RunInProgress(t *testing.T) {
	opts, _ := testOptions(t, newPackage(t))
	svc, err := NewService(opts)
	require.NoError(t, err)

	svc.running.Lock()
	defer svc.running.Unlock()

	_, err = svc.Run(context.Background(), RunOptions{})
	assert.ErrorIs(t, err, ErrRunInProgress)
}

func TestService_ItemsAndPlan(t *testing.T) {
	opts, _ := testOptions(t, newPackage(t))
	svc, err := NewService(opts)
	require.NoError(t, err)
	ctx := context.Background()

	raw, err := svc.Items(ctx, true)
	require.NoError(t, err)
	require.Len(t, raw, 3)
	assert.Equal(t, "console/loadingscreens/axe", raw[0].Path)

	normalized, err := svc.Items(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "Axe", normalized[0].Name)
	assert.Equal(t, "Lina", normalized[2].Name)

	plan, err := svc.Plan(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 2, plan.Summary.Export)
	assert.Equal(t, "Axe", plan.Work[0].Item.Name)
}

func TestNewService_Validation(t *testing.T) {
	opts, _ := testOptions(t, newPackage(t))
	opts.Export.TieBreak = "coin-flip"
	_, err := NewService(opts)
	assert.Error(t, err)

	opts, _ = testOptions(t, newPackage(t))
	opts.Store = nil
	_, err = NewService(opts)
	assert.Error(t, err)
}
