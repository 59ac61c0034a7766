package loadingscreen

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"loadscreen-export/core/reconcile"
	"loadscreen-export/feature/loadingscreen/records"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *Service) {
	opts, _ := testOptions(t, newPackage(t))
	svc, err := NewService(opts)
	require.NoError(t, err)

	app := fiber.New()
	require.NoError(t, NewFeature(svc).Load(app))
	return app, svc
}

func decode(t *testing.T, body io.Reader, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(body).Decode(v))
}

func TestHandler_Flow(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/loadingscreens/plan", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var plan reconcile.Plan
	decode(t, resp.Body, &plan)
	assert.Equal(t, 2, plan.Summary.Export)

	resp, err = app.Test(httptest.NewRequest("POST", "/loadingscreens/export", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode, "Lina cannot be decoded")
	var failed struct {
		Error  string  `json:"error"`
		Report *Report `json:"report"`
	}
	decode(t, resp.Body, &failed)
	assert.Contains(t, failed.Error, "1 of 2 images failed")
	require.NotNil(t, failed.Report)
	assert.Len(t, failed.Report.Exported, 1)

	resp, err = app.Test(httptest.NewRequest("GET", "/loadingscreens", nil))
	require.NoError(t, err)
	var doc records.Document
	decode(t, resp.Body, &doc)
	assert.Equal(t, []records.BasicInfo{{Name: "Axe", ImageLink: "Axe.jpeg"}}, doc.Info)

	resp, err = app.Test(httptest.NewRequest("GET", "/loadingscreens/5001", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var recs []reconcile.Record
	decode(t, resp.Body, &recs)
	require.Len(t, recs, 1)
	assert.Equal(t, uint32(111), recs[0].Crc32)

	resp, err = app.Test(httptest.NewRequest("GET", "/images/Axe.jpeg", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/jpeg", resp.Header.Get("Content-Type"))
}

func TestHandler_GetByIDErrors(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/loadingscreens/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/loadingscreens/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandler_ExportConflict(t *testing.T) {
	app, svc := newTestApp(t)
	svc.running.Lock()
	defer svc.running.Unlock()

	resp, err := app.Test(httptest.NewRequest("POST", "/loadingscreens/export", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestHandler_DryExport(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/loadingscreens/export?dry=true", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var report Report
	decode(t, resp.Body, &report)
	assert.True(t, report.DryRun)
	assert.Equal(t, 1, report.Summary.NotFound)
}

func TestFeature(t *testing.T) {
	opts, _ := testOptions(t, newPackage(t))
	svc, err := NewService(opts)
	require.NoError(t, err)

	f := NewFeature(svc)
	assert.Equal(t, "loadingscreen", f.Name())
	assert.True(t, f.IsEnabled())
}
