package lumastay

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testClock = FixedClock(time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC))

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	opts = append([]Option{WithClock(testClock), WithLogger(quietLogger())}, opts...)
	app, err := New(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop() })
	return app
}

func TestRenderEmbeddedSite(t *testing.T) {
	app := newApp(t)

	var buf bytes.Buffer
	require.NoError(t, app.Render(&buf))

	html := buf.String()
	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, "Preview the Employee Journey")
	assert.Contains(t, html, "© 2026 LumaStay Hospitality. All rights reserved.")
	assert.Contains(t, html, "/assets/styles/site.css?v=")
	assert.NotContains(t, html, "/__lumastay/reload")
}

func TestVerify(t *testing.T) {
	assert.NoError(t, newApp(t).Verify())
}

func TestSummariesFollowPageOrder(t *testing.T) {
	var names []string
	for _, s := range newApp(t).Summaries() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"hero", "journey", "capabilities", "impact", "testimonial", "call-to-action", "footer"}, names)
}

func TestHandlerServesSite(t *testing.T) {
	app := newApp(t, WithMetrics("/metrics"))
	h := app.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/images/ai-companion.svg", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `lumastay_page_renders_total{result="success"} 1`)
	assert.Contains(t, body, `lumastay_asset_requests_total{code="200"} 1`)
}

func TestHandlerWithoutMetrics(t *testing.T) {
	h := newApp(t).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWrapKeepsExistingRoutes(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})
	h := newApp(t).Wrap(r)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	assert.Equal(t, "pong", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="contact"`)
}

func TestWrapNilRouterPanics(t *testing.T) {
	app := newApp(t)
	assert.Panics(t, func() { app.Wrap(nil) })
}

func TestExport(t *testing.T) {
	app := newApp(t)
	dir := filepath.Join(t.TempDir(), "dist")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	stale := filepath.Join(dir, "stale.html")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	files, err := app.Export(context.Background(), dir, true)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"index.html",
		"assets/images/ai-companion.svg",
		"assets/images/concierge-avatar.svg",
		"assets/styles/site.css",
	}, files)

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "clean export left %s behind", stale)

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	var rendered bytes.Buffer
	require.NoError(t, app.Render(&rendered))
	assert.Equal(t, rendered.String(), string(index))
}

func TestExportAssetsDirInsideOutput(t *testing.T) {
	out := t.TempDir()
	src := filepath.Join(out, "src")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "styles"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "styles", "site.css"), []byte("body{margin:0}"), 0o644))
	app := newApp(t, WithAssetsDir(src))

	files, err := app.Export(context.Background(), out, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"index.html", "assets/styles/site.css"}, files)

	css, err := os.ReadFile(filepath.Join(out, "assets", "styles", "site.css"))
	require.NoError(t, err)
	assert.Equal(t, "body{margin:0}", string(css))
	_, err = os.Stat(filepath.Join(out, "index.html"))
	assert.NoError(t, err)
}

func TestDefaultClockUsesCurrentYear(t *testing.T) {
	app, err := New(WithLogger(quietLogger()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop() })

	before := time.Now().Year()
	var buf bytes.Buffer
	require.NoError(t, app.Render(&buf))
	after := time.Now().Year()

	page := buf.String()
	current := strings.Contains(page, "© "+strconv.Itoa(before)+" LumaStay Hospitality") ||
		strings.Contains(page, "© "+strconv.Itoa(after)+" LumaStay Hospitality")
	assert.True(t, current, "footer does not carry the current year %d", before)
}

func TestNewRejectsMissingAssetsDir(t *testing.T) {
	_, err := New(WithAssetsDir(filepath.Join(t.TempDir(), "missing")))
	assert.Error(t, err)
}

func TestNewRequiresStylesheet(t *testing.T) {
	_, err := New(WithAssetsDir(t.TempDir()))
	assert.ErrorContains(t, err, "styles/site.css")
}

func writeAssets(t *testing.T, css string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "styles"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "styles", "site.css"), []byte(css), 0o644))
	return dir
}

func TestDevReloadsChangedAssets(t *testing.T) {
	dir := writeAssets(t, "body{color:red}")
	app := newApp(t, WithDev(true), WithAssetsDir(dir))

	before := app.resolver.StylesheetURL()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "styles", "site.css"), []byte("body{color:blue}"), 0o644))

	require.Eventually(t, func() bool {
		return app.resolver.StylesheetURL() != before
	}, 3*time.Second, 20*time.Millisecond)

	var buf bytes.Buffer
	require.NoError(t, app.Render(&buf))
	assert.Contains(t, buf.String(), app.resolver.StylesheetURL())
}

func TestDevHandlerServesReloadScript(t *testing.T) {
	app := newApp(t, WithDev(true))

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/__lumastay/reload")
}

func TestStopIsIdempotent(t *testing.T) {
	app := newApp(t, WithDev(true), WithAssetsDir(writeAssets(t, "body{}")))
	assert.NoError(t, app.Stop())
	assert.NoError(t, app.Stop())
}
