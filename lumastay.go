// Package lumastay serves and exports the LumaStay Concierge microsite.
package lumastay

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/3-lines-studio/lumastay/internal/adapters/fs"
	lhttp "github.com/3-lines-studio/lumastay/internal/adapters/http"
	"github.com/3-lines-studio/lumastay/internal/assets"
	"github.com/3-lines-studio/lumastay/internal/core"
	"github.com/3-lines-studio/lumastay/internal/metrics"
	"github.com/3-lines-studio/lumastay/internal/sections"
	"github.com/3-lines-studio/lumastay/internal/usecase"
)

type Clock = core.Clock

type FixedClock = core.FixedClock

type Summary = sections.Summary

type Option func(*options)

type options struct {
	clock       Clock
	dev         bool
	assetsDir   string
	logger      *slog.Logger
	metricsPath string
}

// WithClock fixes the time the footer year is read from.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithDev disables caching, adds the live-reload endpoint and script, and
// shows error details in the browser.
func WithDev(dev bool) Option {
	return func(o *options) { o.dev = dev }
}

// WithAssetsDir serves assets from dir instead of the embedded tree. In dev
// mode the directory is watched and browsers reload on change.
func WithAssetsDir(dir string) Option {
	return func(o *options) { o.assetsDir = dir }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics exposes Prometheus metrics at path. An empty path disables them.
func WithMetrics(path string) Option {
	return func(o *options) { o.metricsPath = path }
}

type App struct {
	opts     options
	resolver *assets.Resolver
	pages    *usecase.PageService
	exports  *usecase.ExportService
	registry *prometheus.Registry
	recorder metrics.Recorder
	hub      *lhttp.ReloadHub

	stopOnce sync.Once
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func New(opts ...Option) (*App, error) {
	o := options{clock: core.SystemClock{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.clock == nil {
		o.clock = core.SystemClock{}
	}

	fsys, err := assets.Open(o.assetsDir)
	if err != nil {
		return nil, fmt.Errorf("open assets: %w", err)
	}
	resolver, err := assets.NewResolver(fsys)
	if err != nil {
		return nil, err
	}

	app := &App{opts: o, resolver: resolver, recorder: metrics.NoopRecorder{}}
	if o.metricsPath != "" {
		app.registry = prometheus.NewRegistry()
		app.recorder = metrics.NewPrometheusRecorder(app.registry)
	}

	app.pages = usecase.NewPageService(resolver, o.clock, app.recorder)
	app.exports = usecase.NewExportService(app.pages, fs.NewOSFileSystem(), app.recorder)

	if o.dev {
		app.hub = lhttp.NewReloadHub()
		if o.assetsDir != "" {
			if err := app.watchAssets(); err != nil {
				return nil, err
			}
		}
	}

	return app, nil
}

func (a *App) watchAssets() error {
	logger := a.opts.logger
	w, err := fs.NewWatcher(a.opts.assetsDir, func(paths []string) {
		if err := a.resolver.Reload(); err != nil {
			logger.Warn("Asset reload failed", "error", err)
			return
		}
		logger.Info("Assets changed", slog.Int("files", len(paths)))
		a.hub.Notify()
	}, logger)
	if err != nil {
		return fmt.Errorf("watch assets: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := w.Run(ctx); err != nil {
			logger.Error("Asset watcher stopped", "error", err)
		}
	}()
	return nil
}

// Render writes the complete document, without the live-reload script.
func (a *App) Render(w io.Writer) error {
	return a.pages.RenderDocument(w, false)
}

// Verify renders the page and checks every in-page link has a target.
func (a *App) Verify() error {
	var buf bytes.Buffer
	if err := a.Render(&buf); err != nil {
		return err
	}
	return usecase.VerifyAnchors(buf.Bytes())
}

// Summaries lists the page sections in render order with their record counts.
func (a *App) Summaries() []Summary {
	return sections.Summaries()
}

func (a *App) routerConfig() lhttp.RouterConfig {
	cfg := lhttp.RouterConfig{
		Page:   lhttp.NewPageHandler(a.pages, a.opts.dev, a.opts.logger),
		Assets: lhttp.NewAssetHandler(a.resolver, a.opts.dev, a.recorder),
		Reload: a.hub,
		IsDev:  a.opts.dev,
		Logger: a.opts.logger,
	}
	if a.registry != nil {
		cfg.Metrics = metrics.HTTPHandler(a.registry)
		cfg.MetricsPath = a.opts.metricsPath
	}
	return cfg
}

// Handler returns a router serving the page, assets, health check and,
// when enabled, metrics and live reload.
func (a *App) Handler() http.Handler {
	return lhttp.NewRouter(a.routerConfig())
}

// Wrap adds the site routes to r, which keeps its own middleware.
func (a *App) Wrap(r chi.Router) http.Handler {
	if r == nil {
		panic("lumastay: nil router passed to Wrap; use app.Handler()")
	}
	lhttp.Mount(r, a.routerConfig())
	return r
}

// Stop ends the asset watcher. It is safe to call more than once.
func (a *App) Stop() error {
	a.stopOnce.Do(func() {
		if a.cancel != nil {
			a.cancel()
		}
		a.wg.Wait()
	})
	return nil
}
