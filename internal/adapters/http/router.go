package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/3-lines-studio/lumastay/internal/core"
)

const HealthPath = "/healthz"

type RouterConfig struct {
	Page        http.Handler
	Assets      http.Handler
	Reload      *ReloadHub   // dev only
	Metrics     http.Handler // nil disables the endpoint
	MetricsPath string       // defaults to /metrics
	IsDev       bool
	Logger      *slog.Logger
}

// Mount registers the site routes on r.
func Mount(r chi.Router, cfg RouterConfig) {
	r.Get(HealthPath, handleHealth)
	r.Handle(core.AssetPrefix+"*", cfg.Assets)
	if cfg.Reload != nil {
		r.Get(core.ReloadPath, cfg.Reload.ServeHTTP)
	}
	if cfg.Metrics != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, cfg.Metrics)
	}
	r.Handle("/", cfg.Page)
	r.Handle("/index.html", cfg.Page)
}

func NewRouter(cfg RouterConfig) *chi.Mux {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(Logging(logger))
	r.Use(Recover(logger, cfg.IsDev))
	Mount(r, cfg)
	r.NotFound(cfg.Page.ServeHTTP)
	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}
