package http

import (
	"bytes"
	"errors"
	iofs "io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/3-lines-studio/lumastay/internal/core"
	"github.com/3-lines-studio/lumastay/internal/metrics"
)

const immutableCache = "public, max-age=31536000, immutable"

type AssetSource interface {
	FS() iofs.FS
}

// AssetHandler serves the asset tree under core.AssetPrefix. Requests that
// carry a fingerprint (?v=) are cached for a year; in dev nothing is cached.
type AssetHandler struct {
	source   AssetSource
	isDev    bool
	recorder metrics.Recorder
}

func NewAssetHandler(source AssetSource, isDev bool, recorder metrics.Recorder) http.Handler {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &AssetHandler{
		source:   source,
		isDev:    isDev,
		recorder: recorder,
	}
}

func (h *AssetHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	status := h.serve(w, req)
	h.recorder.IncAssetRequest(status)
}

func (h *AssetHandler) serve(w http.ResponseWriter, req *http.Request) int {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return http.StatusMethodNotAllowed
	}

	name := strings.TrimPrefix(req.URL.Path, core.AssetPrefix)
	if err := core.ValidateAssetName(name); err != nil {
		http.NotFound(w, req)
		return http.StatusNotFound
	}

	fsys := h.source.FS()
	info, err := iofs.Stat(fsys, name)
	if err != nil || info.IsDir() {
		if err == nil || errors.Is(err, iofs.ErrNotExist) || errors.Is(err, iofs.ErrInvalid) {
			http.NotFound(w, req)
			return http.StatusNotFound
		}
		serveError(w, err, h.isDev)
		return http.StatusInternalServerError
	}

	data, err := iofs.ReadFile(fsys, name)
	if err != nil {
		serveError(w, err, h.isDev)
		return http.StatusInternalServerError
	}

	switch {
	case h.isDev:
		w.Header().Set("Cache-Control", "no-store")
	case req.URL.Query().Get("v") != "":
		w.Header().Set("Cache-Control", immutableCache)
	default:
		w.Header().Set("Cache-Control", "public, max-age=300")
	}
	w.Header().Set("Content-Type", core.GetContentType(name))
	w.Header().Set("ETag", core.ETag(data))

	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	http.ServeContent(rec, req, name, time.Time{}, bytes.NewReader(data))
	return rec.status
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
