package http

import (
	"bytes"
	"html"
	"log/slog"
	"net/http"

	"github.com/3-lines-studio/lumastay/internal/core"
	"github.com/3-lines-studio/lumastay/internal/usecase"
)

type PageHandler struct {
	service *usecase.PageService
	isDev   bool
	logger  *slog.Logger
}

func NewPageHandler(service *usecase.PageService, isDev bool, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageHandler{
		service: service,
		isDev:   isDev,
		logger:  logger,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	output := h.service.ServePage(req.Context(), usecase.ServePageInput{
		RequestPath: req.URL.Path,
		IfNoneMatch: req.Header.Get("If-None-Match"),
		LiveReload:  h.isDev,
	})

	if output.Error != nil {
		h.logger.Error("Page render failed", "path", req.URL.Path, "error", output.Error)
		serveError(w, output.Error, h.isDev)
		return
	}

	switch output.Action {
	case usecase.ActionNotFound:
		http.NotFound(w, req)

	case usecase.ActionNotModified:
		w.Header().Set("ETag", output.ETag)
		w.WriteHeader(http.StatusNotModified)

	case usecase.ActionRender:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("ETag", output.ETag)
		if h.isDev {
			w.Header().Set("Cache-Control", "no-store")
		} else {
			w.Header().Set("Cache-Control", "no-cache")
		}
		w.WriteHeader(http.StatusOK)
		if req.Method != http.MethodHead {
			_, _ = w.Write(output.HTML)
		}
	}
}

func serveError(w http.ResponseWriter, err error, isDev bool) {
	data := core.ErrorData{
		Message: err.Error(),
		IsDev:   isDev,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	var buf bytes.Buffer
	if err := core.ErrorTemplate.Execute(&buf, data); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buf.Bytes())
}
