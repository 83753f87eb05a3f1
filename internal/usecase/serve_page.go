package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/3-lines-studio/lumastay/internal/core"
	"github.com/3-lines-studio/lumastay/internal/metrics"
	"github.com/3-lines-studio/lumastay/internal/sections"
)

type PageAction int

const (
	ActionRender PageAction = iota
	ActionNotModified
	ActionNotFound
)

type ServePageInput struct {
	RequestPath string
	IfNoneMatch string
	LiveReload  bool
}

type ServePageOutput struct {
	Action PageAction
	HTML   []byte
	ETag   string
	Error  error
}

type PageService struct {
	assets   Assets
	clock    core.Clock
	metadata core.Metadata
	recorder metrics.Recorder
}

func NewPageService(assets Assets, clock core.Clock, recorder metrics.Recorder) *PageService {
	if clock == nil {
		clock = core.SystemClock{}
	}
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &PageService{
		assets:   assets,
		clock:    clock,
		metadata: core.DefaultMetadata,
		recorder: recorder,
	}
}

// IsPagePath reports whether p addresses the single page.
func IsPagePath(p string) bool {
	switch core.NormalizePath(p) {
	case "/", "/index.html":
		return true
	}
	return false
}

func (s *PageService) ServePage(ctx context.Context, input ServePageInput) ServePageOutput {
	if !IsPagePath(input.RequestPath) {
		return ServePageOutput{Action: ActionNotFound}
	}
	if err := ctx.Err(); err != nil {
		return ServePageOutput{Action: ActionRender, Error: err}
	}

	var buf bytes.Buffer
	if err := s.RenderDocument(&buf, input.LiveReload); err != nil {
		return ServePageOutput{Action: ActionRender, Error: err}
	}

	html := buf.Bytes()
	etag := core.ETag(html)
	if etagMatches(input.IfNoneMatch, etag) {
		return ServePageOutput{Action: ActionNotModified, ETag: etag}
	}
	return ServePageOutput{Action: ActionRender, HTML: html, ETag: etag}
}

// RenderDocument writes the full document: shell, composed page, and the
// reload script when liveReload is set.
func (s *PageService) RenderDocument(w io.Writer, liveReload bool) error {
	start := time.Now()
	err := s.renderDocument(w, liveReload)
	s.recorder.ObserveRender(time.Since(start), err == nil)
	return err
}

func (s *PageService) renderDocument(w io.Writer, liveReload bool) error {
	var body bytes.Buffer
	page := sections.Page{Images: s.assets, Clock: s.clock}
	if err := page.Render(&body); err != nil {
		return err
	}

	err := core.RenderDocument(w, core.ShellData{
		Metadata:      s.metadata,
		StylesheetURL: s.assets.StylesheetURL(),
		Body:          template.HTML(body.String()),
		LiveReload:    liveReload,
	})
	if err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return nil
}

// etagMatches reports whether an If-None-Match header value names etag,
// using the weak comparison GET requires. The header may be "*" or a
// comma-separated list of strong or W/ prefixed entity tags.
func etagMatches(header, etag string) bool {
	want := strings.TrimPrefix(etag, "W/")
	for rest := header; ; {
		rest = strings.TrimLeft(rest, " \t,")
		if rest == "" {
			return false
		}
		if rest[0] == '*' {
			return true
		}
		rest = strings.TrimPrefix(rest, "W/")
		if rest == "" || rest[0] != '"' {
			return false
		}
		end := strings.IndexByte(rest[1:], '"')
		if end < 0 {
			return false
		}
		if rest[:end+2] == want {
			return true
		}
		rest = rest[end+2:]
	}
}
