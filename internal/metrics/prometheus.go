package metrics

import (
	"net/http"
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type PrometheusRecorder struct {
	renderDuration *prom.HistogramVec
	renders        *prom.CounterVec
	assetRequests  *prom.CounterVec
	exports        *prom.CounterVec
}

func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		renderDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "lumastay",
			Name:      "page_render_duration_seconds",
			Help:      "Duration of full page renders (shell and sections)",
			Buckets:   prom.DefBuckets,
		}, []string{"result"}),
		renders: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "lumastay",
			Name:      "page_renders_total",
			Help:      "Page renders by result",
		}, []string{"result"}),
		assetRequests: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "lumastay",
			Name:      "asset_requests_total",
			Help:      "Static asset responses by HTTP status code",
		}, []string{"code"}),
		exports: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "lumastay",
			Name:      "exports_total",
			Help:      "Static site exports by result",
		}, []string{"result"}),
	}
	reg.MustRegister(pr.renderDuration, pr.renders, pr.assetRequests, pr.exports)
	return pr
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "failed"
}

func (p *PrometheusRecorder) ObserveRender(d time.Duration, ok bool) {
	if p == nil {
		return
	}
	p.renderDuration.WithLabelValues(result(ok)).Observe(d.Seconds())
	p.renders.WithLabelValues(result(ok)).Inc()
}

func (p *PrometheusRecorder) IncAssetRequest(status int) {
	if p == nil {
		return
	}
	p.assetRequests.WithLabelValues(strconv.Itoa(status)).Inc()
}

func (p *PrometheusRecorder) IncExport(ok bool) {
	if p == nil {
		return
	}
	p.exports.WithLabelValues(result(ok)).Inc()
}

// HTTPHandler serves the metrics gathered by reg.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
