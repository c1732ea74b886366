// Package telemetry provides OpenTelemetry instrumentation for the
// diff-analyzer service. It exports Prometheus metrics and provides tracing.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "diff-analyzer"

// Metrics holds all diff-analyzer Prometheus metrics.
type Metrics struct {
	// Analysis metrics
	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration prometheus.Histogram

	// Batch metrics
	BatchSize        prometheus.Histogram
	BatchItemsFailed prometheus.Counter

	// Transport metrics
	HTTPRequests *prometheus.CounterVec
}

// Provider wraps telemetry providers.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

// StartSpan starts a trace span for an analysis step.
func (p *Provider) StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return p.Tracer.Start(ctx, name)
}

// RecordAnalysis records one completed analysis.
func (p *Provider) RecordAnalysis(ctx context.Context, duration time.Duration, language string) {
	p.Metrics.AnalysesTotal.WithLabelValues(language).Inc()
	p.Metrics.AnalysisDuration.Observe(duration.Seconds())

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("analysis.language", language),
			attribute.Int64("analysis.duration_ms", duration.Milliseconds()),
		)
	}
}

// RecordBatch records one batch run.
func (p *Provider) RecordBatch(size, failed int) {
	p.Metrics.BatchSize.Observe(float64(size))
	p.Metrics.BatchItemsFailed.Add(float64(failed))
}

// RecordHTTPRequest counts one served request.
func (p *Provider) RecordHTTPRequest(route, status string) {
	p.Metrics.HTTPRequests.WithLabelValues(route, status).Inc()
}

func initMetrics() *Metrics {
	return &Metrics{
		AnalysesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "diff_analyzer_analyses_total",
			Help: "Total diffs analyzed, by detected language",
		}, []string{"language"}),

		AnalysisDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "diff_analyzer_analysis_duration_seconds",
			Help:    "Time to analyze a single diff",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),

		BatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "diff_analyzer_batch_size",
			Help:    "Number of files per batch request",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 200, 500},
		}),

		BatchItemsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "diff_analyzer_batch_items_failed_total",
			Help: "Total batch items that failed analysis",
		}),

		HTTPRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "diff_analyzer_http_requests_total",
			Help: "Total HTTP requests served, by route and status",
		}, []string{"route", "status"}),
	}
}
