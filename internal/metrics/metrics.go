package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "jobboard"

// Prom holds the service collectors.
type Prom struct {
	registry *prometheus.Registry

	RequestsTotal    *prometheus.CounterVec
	RequestsDuration *prometheus.HistogramVec
	InFlight         *prometheus.GaugeVec

	// workflows
	WorkflowResults *prometheus.CounterVec
	EventsPublished *prometheus.CounterVec
	RateLimited     *prometheus.CounterVec
	BlobUploadBytes prometheus.Histogram
}

// NewProm creates the collectors on a dedicated registry together with the go and process collectors.
func NewProm() *Prom {
	reg := prometheus.NewRegistry()

	p := &Prom{
		registry: reg,
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		RequestsDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distributions.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"method", "route", "status"},
		),
		InFlight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_in_flight_requests",
				Help:      "Current number of in-flight HTTP requests.",
			},
			[]string{"method"},
		),
		WorkflowResults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "workflow",
				Name:      "results_total",
				Help:      "Workflow outcomes by operation and error kind.",
			},
			[]string{"op", "result"},
		),
		EventsPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "events",
				Name:      "published_total",
				Help:      "Domain events by type and publish result.",
			},
			[]string{"type", "result"}, // result=ok|failed|skipped
		),
		RateLimited: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limited_total",
				Help:      "Requests rejected by the rate limiter.",
			},
			[]string{"scope"},
		),
		BlobUploadBytes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "storage",
				Name:      "upload_bytes",
				Help:      "Size of stored resume files.",
				Buckets:   prometheus.ExponentialBuckets(16<<10, 2, 10),
			},
		),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		p.RequestsTotal, p.RequestsDuration, p.InFlight,
		p.WorkflowResults, p.EventsPublished, p.RateLimited, p.BlobUploadBytes,
	)

	return p
}

// Handler exposes the registry in the Prometheus text format.
func (p *Prom) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// ObserveRequest records a finished HTTP request.
func (p *Prom) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	code := strconv.Itoa(status)
	p.RequestsTotal.WithLabelValues(method, route, code).Inc()
	p.RequestsDuration.WithLabelValues(method, route, code).Observe(elapsed.Seconds())
}

// ObserveWorkflow counts the outcome of a service operation.
func (p *Prom) ObserveWorkflow(op, result string) {
	p.WorkflowResults.WithLabelValues(op, result).Inc()
}

// ObserveEvent counts a publish attempt.
func (p *Prom) ObserveEvent(eventType, result string) {
	p.EventsPublished.WithLabelValues(eventType, result).Inc()
}

// ObserveRateLimited counts a rejected request.
func (p *Prom) ObserveRateLimited(scope string) {
	p.RateLimited.WithLabelValues(scope).Inc()
}

// ObserveUpload records the size of a stored blob.
func (p *Prom) ObserveUpload(size int64) {
	p.BlobUploadBytes.Observe(float64(size))
}
