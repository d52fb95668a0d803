// Package metrics exposes Prometheus instruments for the pipeline and HTTP surface.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "slideflow"

// Pipeline stages.
const (
	StageTranscribe = "transcribe"
	StageTitle      = "title"
	StageSynthesize = "synthesize"
	StageRender     = "render"
)

// Collector groups every instrument. Register it once per registry.
type Collector struct {
	presentationsTotal *prometheus.CounterVec
	pipelinesInFlight  prometheus.Gauge
	stageDuration      *prometheus.HistogramVec
	stageErrors        *prometheus.CounterVec

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New registers the instruments with reg.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		presentationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "presentations_total",
				Help:      "Finished presentation pipelines by source and final status",
			},
			[]string{"source", "status"},
		),
		pipelinesInFlight: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "pipelines_in_flight",
				Help:      "Pipelines currently holding a worker slot",
			},
		),
		stageDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "stage_duration_seconds",
				Help:      "Duration of each pipeline stage in seconds",
				Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 20, 30, 60, 120},
			},
			[]string{"stage"},
		),
		stageErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stage_errors_total",
				Help:      "Failed pipeline stages",
			},
			[]string{"stage"},
		),
		httpRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// ObservePresentation counts a finished pipeline.
func (c *Collector) ObservePresentation(source string, status string) {
	c.presentationsTotal.WithLabelValues(source, status).Inc()
}

// ObserveStage records one stage run; a non-nil err also counts a failure.
func (c *Collector) ObserveStage(stage string, d time.Duration, err error) {
	c.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
	if err != nil {
		c.stageErrors.WithLabelValues(stage).Inc()
	}
}

func (c *Collector) PipelineStarted()  { c.pipelinesInFlight.Inc() }
func (c *Collector) PipelineFinished() { c.pipelinesInFlight.Dec() }

// ObserveHTTP records one served request. route is the mux template, not the raw path.
func (c *Collector) ObserveHTTP(method, route string, status int, d time.Duration) {
	c.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
