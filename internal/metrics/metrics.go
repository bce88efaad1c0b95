// Package metrics collects and exposes Prometheus metrics for the
// enrichment pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bookmark_enricher/internal/domain"
)

// Collector records pipeline counters and latencies against a Prometheus
// registry. It satisfies service.MetricsCollector.
type Collector struct {
	runsStarted   prometheus.Counter
	runsFinished  *prometheus.CounterVec
	stepFailures  *prometheus.CounterVec
	mediaOutcomes *prometheus.CounterVec
	tokensUsed    prometheus.Counter
	runDuration   prometheus.Histogram
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		runsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "enricher_runs_started_total",
			Help: "Total number of enrichment runs admitted.",
		}),
		runsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "enricher_runs_finished_total",
			Help: "Total number of finished enrichment runs by terminal status.",
		}, []string{"status"}),
		stepFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "enricher_step_failures_total",
			Help: "Total number of exhausted step failures by step and error type.",
		}, []string{"step", "error_type"}),
		mediaOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "enricher_media_outcomes_total",
			Help: "Total number of per-candidate media outcomes by download status.",
		}, []string{"status"}),
		tokensUsed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "enricher_summarizer_tokens_total",
			Help: "Total number of summarization tokens consumed.",
		}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "enricher_run_duration_seconds",
			Help:    "Wall-clock duration of enrichment runs in seconds.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}),
	}

	reg.MustRegister(
		c.runsStarted,
		c.runsFinished,
		c.stepFailures,
		c.mediaOutcomes,
		c.tokensUsed,
		c.runDuration,
	)

	return c
}

func (c *Collector) RecordRunStarted() {
	c.runsStarted.Inc()
}

func (c *Collector) RecordRunFinished(status domain.ProcessingStatus, duration time.Duration) {
	c.runsFinished.WithLabelValues(string(status)).Inc()
	c.runDuration.Observe(duration.Seconds())
}

func (c *Collector) RecordStepFailure(step domain.Step, errType domain.ErrorType) {
	c.stepFailures.WithLabelValues(string(step), string(errType)).Inc()
}

func (c *Collector) RecordMediaOutcome(status domain.DownloadStatus) {
	c.mediaOutcomes.WithLabelValues(string(status)).Inc()
}

func (c *Collector) RecordTokensUsed(tokens int) {
	c.tokensUsed.Add(float64(tokens))
}

// Handler returns the HTTP handler Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
