// Package metrics exposes Prometheus counters for retrieval modes and alert checks.
package metrics

import (
	"net/http"
	"time"

	"github.com/Houeta/price-radar/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "price_radar"

// Lookup kinds.
const (
	KindSearch  = "search"
	KindCompare = "compare"
)

// Metrics holds the application collectors on a private registry. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	Lookups         *prometheus.CounterVec
	AlertChecks     *prometheus.CounterVec
	AlertsTriggered prometheus.Counter
	CheckDuration   prometheus.Histogram
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Search and compare lookups by the mode of the data served.",
		}, []string{"kind", "mode"}),
		AlertChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alert_checks_total",
			Help:      "Alert check runs by outcome.",
		}, []string{"result"}),
		AlertsTriggered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_triggered_total",
			Help:      "Alerts whose target price was reached.",
		}),
		CheckDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "alert_check_duration_seconds",
			Help:      "Duration of one alert check run.",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveLookup counts one lookup served in mode.
func (m *Metrics) ObserveLookup(kind string, mode models.Mode) {
	if m == nil {
		return
	}

	m.Lookups.WithLabelValues(kind, mode.String()).Inc()
}

// ObserveCheck records one alert check run.
func (m *Metrics) ObserveCheck(elapsed time.Duration, triggered int, err error) {
	if m == nil {
		return
	}

	result := "ok"
	if err != nil {
		result = "error"
	}

	m.AlertChecks.WithLabelValues(result).Inc()
	m.AlertsTriggered.Add(float64(triggered))
	m.CheckDuration.Observe(elapsed.Seconds())
}
