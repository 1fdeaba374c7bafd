// Package metrics records tool calls served by `desktopctl serve`.
package metrics

import (
	"net/http"
	"time"

	"github.com/mj1618/desktopctl/internal/errs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns a private registry so tests and multiple servers do not
// collide on the global one.
type Collector struct {
	registry *prometheus.Registry
	actions  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New returns a Collector with its metrics registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "desktopctl_actions_total",
				Help: "Actions executed, by action and outcome.",
			},
			[]string{"action", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "desktopctl_action_duration_seconds",
				Help:    "Wall time of actions, including the external tool.",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
			},
			[]string{"action"},
		),
	}
	c.registry.MustRegister(
		c.actions,
		c.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Observe records one action outcome. The outcome label is errs.Kind(err).
func (c *Collector) Observe(action string, err error, elapsed time.Duration) {
	c.actions.WithLabelValues(action, errs.Kind(err)).Inc()
	c.duration.WithLabelValues(action).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
