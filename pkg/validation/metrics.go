package validation

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	builds   *prometheus.CounterVec
	duration prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ruleset",
			Name:      "configuration_builds_total",
			Help:      "Number of model configurations derived, by model kind.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ruleset",
			Name:      "configuration_build_seconds",
			Help:      "Time spent deriving one model configuration.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
	m.builds = register(reg, m.builds)
	m.duration = register(reg, m.duration)
	return m
}

// register returns the already registered collector when an identical one
// exists, so several factories can share a registry.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
	}
	return c
}

func (m *metrics) observe(kind string, d time.Duration) {
	if m == nil {
		return
	}
	m.builds.WithLabelValues(kind).Inc()
	m.duration.Observe(d.Seconds())
}
