package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "genreseek"

// Store records dispatch and effect activity for a state container.
// A nil *Store is valid and records nothing.
type Store struct {
	actions        *prometheus.CounterVec
	inflight       prometheus.Gauge
	effectDuration *prometheus.HistogramVec
}

// NewStore registers the store collectors on reg.
func NewStore(reg prometheus.Registerer) *Store {
	factory := promauto.With(reg)
	return &Store{
		actions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "actions_total",
				Help:      "Actions dispatched through the store, by action name.",
			},
			[]string{"action"},
		),
		inflight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "effects_inflight",
				Help:      "Effects currently running.",
			},
		),
		effectDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "effect_duration_seconds",
				Help:      "Wall time of effect execution, by effect name.",
				Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"effect"},
		),
	}
}

// ActionDispatched counts one dispatch of the named action.
func (m *Store) ActionDispatched(action string) {
	if m == nil {
		return
	}
	m.actions.WithLabelValues(action).Inc()
}

// EffectStarted marks an effect as running.
func (m *Store) EffectStarted() {
	if m == nil {
		return
	}
	m.inflight.Inc()
}

// EffectFinished records the effect's duration and clears its in-flight mark.
func (m *Store) EffectFinished(effect string, took time.Duration) {
	if m == nil {
		return
	}
	m.inflight.Dec()
	m.effectDuration.WithLabelValues(effect).Observe(took.Seconds())
}
