package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterTransitions        *prometheus.CounterVec
	CounterRejectedEvents     *prometheus.CounterVec
	CounterAvatarResolutions  *prometheus.CounterVec
	CounterGenerationAttempts *prometheus.CounterVec
	CounterPersistenceErrors  *prometheus.CounterVec
	CounterCacheHits          prometheus.Counter

	// gauges
	GaugeLevel         prometheus.Gauge
	GaugeXP            prometheus.Gauge
	GaugeBatchProgress prometheus.Gauge
	GaugeLifeSignal    prometheus.Gauge

	// histograms
	HistGenerationDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("ironunicorn", "test", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("ironunicorn", "test", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterTransitions := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "transitions",
		Help:      "The total number of applied progression events",
	}, []string{"kind"})
	counterRejectedEvents := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rejected_events",
		Help:      "The total number of progression events rejected at the boundary",
	}, []string{"kind"})
	counterAvatarResolutions := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "avatar_resolutions",
		Help:      "The total number of avatar resolutions by outcome",
	}, []string{"outcome"})
	counterGenerationAttempts := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "generation_attempts",
		Help:      "The total number of image generation attempts by result class",
	}, []string{"class"})
	counterPersistenceErrors := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "persistence_errors",
		Help:      "The total number of failed save slot operations",
	}, []string{"op"})
	counterCacheHits := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "avatar_cache_hits",
		Help:      "The total number of avatar image cache hits",
	})

	gaugeLevel := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "level",
		Help:      "Current level of the player",
	})
	gaugeXP := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "xp",
		Help:      "Current xp of the player",
	})
	gaugeBatchProgress := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "batch_progress",
		Help:      "Number of levels processed by the running avatar batch",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histGenerationDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "generation_duration_seconds",
		Help:      "Duration of a single avatar resolution in seconds, retries included",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	})

	return &Manager{
		CounterTransitions:        counterTransitions,
		CounterRejectedEvents:     counterRejectedEvents,
		CounterAvatarResolutions:  counterAvatarResolutions,
		CounterGenerationAttempts: counterGenerationAttempts,
		CounterPersistenceErrors:  counterPersistenceErrors,
		CounterCacheHits:          counterCacheHits,
		GaugeLevel:                gaugeLevel,
		GaugeXP:                   gaugeXP,
		GaugeBatchProgress:        gaugeBatchProgress,
		GaugeLifeSignal:           gaugeLifeSignal,
		HistGenerationDuration:    histGenerationDuration,
	}
}
