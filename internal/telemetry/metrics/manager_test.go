package metrics_test

import (
	"testing"

	"github.com/pagardi95/ironunicorn/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_RegistersEverything(t *testing.T) {
	m, reg := metrics.NewTestManagerAndRegistry()
	require.NotNil(t, m)

	m.CounterTransitions.WithLabelValues("workout_finished").Inc()
	m.CounterTransitions.WithLabelValues("workout_finished").Inc()
	m.CounterAvatarResolutions.WithLabelValues("generated").Inc()
	m.GaugeLevel.Set(15)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterTransitions.WithLabelValues("workout_finished")))
	assert.Equal(t, 15.0, testutil.ToFloat64(m.GaugeLevel))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["ironunicorn_test_transitions"])
	assert.True(t, names["ironunicorn_test_avatar_resolutions"])
	assert.True(t, names["ironunicorn_test_level"])
}

func TestSetupPrometheus(t *testing.T) {
	m, _ := metrics.NewTestManagerAndRegistry()
	reg := metrics.SetupPrometheus(m.CounterCacheHits)
	m.CounterCacheHits.Inc()

	families, err := reg.Gather()
	require.NoError(t, err)
	found := false
	for _, f := range families {
		if f.GetName() == "ironunicorn_test_avatar_cache_hits" {
			found = true
			require.Len(t, f.GetMetric(), 1)
			assert.Equal(t, 1.0, f.GetMetric()[0].GetCounter().GetValue())
		}
	}
	assert.True(t, found)
}
