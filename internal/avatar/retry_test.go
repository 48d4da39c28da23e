package avatar_test

import (
	"testing"
	"time"

	"github.com/pagardi95/ironunicorn/internal/avatar"

	"github.com/stretchr/testify/assert"
)

func TestRetryPolicy_Delays(t *testing.T) {
	assert.Equal(t,
		[]time.Duration{3 * time.Second, 6 * time.Second, 12 * time.Second},
		avatar.DefaultRetryPolicy().Delays(),
	)

	p := avatar.RetryPolicy{MaxAttempts: 3, BaseDelay: 100 * time.Millisecond, Multiplier: 3}
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 300 * time.Millisecond}, p.Delays())

	assert.Empty(t, avatar.RetryPolicy{MaxAttempts: 1, BaseDelay: time.Second, Multiplier: 2}.Delays())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", avatar.StateIdle.String())
	assert.Equal(t, "requesting", avatar.StateRequesting.String())
	assert.Equal(t, "retry", avatar.StateRetry.String())
	assert.Equal(t, "success", avatar.StateSuccess.String())
	assert.Equal(t, "fallback", avatar.StateFallback.String())
	assert.True(t, avatar.StateSuccess.Terminal())
	assert.True(t, avatar.StateFallback.Terminal())
	assert.False(t, avatar.StateRetry.Terminal())
}
