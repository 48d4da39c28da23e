package evolution_test

import (
	"testing"

	"github.com/pagardi95/ironunicorn/internal/evolution"

	"github.com/stretchr/testify/assert"
)

func TestNextMilestone(t *testing.T) {
	assert.Equal(t, 10, evolution.NextMilestone(1))
	assert.Equal(t, 25, evolution.NextMilestone(2))
	assert.Equal(t, 25, evolution.NextMilestone(10))
	assert.Equal(t, 50, evolution.NextMilestone(11))
	assert.Equal(t, 50, evolution.NextMilestone(25))
	assert.Equal(t, 75, evolution.NextMilestone(50))
	assert.Equal(t, 100, evolution.NextMilestone(51))
	assert.Equal(t, 100, evolution.NextMilestone(100))
}

func TestMilestoneProgress(t *testing.T) {
	assert.InDelta(t, 10.0, evolution.MilestoneProgress(1), 0.0001)
	assert.InDelta(t, 30.0, evolution.MilestoneProgress(15), 0.0001)
	assert.InDelta(t, 50.0, evolution.MilestoneProgress(25), 0.0001)
	assert.InDelta(t, 32.0, evolution.MilestoneProgress(8), 0.0001)
	assert.InDelta(t, 100.0, evolution.MilestoneProgress(100), 0.0001)
}
