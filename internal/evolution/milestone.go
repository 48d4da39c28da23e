package evolution

import "math"

type milestone struct {
	upTo int // inclusive
	next int
}

var milestones = []milestone{
	{upTo: 1, next: 10},
	{upTo: 10, next: 25},
	{upTo: 25, next: 50},
	{upTo: 50, next: 75},
}

// NextMilestone returns the next coarse milestone level the player works towards.
func NextMilestone(level int) int {
	for _, m := range milestones {
		if level <= m.upTo {
			return m.next
		}
	}
	return MaxLevel
}

// MilestoneProgress is the level expressed as a percentage of the next milestone, capped at 100.
func MilestoneProgress(level int) float64 {
	return math.Min(100, float64(level)/float64(NextMilestone(level))*100)
}
