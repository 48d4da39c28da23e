package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pagardi95/ironunicorn/internal/evolution"
	"github.com/pagardi95/ironunicorn/internal/progression"
)

var ErrCorruptSlot = errors.New("corrupt save slot")

// Encode serializes the full stats aggregate.
func Encode(stats progression.UserStats) ([]byte, error) {
	data, err := json.Marshal(stats)
	if err != nil {
		return nil, fmt.Errorf("encode stats: %w", err)
	}
	return data, nil
}

// Decode reads saved data on top of the default profile, so fields missing from
// older saves keep their defaults. Challenges are matched by id: saved completion
// flags win, default challenges absent from the save are added.
func Decode(data []byte) (*progression.UserStats, error) {
	defaults := progression.NewUserStats()

	stats := defaults.Clone()
	stats.Challenges = nil
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSlot, err)
	}

	stats.Challenges = mergeChallenges(defaults.Challenges, stats.Challenges)
	stats.Level = evolution.ClampLevel(stats.Level)
	if stats.XP < 0 {
		stats.XP = 0
	}
	if stats.Streak < 0 {
		stats.Streak = 0
	}
	if stats.TotalWorkouts < 0 {
		stats.TotalWorkouts = 0
	}
	stats.Evolution = stats.Evolution.Grow(progression.Evolution{})
	if !stats.Gender.IsValid() {
		stats.Gender = defaults.Gender
	}

	return &stats, nil
}

func mergeChallenges(defaults, saved []progression.Challenge) []progression.Challenge {
	byID := make(map[string]progression.Challenge, len(saved))
	for _, c := range saved {
		byID[c.ID] = c
	}

	merged := make([]progression.Challenge, 0, len(defaults)+len(saved))
	known := make(map[string]bool, len(defaults))
	for _, def := range defaults {
		known[def.ID] = true
		if s, ok := byID[def.ID]; ok {
			def.Completed = s.Completed
		}
		merged = append(merged, def)
	}
	// keep challenges written by a newer version
	for _, c := range saved {
		if c.ID != "" && !known[c.ID] {
			merged = append(merged, c)
		}
	}
	return merged
}
