package progression

import (
	"fmt"
	"time"

	"github.com/pagardi95/ironunicorn/internal/avatar"
	"github.com/pagardi95/ironunicorn/internal/catalog"
	"github.com/pagardi95/ironunicorn/internal/evolution"
	"github.com/pagardi95/ironunicorn/internal/strength"
)

const (
	XPPerLevel = 100

	// BaseOffset and StrongStartOffset are added to xp/XPPerLevel, so a fresh
	// profile starts exactly at its onboarding level.
	BaseOffset        = 1
	StrongStartOffset = 15
	StrongStartLevel  = StrongStartOffset
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// Evolution holds the cosmetic per body part progress, each in [0,100].
type Evolution struct {
	Chest int `json:"chest"`
	Arms  int `json:"arms"`
	Legs  int `json:"legs"`
	Horn  int `json:"horn"`
}

var (
	baselineEvolution    = Evolution{Chest: 10, Arms: 10, Legs: 10, Horn: 5}
	strongStartEvolution = Evolution{Chest: 30, Arms: 30, Legs: 40, Horn: 10}
	workoutGrowth        = Evolution{Chest: 2, Arms: 2, Legs: 3, Horn: 1}
	challengeGrowth      = Evolution{Chest: 5, Arms: 5, Legs: 5, Horn: 10}
)

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Grow adds delta part by part, clamped to [0,100].
func (e Evolution) Grow(delta Evolution) Evolution {
	return Evolution{
		Chest: clampPercent(e.Chest + delta.Chest),
		Arms:  clampPercent(e.Arms + delta.Arms),
		Legs:  clampPercent(e.Legs + delta.Legs),
		Horn:  clampPercent(e.Horn + delta.Horn),
	}
}

func (e Evolution) Get(part catalog.BodyPart) int {
	switch part {
	case catalog.BodyPartChest:
		return e.Chest
	case catalog.BodyPartArms:
		return e.Arms
	case catalog.BodyPartLegs:
		return e.Legs
	case catalog.BodyPartHorn:
		return e.Horn
	default:
		return 0
	}
}

// Boost returns a copy with the single part raised by percent, clamped.
func (e Evolution) Boost(part catalog.BodyPart, percent int) Evolution {
	var delta Evolution
	switch part {
	case catalog.BodyPartChest:
		delta.Chest = percent
	case catalog.BodyPartArms:
		delta.Arms = percent
	case catalog.BodyPartLegs:
		delta.Legs = percent
	case catalog.BodyPartHorn:
		delta.Horn = percent
	}
	return e.Grow(delta)
}

type ChallengeType string

const (
	ChallengeConsistency ChallengeType = "consistency"
	ChallengeStreak      ChallengeType = "streak"
	ChallengeLift        ChallengeType = "lift"
)

type Challenge struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	XPReward    int           `json:"xpReward"`
	Completed   bool          `json:"completed"`
	Type        ChallengeType `json:"type"`
}

func DefaultChallenges() []Challenge {
	return []Challenge{
		{ID: "c1", Title: "First Training", Description: "Finish your very first workout.", XPReward: 50, Type: ChallengeConsistency},
		{ID: "c2", Title: "Double Trouble", Description: "Train two days in a row.", XPReward: 100, Type: ChallengeStreak},
		{ID: "c3", Title: "Heavy Hitter", Description: "Squat or deadlift more than your bodyweight.", XPReward: 150, Type: ChallengeLift},
	}
}

// Date is a calendar day without time of day. Encoded as 2006-01-02.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

const dateLayout = "2006-01-02"

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the number of calendar days from d to other, negative if other is before d.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}

func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	t, err := time.Parse(dateLayout, string(text))
	if err != nil {
		return fmt.Errorf("parse date %q: %w", string(text), err)
	}
	*d = DateOf(t)
	return nil
}

// UserStats is the single save state of the player.
type UserStats struct {
	Gender             Gender          `json:"gender"`
	DisplayName        string          `json:"displayName,omitempty"`
	Level              int             `json:"level"`
	XP                 int             `json:"xp"`
	Streak             int             `json:"streak"`
	TotalWorkouts      int             `json:"totalWorkouts"`
	Lifts              strength.Lifts  `json:"lifts"`
	Evolution          Evolution       `json:"evolution"`
	IsStrongStart      bool            `json:"isStrongStart"`
	OnboardingComplete bool            `json:"onboardingComplete"`
	AvatarURL          avatar.ImageRef `json:"avatarUrl,omitempty"`
	Challenges         []Challenge     `json:"challenges"`
	SelectedPlanID     string          `json:"selectedPlanId,omitempty"`
	LastWorkoutDate    *Date           `json:"lastWorkoutDate,omitempty"`
}

// NewUserStats returns the default profile every installation starts with.
func NewUserStats() UserStats {
	return UserStats{
		Gender:     GenderMale,
		Level:      evolution.MinLevel,
		Evolution:  baselineEvolution,
		Challenges: DefaultChallenges(),
	}
}

// Clone returns a deep copy, nothing is shared with s.
func (s UserStats) Clone() UserStats {
	out := s
	if s.Challenges != nil {
		out.Challenges = make([]Challenge, len(s.Challenges))
		copy(out.Challenges, s.Challenges)
	}
	if s.LastWorkoutDate != nil {
		d := *s.LastWorkoutDate
		out.LastWorkoutDate = &d
	}
	return out
}

func (s UserStats) StrengthScore() float64 {
	return strength.Score(s.Lifts)
}

// LevelFor maps xp to a level, non-decreasing in xp and capped at MaxLevel.
func LevelFor(xp int, strongStart bool) int {
	offset := BaseOffset
	if strongStart {
		offset = StrongStartOffset
	}
	if xp < 0 {
		xp = 0
	}
	level := xp/XPPerLevel + offset
	if level > evolution.MaxLevel {
		return evolution.MaxLevel
	}
	return level
}
