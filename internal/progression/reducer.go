package progression

import (
	"errors"
	"fmt"

	"github.com/pagardi95/ironunicorn/internal/catalog"
	"github.com/pagardi95/ironunicorn/internal/evolution"
	"github.com/pagardi95/ironunicorn/internal/strength"
)

var (
	ErrOnboardingRequired = errors.New("onboarding not completed")
	ErrAlreadyOnboarded   = errors.New("onboarding already completed")
	ErrPlanLocked         = errors.New("training plan locked for current strength score")
	ErrUnknownEvent       = errors.New("unknown event")
)

// Outcome is the result of applying one event.
type Outcome struct {
	Stats UserStats
	// Changed is false when the event was a no-op, nothing needs saving then.
	Changed   bool
	LeveledUp bool
	// RefreshAvatar tells the caller to re-resolve the avatar for Stats.Level.
	RefreshAvatar bool
	// Completed holds ids of challenges completed by this event, in completion order.
	Completed []string
	XPGained  int
}

// Precheck rejects events that can not be applied to the given stats.
// It runs before Apply, which itself never fails on a valid event.
func Precheck(stats UserStats, ev Event) error {
	switch e := ev.(type) {
	case Reset:
		return nil
	case OnboardingCompleted:
		if stats.OnboardingComplete {
			return ErrAlreadyOnboarded
		}
		return nil
	case PlanSelected:
		if !stats.OnboardingComplete {
			return ErrOnboardingRequired
		}
		plan, err := catalog.PlanByID(e.PlanID)
		if err != nil {
			return err
		}
		if !strength.MeetsRequirement(stats.Lifts, plan) {
			return fmt.Errorf("%w: %s needs %.1f, have %.2f", ErrPlanLocked, plan.ID, plan.MinStrengthScore, stats.StrengthScore())
		}
		return nil
	default:
		if !stats.OnboardingComplete {
			return ErrOnboardingRequired
		}
		return nil
	}
}

// Apply is the pure transition function. prev is never modified.
func Apply(prev UserStats, ev Event) (Outcome, error) {
	next := prev.Clone()
	out := Outcome{}
	// challenge detection only follows xp affecting transitions
	detect := false

	switch e := ev.(type) {
	case OnboardingCompleted:
		next = applyOnboarding(next, e)
		out.Changed = true
		out.RefreshAvatar = true

	case WorkoutFinished:
		today := DateOf(e.At)
		next.Streak = nextStreak(next.Streak, next.LastWorkoutDate, today)
		next.LastWorkoutDate = &today
		next.TotalWorkouts++
		next.Evolution = next.Evolution.Grow(workoutGrowth)
		next = gainXP(next, e.XPGained)
		out.Changed = true
		out.RefreshAvatar = next.TotalWorkouts%3 == 0
		detect = true

	case ChallengeCompleted:
		idx := challengeIndex(next.Challenges, e.ChallengeID)
		if idx < 0 || next.Challenges[idx].Completed {
			return Outcome{Stats: next}, nil
		}
		next = completeChallenge(next, idx)
		out.Completed = append(out.Completed, e.ChallengeID)
		out.Changed = true
		detect = true

	case QuestConfirmed:
		next = gainXP(next, e.XP)
		out.Changed = true
		detect = true

	case ExerciseLogged:
		before := next.Evolution.Get(e.BodyPart)
		next.Evolution = next.Evolution.Boost(e.BodyPart, e.BoostPercent)
		after := next.Evolution.Get(e.BodyPart)
		next = gainXP(next, e.XP)
		out.Changed = true
		out.RefreshAvatar = before/10 != after/10
		detect = true

	case PlanSelected:
		if _, err := catalog.PlanByID(e.PlanID); err != nil || next.SelectedPlanID == e.PlanID {
			return Outcome{Stats: next}, nil
		}
		next.SelectedPlanID = e.PlanID
		out.Changed = true

	case AvatarResolved:
		// the level moved on while the image was being resolved
		if e.Level != next.Level || next.AvatarURL == e.Ref {
			return Outcome{Stats: next}, nil
		}
		next.AvatarURL = e.Ref
		out.Changed = true

	case Reset:
		out.Stats = NewUserStats()
		out.Changed = true
		return out, nil

	default:
		return Outcome{Stats: next}, fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
	}

	if detect {
		var completed []string
		next, completed = autoComplete(next)
		out.Completed = append(out.Completed, completed...)
	}

	out.Stats = next
	out.XPGained = next.XP - prev.XP
	out.LeveledUp = next.Level > prev.Level
	if out.LeveledUp || len(out.Completed) > 0 {
		out.RefreshAvatar = true
	}
	return out, nil
}

func applyOnboarding(stats UserStats, e OnboardingCompleted) UserStats {
	stats.Lifts = e.Lifts
	stats.Gender = e.Gender
	stats.DisplayName = e.DisplayName
	stats.IsStrongStart = strength.IsStrongStart(e.Lifts)
	stats.Level = LevelFor(stats.XP, stats.IsStrongStart)
	if stats.IsStrongStart {
		stats.Evolution = strongStartEvolution
	} else {
		stats.Evolution = baselineEvolution
	}
	stats.OnboardingComplete = true
	return stats
}

// gainXP adds xp and recomputes the level. The level never drops here,
// even when a loaded save holds a level above what its xp maps to.
func gainXP(stats UserStats, xp int) UserStats {
	if xp > 0 {
		stats.XP += xp
	}
	level := LevelFor(stats.XP, stats.IsStrongStart)
	if level > stats.Level {
		stats.Level = level
	}
	stats.Level = evolution.ClampLevel(stats.Level)
	return stats
}

func nextStreak(streak int, last *Date, today Date) int {
	if last == nil {
		return 1
	}
	switch last.DaysUntil(today) {
	case 0:
		if streak < 1 {
			return 1
		}
		return streak
	case 1:
		return streak + 1
	default:
		return 1
	}
}

func challengeIndex(challenges []Challenge, id string) int {
	for i, c := range challenges {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func completeChallenge(stats UserStats, idx int) UserStats {
	stats.Challenges[idx].Completed = true
	stats.Evolution = stats.Evolution.Grow(challengeGrowth)
	return gainXP(stats, stats.Challenges[idx].XPReward)
}

func challengeMet(stats UserStats, c Challenge) bool {
	switch c.Type {
	case ChallengeConsistency:
		return stats.TotalWorkouts >= 1
	case ChallengeStreak:
		return stats.Streak >= 2
	case ChallengeLift:
		return stats.Lifts.Squat > stats.Lifts.Bodyweight || stats.Lifts.Deadlift > stats.Lifts.Bodyweight
	default:
		return false
	}
}

// autoComplete completes every challenge whose predicate holds, repeating until
// a pass completes nothing. Bounded by the number of challenges.
func autoComplete(stats UserStats) (UserStats, []string) {
	var completed []string
	for pass := 0; pass <= len(stats.Challenges); pass++ {
		progressed := false
		for i, c := range stats.Challenges {
			if c.Completed || !challengeMet(stats, c) {
				continue
			}
			stats = completeChallenge(stats, i)
			completed = append(completed, c.ID)
			progressed = true
		}
		if !progressed {
			break
		}
	}
	return stats, completed
}
