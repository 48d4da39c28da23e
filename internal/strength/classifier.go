package strength

import (
	"github.com/pagardi95/ironunicorn/internal/catalog"
)

// StrongStartMultiplier is the squat to bodyweight ratio a new profile needs
// to be classified as a strong start.
const StrongStartMultiplier = 1.2

// Lifts are the raw onboarding numbers, all in kilograms.
type Lifts struct {
	Bodyweight float64 `json:"bodyweight" validate:"gte=30,lte=300"`
	Squat      float64 `json:"squat" validate:"gte=0,lte=500"`
	Bench      float64 `json:"bench" validate:"gte=0,lte=500"`
	Deadlift   float64 `json:"deadlift" validate:"gte=0,lte=500"`
}

// Score is the summed big three relative to bodyweight. Zero bodyweight scores 0.
func Score(l Lifts) float64 {
	if l.Bodyweight <= 0 {
		return 0
	}
	return (l.Squat + l.Bench + l.Deadlift) / l.Bodyweight
}

func MeetsRequirement(l Lifts, plan catalog.TrainingPlan) bool {
	return Score(l) >= plan.MinStrengthScore
}

// Unlocked filters plans down to the ones the lifts qualify for, keeping order.
func Unlocked(l Lifts, plans []catalog.TrainingPlan) []catalog.TrainingPlan {
	out := make([]catalog.TrainingPlan, 0, len(plans))
	for _, p := range plans {
		if MeetsRequirement(l, p) {
			out = append(out, p)
		}
	}
	return out
}

// Recommend returns the hardest plan the lifts unlock. On equal gates the first
// one in list order wins. ok is false when no plan is unlocked.
func Recommend(l Lifts, plans []catalog.TrainingPlan) (best catalog.TrainingPlan, ok bool) {
	score := Score(l)
	for _, p := range plans {
		if score < p.MinStrengthScore {
			continue
		}
		if !ok || p.MinStrengthScore > best.MinStrengthScore {
			best = p
			ok = true
		}
	}
	return best, ok
}

// IsStrongStart reports whether the squat already reaches StrongStartMultiplier x bodyweight.
func IsStrongStart(l Lifts) bool {
	return l.Squat >= l.Bodyweight*StrongStartMultiplier
}
