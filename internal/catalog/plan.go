package catalog

import (
	"errors"
	"fmt"
)

var ErrPlanNotFound = errors.New("training plan not found")

type Focus string

const (
	FocusStrength    Focus = "strength"
	FocusHypertrophy Focus = "hypertrophy"
)

type Exercise struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Sets       int    `json:"sets"`
	Reps       string `json:"reps"`
	WeightHint string `json:"weightHint"`
}

type WorkoutDay struct {
	Day       int        `json:"day"`
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
}

type TrainingPlan struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	DurationWeeks    int          `json:"durationWeeks"`
	Focus            Focus        `json:"focus"`
	Description      string       `json:"description"`
	MinStrengthScore float64      `json:"minStrengthScore"`
	Days             []WorkoutDay `json:"days"`
}

func (p TrainingPlan) Day(day int) (WorkoutDay, error) {
	for _, d := range p.Days {
		if d.Day == day {
			return d, nil
		}
	}
	return WorkoutDay{}, fmt.Errorf("plan %s has no day %d", p.ID, day)
}

var baseExercises = []Exercise{
	{ID: "1", Name: "Squats", Sets: 4, Reps: "8-10", WeightHint: "Last rep barely possible"},
	{ID: "2", Name: "Bench Press", Sets: 3, Reps: "10", WeightHint: "Controlled concentric phase"},
	{ID: "3", Name: "Deadlift", Sets: 5, Reps: "5", WeightHint: "Strength focus, technique before weight"},
}

// plans are kept in canonical order, easiest gate first
var plans = []TrainingPlan{
	{
		ID:               "basic-strength",
		Title:            "Basic Strength",
		DurationWeeks:    6,
		Focus:            FocusStrength,
		Description:      "Foundation for serious strength. Built by competitive powerlifters.",
		MinStrengthScore: 0,
		Days: []WorkoutDay{
			{Day: 1, Name: "Lower Body A", Exercises: baseExercises},
			{Day: 2, Name: "Upper Body A", Exercises: baseExercises},
		},
	},
	{
		ID:               "hypertrophy-max",
		Title:            "Hypertrophy Pro",
		DurationWeeks:    12,
		Focus:            FocusHypertrophy,
		Description:      "Maximum muscle growth with a volume focus.",
		MinStrengthScore: 1.5,
		Days: []WorkoutDay{
			{Day: 1, Name: "Chest & Back", Exercises: baseExercises},
			{Day: 2, Name: "Legs & Core", Exercises: baseExercises},
		},
	},
	{
		ID:               "iron-legend",
		Title:            "Iron Legend",
		DurationWeeks:    16,
		Focus:            FocusStrength,
		Description:      "Peaking block for lifters who already move serious weight.",
		MinStrengthScore: 2.5,
		Days: []WorkoutDay{
			{Day: 1, Name: "Heavy Lower", Exercises: baseExercises},
			{Day: 2, Name: "Heavy Upper", Exercises: baseExercises},
			{Day: 3, Name: "Dynamic Full Body", Exercises: baseExercises},
		},
	},
}

// Plans returns all training plans in canonical order.
func Plans() []TrainingPlan {
	out := make([]TrainingPlan, len(plans))
	copy(out, plans)
	return out
}

func PlanByID(id string) (TrainingPlan, error) {
	for _, p := range plans {
		if p.ID == id {
			return p, nil
		}
	}
	return TrainingPlan{}, fmt.Errorf("%w: %s", ErrPlanNotFound, id)
}
