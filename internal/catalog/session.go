package catalog

import (
	"errors"
	"fmt"
)

// WorkoutXP is granted for every finished workout session.
const WorkoutXP = 75

var (
	ErrWorkoutIncomplete = errors.New("workout has incomplete exercises")
	ErrExerciseNotFound  = errors.New("exercise not found in session")
	ErrSessionFinished   = errors.New("session already finished")
)

type Difficulty string

const (
	DifficultyNone      Difficulty = ""
	DifficultyTooEasy   Difficulty = "too_easy"
	DifficultyJustRight Difficulty = "just_right"
	DifficultyTooHard   Difficulty = "too_hard"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyNone, DifficultyTooEasy, DifficultyJustRight, DifficultyTooHard:
		return true
	default:
		return false
	}
}

// SessionExercise is an Exercise annotated with per-session flags.
// These never reach the save state.
type SessionExercise struct {
	Exercise
	Completed    bool
	Difficulty   Difficulty
	ActualWeight float64
	ActualReps   int
}

// Session tracks a single workout in progress. Not safe for concurrent use.
type Session struct {
	Day       WorkoutDay
	Exercises []SessionExercise
	finished  bool
}

func StartSession(day WorkoutDay) *Session {
	s := &Session{
		Day:       day,
		Exercises: make([]SessionExercise, 0, len(day.Exercises)),
	}
	for _, ex := range day.Exercises {
		s.Exercises = append(s.Exercises, SessionExercise{Exercise: ex})
	}
	return s
}

func (s *Session) find(exerciseID string) (*SessionExercise, error) {
	if s.finished {
		return nil, ErrSessionFinished
	}
	for i := range s.Exercises {
		if s.Exercises[i].ID == exerciseID {
			return &s.Exercises[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrExerciseNotFound, exerciseID)
}

// Toggle flips the completed flag of the exercise and returns the new value.
func (s *Session) Toggle(exerciseID string) (bool, error) {
	ex, err := s.find(exerciseID)
	if err != nil {
		return false, err
	}
	ex.Completed = !ex.Completed
	return ex.Completed, nil
}

func (s *Session) Rate(exerciseID string, difficulty Difficulty) error {
	if !difficulty.IsValid() {
		return fmt.Errorf("invalid difficulty: %s", difficulty)
	}
	ex, err := s.find(exerciseID)
	if err != nil {
		return err
	}
	ex.Difficulty = difficulty
	return nil
}

// Log records what was actually lifted and marks the exercise completed.
func (s *Session) Log(exerciseID string, weight float64, reps int) error {
	if weight < 0 || reps < 0 {
		return fmt.Errorf("invalid log for %s: weight %.1f, reps %d", exerciseID, weight, reps)
	}
	ex, err := s.find(exerciseID)
	if err != nil {
		return err
	}
	ex.ActualWeight = weight
	ex.ActualReps = reps
	ex.Completed = true
	return nil
}

// Progress returns completed / total exercises.
func (s *Session) Progress() (completed, total int) {
	for _, ex := range s.Exercises {
		if ex.Completed {
			completed++
		}
	}
	return completed, len(s.Exercises)
}

// Finish closes the session and returns the xp it is worth.
// Every exercise has to be completed first.
func (s *Session) Finish() (int, error) {
	if s.finished {
		return 0, ErrSessionFinished
	}
	completed, total := s.Progress()
	if completed < total {
		return 0, fmt.Errorf("%w: %d/%d done", ErrWorkoutIncomplete, completed, total)
	}
	s.finished = true
	// per-session flags are discarded
	s.Exercises = nil
	return WorkoutXP, nil
}
