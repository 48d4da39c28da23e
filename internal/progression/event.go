package progression

import (
	"time"

	"github.com/pagardi95/ironunicorn/internal/avatar"
	"github.com/pagardi95/ironunicorn/internal/catalog"
	"github.com/pagardi95/ironunicorn/internal/strength"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Kind string

const (
	KindOnboardingCompleted Kind = "onboarding_completed"
	KindWorkoutFinished     Kind = "workout_finished"
	KindChallengeCompleted  Kind = "challenge_completed"
	KindQuestConfirmed      Kind = "quest_confirmed"
	KindExerciseLogged      Kind = "exercise_logged"
	KindPlanSelected        Kind = "plan_selected"
	KindAvatarResolved      Kind = "avatar_resolved"
	KindReset               Kind = "reset"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindOnboardingCompleted,
		KindWorkoutFinished,
		KindChallengeCompleted,
		KindQuestConfirmed,
		KindExerciseLogged,
		KindPlanSelected,
		KindAvatarResolved,
		KindReset:
		return true
	default:
		return false
	}
}

// Event is a closed set of transitions the reducer knows how to apply.
type Event interface {
	Kind() Kind
	// Validate checks the payload shape, it does not look at the current stats.
	Validate() error
	isEvent()
}

type OnboardingCompleted struct {
	Lifts       strength.Lifts `json:"lifts"`
	Gender      Gender         `json:"gender" validate:"oneof=male female"`
	DisplayName string         `json:"displayName" validate:"max=40"`
}

type WorkoutFinished struct {
	XPGained int `json:"xpGained" validate:"gte=0,lte=1000"`
	// At is filled with the current time when zero.
	At time.Time `json:"at"`
}

type ChallengeCompleted struct {
	ChallengeID string `json:"challengeId" validate:"required"`
}

type QuestConfirmed struct {
	QuestID string `json:"questId" validate:"required"`
	XP      int    `json:"xp" validate:"gte=0,lte=1000"`
}

type ExerciseLogged struct {
	BodyPart     catalog.BodyPart `json:"bodyPart" validate:"oneof=chest arms legs horn"`
	BoostPercent int              `json:"boostPercent" validate:"gte=0,lte=100"`
	XP           int              `json:"xp" validate:"gte=0,lte=1000"`
}

type PlanSelected struct {
	PlanID string `json:"planId" validate:"required"`
}

// AvatarResolved attaches a resolver result to the stats it was requested for.
type AvatarResolved struct {
	Level int             `json:"level" validate:"gte=1,lte=100"`
	Ref   avatar.ImageRef `json:"ref" validate:"required"`
}

type Reset struct{}

func (OnboardingCompleted) Kind() Kind { return KindOnboardingCompleted }
func (WorkoutFinished) Kind() Kind     { return KindWorkoutFinished }
func (ChallengeCompleted) Kind() Kind  { return KindChallengeCompleted }
func (QuestConfirmed) Kind() Kind      { return KindQuestConfirmed }
func (ExerciseLogged) Kind() Kind      { return KindExerciseLogged }
func (PlanSelected) Kind() Kind        { return KindPlanSelected }
func (AvatarResolved) Kind() Kind      { return KindAvatarResolved }
func (Reset) Kind() Kind               { return KindReset }

func (e OnboardingCompleted) Validate() error { return validate.Struct(e) }
func (e WorkoutFinished) Validate() error     { return validate.Struct(e) }
func (e ChallengeCompleted) Validate() error  { return validate.Struct(e) }
func (e QuestConfirmed) Validate() error      { return validate.Struct(e) }
func (e ExerciseLogged) Validate() error      { return validate.Struct(e) }
func (e PlanSelected) Validate() error        { return validate.Struct(e) }
func (e AvatarResolved) Validate() error      { return validate.Struct(e) }
func (Reset) Validate() error                 { return nil }

func (OnboardingCompleted) isEvent() {}
func (WorkoutFinished) isEvent()     {}
func (ChallengeCompleted) isEvent()  {}
func (QuestConfirmed) isEvent()      {}
func (ExerciseLogged) isEvent()      {}
func (PlanSelected) isEvent()        {}
func (AvatarResolved) isEvent()      {}
func (Reset) isEvent()               {}
