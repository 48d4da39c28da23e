package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrQuestNotFound = errors.New("quest not found")
	ErrDrillNotFound = errors.New("drill not found")
)

// Quest is a side activity the player logs on their honor; no verification happens.
type Quest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	XP          int    `json:"xp"`
}

var quests = []Quest{
	{ID: "q-cardio", Title: "Gallop Session", Description: "30 minutes of cardio of your choice.", XP: 40},
	{ID: "q-mobility", Title: "Flexible Hooves", Description: "15 minutes of mobility work.", XP: 25},
	{ID: "q-protein", Title: "Oat Feast", Description: "Hit your protein goal today.", XP: 20},
	{ID: "q-sleep", Title: "Stable Rest", Description: "Sleep at least 8 hours.", XP: 30},
}

func Quests() []Quest {
	out := make([]Quest, len(quests))
	copy(out, quests)
	return out
}

func QuestByID(id string) (Quest, error) {
	for _, q := range quests {
		if q.ID == id {
			return q, nil
		}
	}
	return Quest{}, fmt.Errorf("%w: %s", ErrQuestNotFound, id)
}

type BodyPart string

const (
	BodyPartChest BodyPart = "chest"
	BodyPartArms  BodyPart = "arms"
	BodyPartLegs  BodyPart = "legs"
	BodyPartHorn  BodyPart = "horn"
)

func (b BodyPart) IsValid() bool {
	switch b {
	case BodyPartChest, BodyPartArms, BodyPartLegs, BodyPartHorn:
		return true
	default:
		return false
	}
}

// Drill is a targeted exercise that boosts a single body part.
type Drill struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	BodyPart     BodyPart `json:"bodyPart"`
	BoostPercent int      `json:"boostPercent"`
	XP           int      `json:"xp"`
}

var drills = []Drill{
	{ID: "d-pushups", Name: "Push-up Ladder", BodyPart: BodyPartChest, BoostPercent: 5, XP: 20},
	{ID: "d-curls", Name: "Curl Burnout", BodyPart: BodyPartArms, BoostPercent: 5, XP: 20},
	{ID: "d-lunges", Name: "Walking Lunges", BodyPart: BodyPartLegs, BoostPercent: 5, XP: 20},
	{ID: "d-meditation", Name: "Horn Meditation", BodyPart: BodyPartHorn, BoostPercent: 3, XP: 15},
}

func Drills() []Drill {
	out := make([]Drill, len(drills))
	copy(out, drills)
	return out
}

func DrillByID(id string) (Drill, error) {
	for _, d := range drills {
		if d.ID == id {
			return d, nil
		}
	}
	return Drill{}, fmt.Errorf("%w: %s", ErrDrillNotFound, id)
}
