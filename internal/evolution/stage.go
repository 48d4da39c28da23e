package evolution

import "sort"

const (
	MinLevel = 1
	MaxLevel = 100
)

// Stage is a narrative step of the unicorn's evolution, active from Threshold
// up to (not including) the next stage's threshold.
type Stage struct {
	Threshold   int    `json:"threshold"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AssetRef    string `json:"assetRef"`
}

var stages = []Stage{
	{Threshold: 1, Name: "The Foal", Description: "The beginning of a legend.", AssetRef: "https://images.unsplash.com/photo-1553284965-83fd3e82fa5a?q=80&w=800"},
	{Threshold: 11, Name: "The Climber", Description: "First fibers become visible.", AssetRef: "https://images.unsplash.com/photo-1598971861713-54ad16a7e718?q=80&w=800"},
	{Threshold: 21, Name: "The Athlete", Description: "Steel-hard discipline pays off.", AssetRef: "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?q=80&w=800"},
	{Threshold: 31, Name: "The Power Pony", Description: "Your foundation stands.", AssetRef: "https://images.unsplash.com/photo-1581009146145-b5ef050c2e1e?q=80&w=800"},
	{Threshold: 41, Name: "The Muscle Head", Description: "The mass is coming.", AssetRef: "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?q=80&w=800"},
	{Threshold: 51, Name: "The Destroyer", Description: "Weights tremble before you.", AssetRef: "https://images.unsplash.com/photo-1541534741688-6078c64b5ec5?q=80&w=800"},
	{Threshold: 61, Name: "The Stable Monster", Description: "You can barely be held back.", AssetRef: "https://images.unsplash.com/photo-1605296867304-46d5465a13f1?q=80&w=800"},
	{Threshold: 71, Name: "The Mystic", Description: "The horn glows with energy.", AssetRef: "https://images.unsplash.com/photo-1526506118085-60ce8714f8c5?q=80&w=800"},
	{Threshold: 81, Name: "The Demigod", Description: "You rule the stable.", AssetRef: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?q=80&w=800"},
	{Threshold: 91, Name: "IRON UNICORN", Description: "The ultimate legend.", AssetRef: "https://images.unsplash.com/photo-1597452485669-2c7bb5fef90d?q=80&w=800"},
}

// ClampLevel forces the level into [MinLevel, MaxLevel].
func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// Lookup returns the stage with the greatest threshold <= level.
// The level is clamped first, so a stage is always found.
func Lookup(level int) Stage {
	level = ClampLevel(level)
	// first stage whose threshold is above level, the one before it is ours
	idx := sort.Search(len(stages), func(i int) bool {
		return stages[i].Threshold > level
	})
	if idx == 0 {
		return stages[0]
	}
	return stages[idx-1]
}

// StageIndex returns the zero based position of the level's stage.
func StageIndex(level int) int {
	level = ClampLevel(level)
	return sort.Search(len(stages), func(i int) bool {
		return stages[i].Threshold > level
	}) - 1
}

// Stages returns a copy of the full table in threshold order.
func Stages() []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages)
	return out
}
