package strength

// Physique is the visual build descriptor used when rendering the avatar.
type Physique string

const (
	PhysiqueLean     Physique = "lean"
	PhysiqueDefined  Physique = "defined"
	PhysiqueMassive  Physique = "massive"
	PhysiqueColossal Physique = "colossal"
)

// Palette is the thematic color scheme bucketed by level, same buckets as the physique.
type Palette string

const (
	PaletteBronze Palette = "bronze and earthy tones, rustic barn gym"
	PaletteSilver Palette = "silver and steel tones, industrial iron gym"
	PaletteGold   Palette = "gold and royal purple tones, marble arena"
	PaletteCosmic Palette = "cosmic rainbow aura, celestial temple of iron"
)

func PhysiqueFor(level int) Physique {
	switch {
	case level < 10:
		return PhysiqueLean
	case level < 30:
		return PhysiqueDefined
	case level < 60:
		return PhysiqueMassive
	default:
		return PhysiqueColossal
	}
}

func PaletteFor(level int) Palette {
	switch PhysiqueFor(level) {
	case PhysiqueLean:
		return PaletteBronze
	case PhysiqueDefined:
		return PaletteSilver
	case PhysiqueMassive:
		return PaletteGold
	default:
		return PaletteCosmic
	}
}
