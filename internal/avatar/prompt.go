package avatar

import (
	"fmt"

	"github.com/pagardi95/ironunicorn/internal/evolution"
	"github.com/pagardi95/ironunicorn/internal/strength"
)

func BuildPrompt(level int, gender string) string {
	level = evolution.ClampLevel(level)
	if gender != "female" {
		gender = "male"
	}
	stage := evolution.Lookup(level)
	return fmt.Sprintf(
		"A heroic anthropomorphic %s unicorn bodybuilder with a %s muscular build. "+
			"Evolution stage %q: %s "+
			"Color theme: %s. Power level %d of %d. "+
			"Digital art, full body, centered, dramatic lighting, no text.",
		gender,
		strength.PhysiqueFor(level),
		stage.Name,
		stage.Description,
		strength.PaletteFor(level),
		level,
		evolution.MaxLevel,
	)
}
