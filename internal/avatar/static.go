package avatar

import (
	"fmt"
	"strings"

	"github.com/pagardi95/ironunicorn/internal/evolution"
)

type StaticStrategy string

const (
	// StrategyPerLevel serves one asset per level: {root}/level_{n}.png
	StrategyPerLevel StaticStrategy = "per_level"
	// StrategyStage serves the asset of the level's evolution stage.
	StrategyStage StaticStrategy = "stage"
)

// StaticStore builds deterministic references for a level. It never fails.
type StaticStore struct {
	strategy StaticStrategy
	root     string
}

func NewStaticStore(strategy StaticStrategy, root string) (*StaticStore, error) {
	switch strategy {
	case StrategyPerLevel:
		if root == "" {
			return nil, fmt.Errorf("static asset root required for %s strategy", strategy)
		}
	case StrategyStage:
	default:
		return nil, fmt.Errorf("unknown static strategy: %s", strategy)
	}
	return &StaticStore{
		strategy: strategy,
		root:     strings.TrimRight(root, "/"),
	}, nil
}

func (s *StaticStore) Ref(level int) ImageRef {
	level = evolution.ClampLevel(level)
	if s.strategy == StrategyStage {
		return ImageRef(evolution.Lookup(level).AssetRef)
	}
	return ImageRef(fmt.Sprintf("%s/%s", s.root, LevelFileName(level, ".png")))
}

// LevelFileName is the asset name used for a level, both remotely and on disk.
func LevelFileName(level int, ext string) string {
	return fmt.Sprintf("level_%d%s", evolution.ClampLevel(level), ext)
}
