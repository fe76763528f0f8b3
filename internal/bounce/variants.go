package bounce

import (
	"github.com/vovakirdan/bounce/internal/config"
	"github.com/vovakirdan/bounce/internal/registry"
)

func init() {
	registry.Register(registry.Variant{
		ID:          string(config.VariantClassic),
		Title:       "Classic",
		Description: "Small spike, bonus every 10 points levels up, a sound per collision",
		Rules:       config.ClassicRules,
	})
	registry.Register(registry.Variant{
		ID:          string(config.VariantArcade),
		Title:       "Arcade",
		Description: "Paddle hits score, every 5th point speeds the ball up, one bounce sound",
		Rules:       config.ArcadeRules,
	})
}
