package config

import "fmt"

// VariantPreset names a built-in rule set.
type VariantPreset string

const (
	VariantClassic VariantPreset = "classic"
	VariantArcade  VariantPreset = "arcade"
)

// DefaultVariant is used when no variant is requested.
const DefaultVariant = VariantClassic

// ClassicRules returns the rule set with a small spike, bonus-driven leveling
// and a distinct sound per collision cause.
func ClassicRules() Rules {
	return Rules{
		SpikeSize:      10,
		SpikeMargin:    10,
		ScoreOnPaddle:  false,
		LevelThreshold: 10,
		LevelTrigger:   LevelOnBonus,
		Sounds:         SoundsPerCause,
	}
}

// ArcadeRules returns the rule set where paddle hits score, every fifth point
// levels up and speeds the ball, and all collisions share one sound.
func ArcadeRules() Rules {
	return Rules{
		SpikeSize:      20,
		SpikeMargin:    20,
		ScoreOnPaddle:  true,
		LevelThreshold: 5,
		LevelTrigger:   LevelOnPaddle,
		Sounds:         SoundsUnified,
	}
}

// RulesForPreset returns the rule set of a built-in preset.
func RulesForPreset(preset VariantPreset) (Rules, error) {
	switch preset {
	case VariantClassic:
		return ClassicRules(), nil
	case VariantArcade:
		return ArcadeRules(), nil
	default:
		return Rules{}, fmt.Errorf("config: unknown variant %q", preset)
	}
}

// ApplyVariant replaces the rule set of cfg with the given rules.
// Geometry, timing and audio settings are left untouched.
func ApplyVariant(cfg *BounceConfig, rules Rules) {
	cfg.Rules = rules
}
