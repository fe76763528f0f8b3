package config

import (
	_ "embed"
)

//go:embed defaults/bounce.yaml
var defaultBounceYAML []byte

// DefaultBounceConfig returns the default configuration with the classic rules.
func DefaultBounceConfig() BounceConfig {
	return BounceConfig{
		Arena: ArenaConfig{
			Width:  400,
			Height: 400,
		},
		Ball: BallConfig{
			Size:   20,
			StartX: 100,
			StartY: 100,
			SpeedX: 2,
			SpeedY: 2,
		},
		Paddle: PaddleConfig{
			StartX: 150,
			Y:      350,
			Width:  100,
			Height: 10,
			Step:   20,
		},
		Obstacles: ObstacleConfig{
			Count:      3,
			Width:      60,
			Height:     10,
			MinY:       10,
			BandHeight: 80,
		},
		Bonus: BonusConfig{
			Size:   20,
			Points: 5,
			MinY:   50,
		},
		Spawn: SpawnConfig{
			MaxAttempts: 10000,
		},
		Timing: TimingConfig{
			TickMS:      10,
			ReshuffleMS: 10000,
		},
		Rules: ClassicRules(),
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBounceYAML
}
