// Package config provides YAML/TOML-based game configuration loading and
// rule-set variants for the bounce engine.
package config

import (
	"errors"
	"fmt"
	"time"
)

// BounceConfig contains all configuration for the bouncing ball game.
// Sizes and positions are in world units (the default arena is 400x400).
type BounceConfig struct {
	Arena     ArenaConfig    `yaml:"arena" toml:"arena"`
	Ball      BallConfig     `yaml:"ball" toml:"ball"`
	Paddle    PaddleConfig   `yaml:"paddle" toml:"paddle"`
	Obstacles ObstacleConfig `yaml:"obstacles" toml:"obstacles"`
	Bonus     BonusConfig    `yaml:"bonus" toml:"bonus"`
	Spawn     SpawnConfig    `yaml:"spawn" toml:"spawn"`
	Timing    TimingConfig   `yaml:"timing" toml:"timing"`
	Rules     Rules          `yaml:"rules" toml:"rules"`
	Audio     AudioConfig    `yaml:"audio" toml:"audio"`
}

// ArenaConfig defines the logical arena the terminal canvas reports.
type ArenaConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// BallConfig defines the ball's reset position, size and velocity.
type BallConfig struct {
	Size   int `yaml:"size" toml:"size"`
	StartX int `yaml:"start_x" toml:"start_x"`
	StartY int `yaml:"start_y" toml:"start_y"`
	SpeedX int `yaml:"speed_x" toml:"speed_x"` // Units per tick, sign is direction
	SpeedY int `yaml:"speed_y" toml:"speed_y"`
}

// PaddleConfig defines the player's paddle.
type PaddleConfig struct {
	StartX int `yaml:"start_x" toml:"start_x"`
	Y      int `yaml:"y" toml:"y"`
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	Step   int `yaml:"step" toml:"step"` // Units moved per key press
}

// ObstacleConfig defines the obstacle batch and its vertical band.
type ObstacleConfig struct {
	Count      int `yaml:"count" toml:"count"`
	Width      int `yaml:"width" toml:"width"`
	Height     int `yaml:"height" toml:"height"`
	MinY       int `yaml:"min_y" toml:"min_y"`
	BandHeight int `yaml:"band_height" toml:"band_height"`
}

// BonusConfig defines the collectible bonus.
type BonusConfig struct {
	Size   int `yaml:"size" toml:"size"`
	Points int `yaml:"points" toml:"points"`
	MinY   int `yaml:"min_y" toml:"min_y"` // Top of the band shared with the spike
}

// SpawnConfig bounds the rejection sampler.
type SpawnConfig struct {
	MaxAttempts int `yaml:"max_attempts" toml:"max_attempts"`
}

// TimingConfig defines the two periodic triggers.
type TimingConfig struct {
	TickMS      int `yaml:"tick_ms" toml:"tick_ms"`
	ReshuffleMS int `yaml:"reshuffle_ms" toml:"reshuffle_ms"`
}

// TickPeriod returns the simulation tick period.
func (t TimingConfig) TickPeriod() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// ReshufflePeriod returns the obstacle/bonus reshuffle period.
func (t TimingConfig) ReshufflePeriod() time.Duration {
	return time.Duration(t.ReshuffleMS) * time.Millisecond
}

// AudioConfig defines the sound sink.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled" toml:"enabled"`
	Dir        string  `yaml:"dir" toml:"dir"`       // Directory with <sound>.wav files; empty means built-in tones
	Volume     float64 `yaml:"volume" toml:"volume"` // Base-2 gain, 0 leaves clips unchanged
	SampleRate int     `yaml:"sample_rate" toml:"sample_rate"`
}

// LevelTrigger selects which event advances the level.
type LevelTrigger string

const (
	LevelOnBonus  LevelTrigger = "bonus"
	LevelOnPaddle LevelTrigger = "paddle"
)

// SoundGranularity selects whether each collision cause has its own sound.
type SoundGranularity string

const (
	SoundsPerCause SoundGranularity = "per_cause"
	SoundsUnified  SoundGranularity = "unified"
)

// Rules is the set of behaviors that differ between game variants.
type Rules struct {
	SpikeSize      int              `yaml:"spike_size" toml:"spike_size"`
	SpikeMargin    int              `yaml:"spike_margin" toml:"spike_margin"` // Ball-start safety zone inflation
	ScoreOnPaddle  bool             `yaml:"score_on_paddle" toml:"score_on_paddle"`
	LevelThreshold int              `yaml:"level_threshold" toml:"level_threshold"`
	LevelTrigger   LevelTrigger     `yaml:"level_trigger" toml:"level_trigger"`
	Sounds         SoundGranularity `yaml:"sounds" toml:"sounds"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the rule set for values the engine cannot honor.
func (r Rules) Validate() error {
	if r.SpikeSize <= 0 {
		return fmt.Errorf("%w: rules.spike_size must be positive, got %d", ErrInvalidConfig, r.SpikeSize)
	}
	if r.SpikeMargin < 0 {
		return fmt.Errorf("%w: rules.spike_margin must not be negative, got %d", ErrInvalidConfig, r.SpikeMargin)
	}
	if r.LevelThreshold < 1 {
		return fmt.Errorf("%w: rules.level_threshold must be at least 1, got %d", ErrInvalidConfig, r.LevelThreshold)
	}
	switch r.LevelTrigger {
	case LevelOnBonus, LevelOnPaddle:
	default:
		return fmt.Errorf("%w: rules.level_trigger %q (want %q or %q)", ErrInvalidConfig, r.LevelTrigger, LevelOnBonus, LevelOnPaddle)
	}
	switch r.Sounds {
	case SoundsPerCause, SoundsUnified:
	default:
		return fmt.Errorf("%w: rules.sounds %q (want %q or %q)", ErrInvalidConfig, r.Sounds, SoundsPerCause, SoundsUnified)
	}
	return nil
}

// Validate checks the whole configuration.
func (c BounceConfig) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"arena.width", c.Arena.Width},
		{"arena.height", c.Arena.Height},
		{"ball.size", c.Ball.Size},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"paddle.step", c.Paddle.Step},
		{"obstacles.width", c.Obstacles.Width},
		{"obstacles.height", c.Obstacles.Height},
		{"obstacles.band_height", c.Obstacles.BandHeight},
		{"bonus.size", c.Bonus.Size},
		{"spawn.max_attempts", c.Spawn.MaxAttempts},
		{"timing.tick_ms", c.Timing.TickMS},
		{"timing.reshuffle_ms", c.Timing.ReshuffleMS},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, p.name, p.value)
		}
	}
	if c.Ball.SpeedX == 0 || c.Ball.SpeedY == 0 {
		return fmt.Errorf("%w: ball speed components must be non-zero, got (%d, %d)",
			ErrInvalidConfig, c.Ball.SpeedX, c.Ball.SpeedY)
	}
	if c.Obstacles.Count < 0 {
		return fmt.Errorf("%w: obstacles.count must not be negative, got %d", ErrInvalidConfig, c.Obstacles.Count)
	}
	return c.Rules.Validate()
}
