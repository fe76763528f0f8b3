package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// SourceEmbedded is reported when the built-in defaults were used.
const SourceEmbedded = "embedded"

// configNames are tried in order inside each search directory.
var configNames = []string{"bounce.yaml", "bounce.yml", "bounce.toml"}

// FormatFor picks the decoder from a file extension. Anything that is not
// .toml is treated as YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// LoadBounce loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.bounce/configs/bounce.{yaml,toml} ->
// ./configs/bounce.{yaml,toml} -> embedded default.
// Files only need to set the keys they change; the rest keep default values.
func LoadBounce(customPath string) (BounceConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BounceConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data, FormatFor(customPath))
		if err != nil {
			return BounceConfig{}, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	dirs := []string{}
	if userDir := userConfigDir(); userDir != "" {
		dirs = append(dirs, userDir)
	}
	dirs = append(dirs, "configs")

	for _, dir := range dirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if cfg, err := Parse(data, FormatFor(path)); err == nil {
				return cfg, path, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultBounceYAML, FormatYAML)
	if err != nil {
		return DefaultBounceConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes data over the default configuration and validates the result.
func Parse(data []byte, format Format) (BounceConfig, error) {
	cfg := DefaultBounceConfig()

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return BounceConfig{}, fmt.Errorf("failed to parse toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return BounceConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
		}
	default:
		return BounceConfig{}, fmt.Errorf("unknown config format %q", format)
	}

	if err := cfg.Validate(); err != nil {
		return BounceConfig{}, err
	}
	return cfg, nil
}

// Encode writes cfg in the requested format.
func Encode(cfg BounceConfig, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: failed to encode toml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("config: failed to encode yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("config: unknown format %q", format)
	}
}

// userConfigDir returns the user config directory, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bounce", "configs")
}
