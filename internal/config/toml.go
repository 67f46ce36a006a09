// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/emocalc/internal/format"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Display DisplayConfig `toml:"display"`
	Format  FormatConfig  `toml:"format"`
}

// DisplayConfig maps UI settings.
type DisplayConfig struct {
	Title   *string `toml:"title"`
	Emotion *bool   `toml:"emotion"`
	Locale  *string `toml:"locale"`
}

// FormatConfig maps number formatting overrides.
type FormatConfig struct {
	GroupingSeparator    *string  `toml:"grouping-separator"`
	DecimalSeparator     *string  `toml:"decimal-separator"`
	MaxFractionDigits    *int     `toml:"max-fraction-digits"`
	MaxSignificantDigits *int     `toml:"max-significant-digits"`
	ExponentialCutover   *float64 `toml:"exponential-cutover"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Apply overlays the format overrides on p.
func (c FormatConfig) Apply(p format.Policy) format.Policy {
	if c.GroupingSeparator != nil {
		p.Grouping = *c.GroupingSeparator
	}
	if c.DecimalSeparator != nil {
		p.Decimal = *c.DecimalSeparator
	}
	if c.MaxFractionDigits != nil {
		p.MaxFractionDigits = *c.MaxFractionDigits
	}
	if c.MaxSignificantDigits != nil {
		p.MaxSignificantDigits = *c.MaxSignificantDigits
	}
	if c.ExponentialCutover != nil {
		p.ExponentialCutover = *c.ExponentialCutover
	}
	return p
}
