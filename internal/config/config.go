// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/primer/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // Logger settings under [logger]
	Demos  DemosConfig   `toml:"demos"`  // Demo inputs under [demos]
}

// DemosConfig holds the inputs demos run with.
type DemosConfig struct {
	Separator       string   `toml:"separator"`
	Words           []string `toml:"words"`
	Names           []string `toml:"names"`
	RandomNames     bool     `toml:"random_names"` // Generate record names instead of Names
	RandomMin       int      `toml:"random_min"`
	RandomMax       int      `toml:"random_max"`
	SetSamples      int      `toml:"set_samples"`
	CopyResult      bool     `toml:"copy_result"`
	SystemClipboard bool     `toml:"system_clipboard"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Demos: DemosConfig{
			Separator:  DefaultSeparator,
			Words:      append([]string(nil), DefaultWords...),
			Names:      append([]string(nil), DefaultNames...),
			RandomMin:  DefaultRandomMin,
			RandomMax:  DefaultRandomMax,
			SetSamples: DefaultSetSamples,
		},
	}
}

// DefaultPath returns the per-user config file location, or "" if the
// user config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes a TOML file over cfg. Keys absent from the file
// keep their current values. A missing file is not an error.
// Unrecognized keys are returned so the caller can warn once logging is up.
func loadFromFile(filePath string, cfg *Config) ([]string, error) {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	var unknown []string
	for _, key := range metadata.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return unknown, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Demos.RandomMax < c.Demos.RandomMin {
		c.Demos.RandomMin = defaults.Demos.RandomMin
		c.Demos.RandomMax = defaults.Demos.RandomMax
	}
	if c.Demos.SetSamples <= 0 {
		c.Demos.SetSamples = defaults.Demos.SetSamples
	}
	if len(c.Demos.Names) == 0 {
		c.Demos.Names = defaults.Demos.Names
	}
	// Empty Words and an empty Separator are valid inputs.
}

// Load builds a configuration from defaults, the file at configFilePath
// (or DefaultPath when empty) and flag overrides, then validates it.
// It returns any unrecognized file keys alongside the config.
func Load(configFilePath string, flags *Flags) (*Config, []string, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultPath()
	}

	var unknown []string
	if effectivePath != "" {
		var err error
		unknown, err = loadFromFile(effectivePath, cfg)
		if err != nil {
			return nil, nil, err
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, unknown, nil
}
