// Package config loads forge.yaml and applies FORGE_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/chromox/forge/internal/forge"
	"github.com/chromox/forge/internal/identity"
	"github.com/chromox/forge/internal/logger"
	"github.com/chromox/forge/internal/lore"
	"github.com/chromox/forge/internal/namefilter"
	"github.com/chromox/forge/internal/relic"
)

// Output formats accepted by OutputConfig.Format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// ErrInvalid is wrapped by Validate errors.
var ErrInvalid = errors.New("invalid config")

// Config holds all forge configuration.
type Config struct {
	Logging    logger.Config     `yaml:"logging"`
	Generation GenerationConfig  `yaml:"generation"`
	Tables     TablesConfig      `yaml:"tables"`
	NameFilter namefilter.Config `yaml:"namefilter"`
	Output     OutputConfig      `yaml:"output"`
}

// GenerationConfig holds default generation parameters. Command-line flags
// override them.
type GenerationConfig struct {
	Heritage        string  `yaml:"heritage" env:"FORGE_HERITAGE"`
	Gender          string  `yaml:"gender" env:"FORGE_GENDER"`
	HeritageBlend   bool    `yaml:"heritage_blend" env:"FORGE_HERITAGE_BLEND"`
	Mononym         bool    `yaml:"mononym" env:"FORGE_MONONYM"`
	MononymStrategy string  `yaml:"mononym_strategy" env:"FORGE_MONONYM_STRATEGY"`
	Relic           bool    `yaml:"relic" env:"FORGE_RELIC"`
	Era             string  `yaml:"era" env:"FORGE_ERA"`
	Skin            string  `yaml:"skin" env:"FORGE_SKIN"`
	Variance        float64 `yaml:"variance" env:"FORGE_VARIANCE"`
}

// TablesConfig selects the lore tables.
type TablesConfig struct {
	// Dir overrides the embedded tables with a directory of YAML files.
	// Empty uses the embedded tables.
	Dir string `yaml:"dir" env:"FORGE_TABLES_DIR"`
}

// OutputConfig controls how the CLI writes characters.
type OutputConfig struct {
	Format string `yaml:"format" env:"FORGE_OUTPUT_FORMAT"`

	// RerollAttempts bounds how many successive seeds are tried when the
	// name filter rejects a name.
	RerollAttempts int `yaml:"reroll_attempts" env:"FORGE_REROLL_ATTEMPTS"`

	// Workers is the batch concurrency.
	Workers int `yaml:"workers" env:"FORGE_WORKERS"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Logging: logger.DefaultConfig(),
		Output: OutputConfig{
			Format:         FormatText,
			RerollAttempts: 16,
			Workers:        4,
		},
	}
}

// LoadConfig loads configuration from a YAML file and then the environment.
// A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the values the generator does not clamp itself.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatJSON, FormatYAML, FormatText:
	default:
		return fmt.Errorf("%w: output format %q", ErrInvalid, c.Output.Format)
	}
	if c.Output.RerollAttempts < 1 {
		return fmt.Errorf("%w: reroll_attempts must be at least 1", ErrInvalid)
	}
	if c.Output.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1", ErrInvalid)
	}
	if _, err := c.Generation.Params(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Params converts the configured defaults into generation parameters.
// Empty enumerations stay unset and resolve from the stream.
func (g GenerationConfig) Params() (forge.Params, error) {
	p := forge.Params{
		Heritage:      g.Heritage,
		HeritageBlend: g.HeritageBlend,
		Mononym:       g.Mononym,
		Relic:         g.Relic,
		Skin:          g.Skin,
		Variance:      g.Variance,
	}

	var err error
	if g.Gender != "" {
		if p.Gender, err = identity.ParseGender(g.Gender); err != nil {
			return forge.Params{}, err
		}
	}
	if g.MononymStrategy != "" {
		if p.MononymStrategy, err = identity.ParseMononymStrategy(g.MononymStrategy); err != nil {
			return forge.Params{}, err
		}
	}
	if g.Era != "" {
		if p.Era, err = relic.ParseEra(g.Era); err != nil {
			return forge.Params{}, err
		}
	}
	return p, nil
}

// Load returns the configured tables.
func (t TablesConfig) Load() (*lore.Tables, error) {
	if t.Dir == "" {
		return lore.Default(), nil
	}
	tables, err := lore.LoadDir(t.Dir)
	if err != nil {
		return nil, fmt.Errorf("load tables from %s: %w", t.Dir, err)
	}
	return tables, nil
}
