// Package namefilter screens generated names against banned words and names.
//
// Names are folded before matching, so homoglyphs, zero-width spacers and
// glitch marks added by variance do not hide a banned term.
package namefilter

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chromox/forge/internal/variance"
)

// ErrExhausted is returned when no allowed name is found within the attempt budget.
var ErrExhausted = errors.New("no allowed name within attempt limit")

// Config holds the name filter configuration
type Config struct {
	Enabled     bool     `yaml:"enabled" env:"FORGE_NAMEFILTER_ENABLED"`
	BannedWords []string `yaml:"banned_words" env:"FORGE_NAMEFILTER_BANNED_WORDS" envSeparator:","`
	BannedNames []string `yaml:"banned_names" env:"FORGE_NAMEFILTER_BANNED_NAMES" envSeparator:","`
}

// Result contains the outcome of checking a name
type Result struct {
	Allowed bool   // Whether the name is allowed
	Match   string // Banned term that matched (if not allowed)
}

// NameFilter handles name validation against banned words and names
type NameFilter struct {
	enabled     bool
	bannedWords []string // Folded banned words (partial match)
	bannedNames []string // Folded banned names (whole name or single word)
}

// New creates a new NameFilter from a Config
func New(cfg *Config) *NameFilter {
	if cfg == nil {
		return &NameFilter{enabled: false}
	}

	nf := &NameFilter{
		enabled:     cfg.Enabled,
		bannedWords: fold(cfg.BannedWords),
		bannedNames: fold(cfg.BannedNames),
	}
	return nf
}

func fold(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(variance.Fold(term))
		if term != "" {
			out = append(out, term)
		}
	}
	return out
}

// LoadConfig loads name filter configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read name filter config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse name filter config: %w", err)
	}

	return &cfg, nil
}

// Check validates a name against the filter rules
func (nf *NameFilter) Check(name string) Result {
	if !nf.enabled {
		return Result{Allowed: true}
	}

	folded := variance.Fold(name)
	words := strings.FieldsFunc(folded, func(r rune) bool { return r == ' ' || r == '-' })

	for _, banned := range nf.bannedNames {
		if strings.TrimSpace(folded) == banned {
			return Result{Allowed: false, Match: banned}
		}
		for _, w := range words {
			if w == banned {
				return Result{Allowed: false, Match: banned}
			}
		}
	}

	// Separators are dropped so "ad min" still matches "admin".
	compact := strings.Join(words, "")
	for _, word := range nf.bannedWords {
		if strings.Contains(folded, word) || strings.Contains(compact, word) {
			return Result{Allowed: false, Match: word}
		}
	}

	return Result{Allowed: true}
}

// Reroll returns the first seed from seed, seed+1, ... whose generated name
// passes the filter, trying at most attempts seeds.
func (nf *NameFilter) Reroll(seed int64, attempts int, name func(seed int64) string) (int64, error) {
	for i := 0; i < attempts; i++ {
		if nf.Check(name(seed + int64(i))).Allowed {
			return seed + int64(i), nil
		}
	}
	return seed, fmt.Errorf("seed %d, %d attempts: %w", seed, attempts, ErrExhausted)
}

// IsEnabled returns whether the filter is enabled
func (nf *NameFilter) IsEnabled() bool {
	return nf.enabled
}
