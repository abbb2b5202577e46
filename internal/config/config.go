// Package config parses the optional gamelist.toml presentation settings.
// The data file location is not configurable.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the config file looked up in the working directory.
const FileName = "gamelist.toml"

// DefaultAccentColor is the default menu accent color (indigo).
const DefaultAccentColor = "#7D56F4"

// hexColorRe matches a 6-digit hex color string like "#7D56F4".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the top-level gamelist.toml configuration.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Prompt  PromptConfig  `toml:"prompt"`
}

// DisplayConfig controls how the menu is rendered.
type DisplayConfig struct {
	AccentColor string `toml:"accent_color"`
	Color       bool   `toml:"color"` // false renders plain text
}

// PromptConfig controls how yes/no answers are read.
type PromptConfig struct {
	Affirmative []string `toml:"affirmative"` // answers counted as "yes", compared lower-cased
}

// Validate checks the configuration and returns all found issues joined
// together.
func (c *Config) Validate() error {
	var errs []error

	if c.Display.AccentColor != "" && !hexColorRe.MatchString(c.Display.AccentColor) {
		errs = append(errs, fmt.Errorf("display.accent_color must be a hex color (e.g. \"#7D56F4\")"))
	}

	if len(c.Prompt.Affirmative) == 0 {
		errs = append(errs, fmt.Errorf("prompt.affirmative must list at least one answer"))
	}
	for _, a := range c.Prompt.Affirmative {
		if strings.TrimSpace(a) == "" {
			errs = append(errs, fmt.Errorf("prompt.affirmative must not contain blank answers"))
			break
		}
	}

	return errors.Join(errs...)
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		Display: DisplayConfig{
			AccentColor: DefaultAccentColor,
			Color:       true,
		},
		Prompt: PromptConfig{
			Affirmative: []string{"y"},
		},
	}
}

// Load reads the config at path. If path is empty, FileName in the current
// directory is used, and a missing file yields Defaults. An explicit path
// must exist. Unknown keys are rejected as likely typos.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		path = FileName
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
	}

	// Replace rather than append to the default answers.
	cfg.Prompt.Affirmative = nil
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, strings.Join(keys, ", "))
	}

	if !meta.IsDefined("prompt", "affirmative") {
		cfg.Prompt.Affirmative = Defaults().Prompt.Affirmative
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}

// IsAffirmative reports whether answer counts as "yes". The answer is
// trimmed and lower-cased before comparison.
func (c *Config) IsAffirmative(answer string) bool {
	answer = strings.ToLower(strings.TrimSpace(answer))
	for _, a := range c.Prompt.Affirmative {
		if strings.ToLower(strings.TrimSpace(a)) == answer {
			return true
		}
	}
	return false
}
