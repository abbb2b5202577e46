package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"display.accent_color", cfg.Display.AccentColor, DefaultAccentColor},
		{"display.color", cfg.Display.Color, true},
		{"prompt.affirmative count", len(cfg.Prompt.Affirmative), 1},
		{"prompt.affirmative[0]", cfg.Prompt.Affirmative[0], "y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		path := writeConfig(t, `
[display]
accent_color = "#FF6B6B"
color = false

[prompt]
affirmative = ["y", "yes"]
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}

		tests := []struct {
			name string
			got  any
			want any
		}{
			{"display.accent_color", cfg.Display.AccentColor, "#FF6B6B"},
			{"display.color", cfg.Display.Color, false},
			{"prompt.affirmative", strings.Join(cfg.Prompt.Affirmative, ","), "y,yes"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if tt.got != tt.want {
					t.Errorf("got %v, want %v", tt.got, tt.want)
				}
			})
		}
	})

	t.Run("partial config uses defaults", func(t *testing.T) {
		path := writeConfig(t, `
[display]
color = false
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Display.AccentColor != DefaultAccentColor {
			t.Errorf("display.accent_color: got %q, want default", cfg.Display.AccentColor)
		}
		if strings.Join(cfg.Prompt.Affirmative, ",") != "y" {
			t.Errorf("prompt.affirmative: got %v, want [y]", cfg.Prompt.Affirmative)
		}
	})

	t.Run("missing explicit file returns error", func(t *testing.T) {
		if _, err := Load("/nonexistent/gamelist.toml"); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("invalid toml returns error", func(t *testing.T) {
		if _, err := Load(writeConfig(t, "not valid [[[ toml")); err == nil {
			t.Error("expected error for invalid TOML")
		}
	})

	t.Run("unknown keys return error", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[display]\naccent_colour = \"#FFFFFF\"\n"))
		if err == nil {
			t.Fatal("expected error for unknown key")
		}
		if !strings.Contains(err.Error(), "accent_colour") {
			t.Errorf("error should name the key: %v", err)
		}
	})

	t.Run("invalid values return error", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[display]\naccent_color = \"purple\"\n[prompt]\naffirmative = []\n"))
		if err == nil {
			t.Fatal("expected validation error")
		}
		for _, want := range []string{"display.accent_color", "prompt.affirmative"} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("error should mention %s: %v", want, err)
			}
		}
	})
}

func TestLoadFromWorkingDirectory(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		origDir, _ := os.Getwd()
		t.Cleanup(func() { os.Chdir(origDir) })
		if err := os.Chdir(t.TempDir()); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load("")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Display.AccentColor != DefaultAccentColor || !cfg.Display.Color {
			t.Errorf("got %+v, want defaults", cfg.Display)
		}
	})

	t.Run("reads gamelist.toml", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, FileName), []byte("[display]\ncolor = false\n"), 0644); err != nil {
			t.Fatal(err)
		}
		origDir, _ := os.Getwd()
		t.Cleanup(func() { os.Chdir(origDir) })
		if err := os.Chdir(dir); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load("")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Display.Color {
			t.Error("display.color: got true, want false")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"empty accent color is allowed", func(c *Config) { c.Display.AccentColor = "" }, ""},
		{"short hex color", func(c *Config) { c.Display.AccentColor = "#FFF" }, "display.accent_color"},
		{"no affirmative answers", func(c *Config) { c.Prompt.Affirmative = nil }, "prompt.affirmative"},
		{"blank affirmative answer", func(c *Config) { c.Prompt.Affirmative = []string{"y", "  "} }, "blank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestIsAffirmative(t *testing.T) {
	cfg := Defaults()
	cfg.Prompt.Affirmative = []string{"y", "Yes"}

	tests := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"Y", true},
		{"  y  ", true},
		{"yes", true},
		{"n", false},
		{"", false},
		{"yep", false},
	}
	for _, tt := range tests {
		if got := cfg.IsAffirmative(tt.answer); got != tt.want {
			t.Errorf("IsAffirmative(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}
