package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config is the site configuration loaded from site.toml, with a few
// environment overrides for values that differ between build environments.
type Config struct {
	BaseURL     string       `toml:"base_url"`
	Locales     Locales      `toml:"locales"`
	Paths       Paths        `toml:"paths"`
	Collections []Collection `toml:"collections"`
	Build       Build        `toml:"build"`
}

type Locales struct {
	Codes   []string `toml:"codes"`
	Default string   `toml:"default"`
}

type Paths struct {
	Content   string `toml:"content"`
	Data      string `toml:"data"`
	I18n      string `toml:"i18n"`
	Templates string `toml:"templates"`
	Output    string `toml:"output"`
}

// Collection declares one content collection and the front matter fields
// every entry of it must carry.
//
// Entry files live under content/<name>/. A first-level subdirectory whose
// name is locale-shaped (two or three lowercase letters, optionally with a
// region like "pt-br") is read as a locale prefix: configured locales
// select their entries, anything else is excluded from every build and
// flagged by `sitegen check`. Keep ordinary grouping directories out of
// that shape ("guides/" is fine, "faq/" is not).
type Collection struct {
	Name     string   `toml:"name"`
	Required []string `toml:"required"`
}

type Build struct {
	IncludeDrafts bool `toml:"include_drafts"`
}

// Load reads the configuration file, applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (CI, Docker).
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := defaults()
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if v := os.Getenv("SITE_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("SITE_OUTPUT_DIR"); v != "" {
		cfg.Paths.Output = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Paths: Paths{
			Content:   "content",
			Data:      "data",
			I18n:      "i18n",
			Templates: "templates",
			Output:    "dist",
		},
	}
}

// validate applies every rule on the loaded configuration.
func (c *Config) validate() error {
	if len(c.Locales.Codes) == 0 {
		return fmt.Errorf("config: locales.codes must list at least one locale")
	}

	seen := map[string]bool{}
	for _, code := range c.Locales.Codes {
		if strings.TrimSpace(code) == "" {
			return fmt.Errorf("config: locales.codes contains an empty code")
		}
		if seen[code] {
			return fmt.Errorf("config: locale %q listed twice", code)
		}
		seen[code] = true
	}

	if c.Locales.Default == "" {
		return fmt.Errorf("config: locales.default is required")
	}
	if !seen[c.Locales.Default] {
		return fmt.Errorf("config: default locale %q is not in locales.codes", c.Locales.Default)
	}

	names := map[string]bool{}
	for _, col := range c.Collections {
		if strings.TrimSpace(col.Name) == "" {
			return fmt.Errorf("config: collection with empty name")
		}
		if names[col.Name] {
			return fmt.Errorf("config: collection %q declared twice", col.Name)
		}
		names[col.Name] = true
	}

	if c.BaseURL != "" {
		parsed, err := url.Parse(c.BaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid base_url %q: %w", c.BaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid base_url %q: scheme or host missing", c.BaseURL)
		}
	}

	for _, p := range []struct{ name, value string }{
		{"paths.content", c.Paths.Content},
		{"paths.data", c.Paths.Data},
		{"paths.i18n", c.Paths.I18n},
		{"paths.templates", c.Paths.Templates},
		{"paths.output", c.Paths.Output},
	} {
		if strings.TrimSpace(p.value) == "" {
			return fmt.Errorf("config: %s must not be empty", p.name)
		}
	}

	return nil
}

// CollectionNames returns the declared collection names in order.
func (c *Config) CollectionNames() []string {
	out := make([]string, 0, len(c.Collections))
	for _, col := range c.Collections {
		out = append(out, col.Name)
	}
	return out
}
