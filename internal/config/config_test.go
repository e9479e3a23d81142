package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegen/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const validConfig = `
base_url = "https://example.com"

[locales]
codes = ["en", "fr"]
default = "en"

[[collections]]
name = "blog"
required = ["title", "date"]

[[collections]]
name = "solutions"
required = ["title"]
`

func TestLoad(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", cfg.BaseURL)
	assert.Equal(t, []string{"en", "fr"}, cfg.Locales.Codes)
	assert.Equal(t, "en", cfg.Locales.Default)
	assert.Equal(t, []string{"blog", "solutions"}, cfg.CollectionNames())

	// Path defaults apply when the file does not set them.
	assert.Equal(t, "content", cfg.Paths.Content)
	assert.Equal(t, "dist", cfg.Paths.Output)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SITE_BASE_URL", "https://staging.example.com")
	t.Setenv("SITE_OUTPUT_DIR", "out")

	cfg, err := config.Load(writeConfig(t, validConfig))
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com", cfg.BaseURL)
	assert.Equal(t, "out", cfg.Paths.Output)
}

func TestLoadRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no locales", "[locales]\ncodes = []\ndefault = \"en\"\n"},
		{"default not configured", "[locales]\ncodes = [\"en\"]\ndefault = \"fr\"\n"},
		{"duplicate locale", "[locales]\ncodes = [\"en\", \"en\"]\ndefault = \"en\"\n"},
		{"missing default", "[locales]\ncodes = [\"en\"]\n"},
		{"duplicate collection", `
[locales]
codes = ["en"]
default = "en"
[[collections]]
name = "blog"
[[collections]]
name = "blog"
`},
		{"bad base url", `
base_url = "not a url"
[locales]
codes = ["en"]
default = "en"
`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, c.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
