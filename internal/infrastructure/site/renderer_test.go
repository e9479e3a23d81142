package site_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegen/internal/domain"
	"sitegen/internal/domain/entities"
	"sitegen/internal/infrastructure/i18n"
	"sitegen/internal/infrastructure/site"
)

func newRenderer(t *testing.T, templates fstest.MapFS) *site.Renderer {
	t.Helper()

	tr, err := i18n.NewTranslator(fstest.MapFS{
		"active.en.toml": {Data: []byte("ReadMore = \"Read more\"\nGreeting = \"Hello {{.Name}}\"\n")},
		"active.fr.toml": {Data: []byte("ReadMore = \"Lire la suite\"\n")},
	}, "en", []string{"en", "fr"})
	require.NoError(t, err)

	dt, err := i18n.NewDataTable(fstest.MapFS{
		"en/site.json": {Data: []byte(`{"title": "Acme"}`)},
	}, "en", []string{"en", "fr"})
	require.NoError(t, err)

	r, err := site.NewRenderer(templates, tr, dt)
	require.NoError(t, err)
	return r
}

func TestRenderPage(t *testing.T) {
	r := newRenderer(t, fstest.MapFS{
		"index.html": {Data: []byte(
			`<h1>{{ (data "site").title }}</h1><a>{{ t "ReadMore" }}</a><p>{{ t "Greeting" "Name" .Author }}</p>`,
		)},
	})

	out, err := r.RenderPage(entities.Page{
		Locale:   "fr",
		Template: "index.html",
		Data:     map[string]any{"Author": "Ada"},
	})
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<h1>Acme</h1>")
	assert.Contains(t, html, "Lire la suite")
	// Greeting is absent from fr: the default locale's message renders.
	assert.Contains(t, html, "Hello Ada")
}

func TestRenderPageMissingTranslationFailsBuild(t *testing.T) {
	r := newRenderer(t, fstest.MapFS{
		"index.html": {Data: []byte(`{{ t "Nope" }}`)},
	})

	_, err := r.RenderPage(entities.Page{Locale: "en", Template: "index.html"})
	assert.ErrorIs(t, err, domain.ErrMissingTranslationKey)
}

func TestRenderPageUnknownTemplate(t *testing.T) {
	r := newRenderer(t, fstest.MapFS{
		"index.html": {Data: []byte(`ok`)},
	})

	assert.True(t, r.Has("index.html"))
	assert.False(t, r.Has("missing.html"))

	_, err := r.RenderPage(entities.Page{Locale: "en", Template: "missing.html"})
	assert.ErrorIs(t, err, domain.ErrUnknownTemplate)
}
