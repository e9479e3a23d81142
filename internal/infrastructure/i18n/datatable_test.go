package i18n_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegen/internal/domain"
	"sitegen/internal/infrastructure/i18n"
)

func dataFS() fstest.MapFS {
	return fstest.MapFS{
		"en/site.json": {Data: []byte(`{"title": "Acme", "tagline": "We build things"}`)},
		"en/nav.json":  {Data: []byte(`[{"label": "Home", "href": "/"}]`)},
		"en/faq.json":  {Data: []byte(`[{"q": "What?", "a": "This."}]`)},
		"fr/site.json": {Data: []byte(`{"title": "Acme", "tagline": "Nous construisons"}`)},
	}
}

func newDataTable(t *testing.T) *i18n.DataTable {
	t.Helper()
	dt, err := i18n.NewDataTable(dataFS(), "en", []string{"en", "fr"})
	require.NoError(t, err)
	return dt
}

func TestDataTableLookup(t *testing.T) {
	dt := newDataTable(t)

	doc, err := dt.Lookup("site", "fr")
	require.NoError(t, err)
	site, ok := doc.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Nous construisons", site["tagline"])
}

func TestDataTableFallback(t *testing.T) {
	dt := newDataTable(t)

	// Every key of the default locale resolves for every configured
	// locale, through fallback when needed.
	for _, locale := range []string{"en", "fr"} {
		for _, key := range dt.Keys("en") {
			doc, err := dt.Lookup(key, locale)
			require.NoError(t, err, "key %q locale %q", key, locale)
			assert.NotNil(t, doc)
		}
	}

	doc, err := dt.Lookup("nav", "fr")
	require.NoError(t, err)
	nav, ok := doc.([]any)
	require.True(t, ok)
	assert.Len(t, nav, 1)
}

func TestDataTableMissingKey(t *testing.T) {
	dt := newDataTable(t)

	_, err := dt.Lookup("pricing", "en")
	assert.ErrorIs(t, err, domain.ErrMissingTranslationKey)

	_, err = dt.Lookup("pricing", "fr")
	assert.ErrorIs(t, err, domain.ErrMissingTranslationKey)
}

func TestDataTableKeys(t *testing.T) {
	dt := newDataTable(t)

	assert.Equal(t, []string{"faq", "nav", "site"}, dt.Keys("en"))
	assert.Equal(t, []string{"site"}, dt.Keys("fr"))
	assert.Equal(t, []string{"faq", "nav"}, dt.MissingFrom("fr"))
}

func TestDataTableBadJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"en/site.json": {Data: []byte(`{"title":`)},
	}
	_, err := i18n.NewDataTable(fsys, "en", []string{"en"})
	assert.Error(t, err)
}
