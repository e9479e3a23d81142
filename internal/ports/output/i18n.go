package output

// Translator exposes a minimal i18n contract for short UI strings.
// Implementations provide message lookup + templating for a given locale,
// with one level of fallback to the default locale.
type Translator interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	// A key absent even from the default locale is a configuration error
	// and yields domain.ErrMissingTranslationKey.
	T(locale, key string, data map[string]any) (string, error)

	// MissingFrom lists the keys the default locale defines that locale
	// does not. Informational: fallback covers them at render time.
	MissingFrom(locale string) []string
}

// DataSource resolves named localized data documents (site metadata, nav
// items, FAQ entries) for a locale, falling back to the default locale.
type DataSource interface {
	// Lookup returns the decoded JSON document for key in locale, the
	// default locale's document when locale lacks the key, and
	// domain.ErrMissingTranslationKey when even the default lacks it.
	Lookup(key, locale string) (any, error)

	// Keys lists the data-keys the given locale defines, sorted.
	Keys(locale string) []string

	// MissingFrom lists the keys the default locale defines that locale
	// does not.
	MissingFrom(locale string) []string
}
