package entities

// Page is one renderable output page: a template name, the path it is
// written to under the output root, and the data handed to the template.
type Page struct {
	Locale   string
	Template string
	OutPath  string
	Data     map[string]any
}

// Report is the outcome of validating a site's localization and content
// configuration. Missing keys in non-default locales are informational
// (fallback covers them); orphan entries and load errors are defects.
type Report struct {
	// MissingTextKeys maps each non-default locale to the UI-string keys it
	// lacks relative to the default locale.
	MissingTextKeys map[string][]string
	// MissingDataKeys maps each non-default locale to the data-keys it
	// lacks relative to the default locale.
	MissingDataKeys map[string][]string
	// OrphanEntries lists content identifiers prefixed with an unconfigured
	// locale code; such entries appear in no locale's build.
	OrphanEntries []string
}

// Clean reports whether the site has nothing to warn about.
func (r *Report) Clean() bool {
	if len(r.OrphanEntries) > 0 {
		return false
	}
	for _, keys := range r.MissingTextKeys {
		if len(keys) > 0 {
			return false
		}
	}
	for _, keys := range r.MissingDataKeys {
		if len(keys) > 0 {
			return false
		}
	}
	return true
}
