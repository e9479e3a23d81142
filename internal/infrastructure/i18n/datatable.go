package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"sitegen/internal/domain"
	"sitegen/internal/ports/output"
)

var _ output.DataSource = (*DataTable)(nil)

// DataTable holds the per-locale structured data documents (site metadata,
// nav, FAQ, team, testimonials) that pages render from. Layout on disk is
// <locale>/<key>.json under the data root. Loaded once, immutable after.
type DataTable struct {
	defaultLocale string
	tables        map[string]map[string]any
}

// NewDataTable loads every <locale>/<key>.json document for the configured
// locales. A locale directory may be absent (all lookups fall back), but a
// present file that fails to decode is an error.
func NewDataTable(fsys fs.FS, defaultLocale string, locales []string) (*DataTable, error) {
	dt := &DataTable{
		defaultLocale: defaultLocale,
		tables:        make(map[string]map[string]any, len(locales)),
	}

	for _, locale := range locales {
		entries, err := fs.ReadDir(fsys, locale)
		if err != nil {
			continue
		}
		table := make(map[string]any)
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			file := path.Join(locale, e.Name())
			raw, err := fs.ReadFile(fsys, file)
			if err != nil {
				return nil, fmt.Errorf("data: read %s: %w", file, err)
			}
			var doc any
			if err := json.Unmarshal(raw, &doc); err != nil {
				return nil, fmt.Errorf("data: parse %s: %w", file, err)
			}
			table[strings.TrimSuffix(e.Name(), ".json")] = doc
		}
		dt.tables[locale] = table
	}

	return dt, nil
}

// Lookup returns the document for key in locale, the default locale's
// document when locale lacks it, and domain.ErrMissingTranslationKey when
// even the default locale has nothing for key.
func (dt *DataTable) Lookup(key, locale string) (any, error) {
	if doc, ok := dt.tables[locale][key]; ok {
		return doc, nil
	}
	if doc, ok := dt.tables[dt.defaultLocale][key]; ok {
		return doc, nil
	}
	return nil, fmt.Errorf("data: %w: %q (locale %q)", domain.ErrMissingTranslationKey, key, locale)
}

// Keys lists the data-keys locale defines, sorted.
func (dt *DataTable) Keys(locale string) []string {
	table := dt.tables[locale]
	out := make([]string, 0, len(table))
	for k := range table {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// MissingFrom lists the keys the default locale defines that locale does not.
func (dt *DataTable) MissingFrom(locale string) []string {
	have := dt.tables[locale]

	var missing []string
	for k := range dt.tables[dt.defaultLocale] {
		if _, ok := have[k]; !ok {
			missing = append(missing, k)
		}
	}
	sort.Strings(missing)
	return missing
}
