package entities

import "time"

// Entry is a single document from a content collection (blog post, author,
// solution page). The loader produces entries whose ID may still embed a
// locale prefix; FilterByLocale resolves that into the explicit Locale and
// Slug fields so downstream code never re-parses identifiers.
type Entry struct {
	ID         string
	Collection string
	Locale     string // empty until assigned by FilterByLocale
	Slug       string // ID with any locale prefix stripped
	Meta       Meta
	Body       string // raw markdown
}

// Meta is the front matter shared by every collection. Fields a collection
// does not use stay zero; anything not modelled here lands in Extra.
type Meta struct {
	Title       string
	Description string
	Date        time.Time
	Author      string
	Image       string
	Tags        []string
	Draft       bool
	Extra       map[string]any
}

// FilterByLocale returns the subset of entries belonging to locale, with
// locale prefixes stripped from their working identifiers.
//
// Entries whose ID starts with "<locale>/" match and are re-keyed to the
// bare slug; unprefixed entries belong to the default locale; entries
// prefixed with an unconfigured locale code belong to no locale at all and
// are dropped from every result. Entries that already carry an explicit
// Locale (a previous filter's output) are matched on that field directly,
// so re-filtering is a no-op.
func (ls LocaleSet) FilterByLocale(entries []Entry, locale string) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Locale != "" {
			if e.Locale == locale {
				out = append(out, e)
			}
			continue
		}
		entryLocale, slug, ok := ls.SplitID(e.ID)
		if !ok || entryLocale != locale {
			continue
		}
		e.Locale = entryLocale
		e.Slug = slug
		e.ID = slug
		out = append(out, e)
	}
	return out
}

// Orphans returns the IDs of entries that belong to no configured locale
// (their identifier starts with a locale-shaped but unconfigured prefix).
// The check command reports these so a half-configured language shows up
// at build time instead of silently vanishing from every page.
func (ls LocaleSet) Orphans(entries []Entry) []string {
	var out []string
	for _, e := range entries {
		if e.Locale != "" {
			continue
		}
		if _, _, ok := ls.SplitID(e.ID); !ok {
			out = append(out, e.ID)
		}
	}
	return out
}
