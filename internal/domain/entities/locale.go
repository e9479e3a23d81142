package entities

import "strings"

// LocaleSet is the fixed set of locales a site is built for, with one
// designated default. It is loaded once from configuration and never
// mutated afterwards; all methods are pure.
type LocaleSet struct {
	Codes   []string
	Default string
}

// Contains reports whether code is one of the configured locales.
func (ls LocaleSet) Contains(code string) bool {
	for _, c := range ls.Codes {
		if c == code {
			return true
		}
	}
	return false
}

// Others returns the configured locales minus the default.
func (ls LocaleSet) Others() []string {
	var out []string
	for _, c := range ls.Codes {
		if c != ls.Default {
			out = append(out, c)
		}
	}
	return out
}

// Resolve derives the active locale from a URL path. If the first path
// segment is a configured locale code that locale is active, otherwise the
// default is. It never fails: unknown segments are normal traffic, not
// configuration mistakes.
func (ls LocaleSet) Resolve(urlPath string) string {
	seg := firstSegment(urlPath)
	if seg != "" && ls.Contains(seg) {
		return seg
	}
	return ls.Default
}

// SplitID splits a content identifier into its locale prefix and the
// remaining slug.
//
// Identifiers carry their locale positionally ("fr/my-post"), so this is a
// convention, not a parse: a first segment that is a configured code is that
// locale's prefix; a segment that merely looks like a locale code (e.g.
// "xx") marks the entry as belonging to no configured locale and ok is
// false; anything else means the identifier is unprefixed and belongs to
// the default locale.
func (ls LocaleSet) SplitID(id string) (locale, slug string, ok bool) {
	seg, rest, found := strings.Cut(id, "/")
	if !found {
		return ls.Default, id, true
	}
	if ls.Contains(seg) {
		return seg, rest, true
	}
	if looksLikeLocale(seg) {
		return "", id, false
	}
	return ls.Default, id, true
}

func firstSegment(urlPath string) string {
	p := strings.TrimPrefix(urlPath, "/")
	seg, _, _ := strings.Cut(p, "/")
	return seg
}

// looksLikeLocale matches the shape of a BCP 47-ish code: "en", "pt-br",
// "fra". Used only to tell an unconfigured locale prefix apart from an
// ordinary nested slug.
func looksLikeLocale(seg string) bool {
	base, region, hasRegion := strings.Cut(seg, "-")
	if len(base) < 2 || len(base) > 3 || !isLowerAlpha(base) {
		return false
	}
	if hasRegion && (len(region) != 2 || !isAlpha(region)) {
		return false
	}
	return true
}

func isLowerAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func isAlpha(s string) bool {
	for _, r := range s {
		lower := r | 0x20
		if lower < 'a' || lower > 'z' {
			return false
		}
	}
	return true
}
