// Package urlpath builds the locale-prefixed paths a built site serves
// from: the default locale lives at the root, every other locale under its
// own "/<locale>/" prefix.
package urlpath

import "path"

// URL returns the site-relative URL path for the given segments, with a
// trailing slash: URL("fr", "en", "blog", "post") == "/fr/blog/post/".
func URL(locale, defaultLocale string, segments ...string) string {
	parts := append(prefix(locale, defaultLocale), segments...)
	p := "/" + path.Join(parts...)
	if p == "/" {
		return p
	}
	return p + "/"
}

// File returns the output file, relative to the output root, backing the
// same URL: File("fr", "en", "blog", "post") == "fr/blog/post/index.html".
func File(locale, defaultLocale string, segments ...string) string {
	parts := append(prefix(locale, defaultLocale), segments...)
	parts = append(parts, "index.html")
	return path.Join(parts...)
}

func prefix(locale, defaultLocale string) []string {
	if locale == defaultLocale {
		return nil
	}
	return []string{locale}
}
