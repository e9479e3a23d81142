package output

import "sitegen/internal/domain/entities"

// PageRenderer renders one output page through the site's template set.
type PageRenderer interface {
	// RenderPage executes the page's template with its data. An unknown
	// template name yields domain.ErrUnknownTemplate; a missing
	// translation surfaces domain.ErrMissingTranslationKey.
	RenderPage(page entities.Page) ([]byte, error)

	// Has reports whether the template set defines the named template.
	Has(name string) bool
}

// SiteWriter persists rendered pages under the output root. It only ever
// touches the output directory.
type SiteWriter interface {
	// Write stores data at the given path relative to the output root,
	// creating parent directories as needed.
	Write(relPath string, data []byte) error

	// Clean empties the output root so stale pages from earlier builds
	// cannot survive a rename or deletion.
	Clean() error
}
