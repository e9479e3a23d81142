package output

import (
	"context"

	"sitegen/internal/domain/entities"
)

// ContentRepository loads content collections from the static content
// pipeline. Entries come back unfiltered: their IDs may still embed locale
// prefixes.
type ContentRepository interface {
	// Load returns every entry of the named collection, drafts excluded
	// unless the repository was configured to include them.
	Load(ctx context.Context, collection string) ([]entities.Entry, error)

	// Collections lists the configured collection names.
	Collections() []string
}

// MarkdownRenderer turns an entry body into HTML.
type MarkdownRenderer interface {
	Render(src string) (string, error)
}
