package content

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"sitegen/internal/config"
	"sitegen/internal/domain"
	"sitegen/internal/domain/entities"
	"sitegen/internal/ports/output"
)

var _ output.ContentRepository = (*Repository)(nil)

// Repository loads content collections from a filesystem rooted at the
// content directory: one subdirectory per collection, one markdown file
// with YAML front matter per entry. The entry ID is the file path relative
// to the collection root without the .md extension, so a file at
// blog/fr/my-post.md keeps its locale prefix in the ID.
type Repository struct {
	fsys          fs.FS
	collections   []config.Collection
	includeDrafts bool
}

func NewRepository(fsys fs.FS, collections []config.Collection, includeDrafts bool) *Repository {
	return &Repository{
		fsys:          fsys,
		collections:   collections,
		includeDrafts: includeDrafts,
	}
}

// Collections lists the configured collection names.
func (r *Repository) Collections() []string {
	out := make([]string, 0, len(r.collections))
	for _, c := range r.collections {
		out = append(out, c.Name)
	}
	return out
}

// Load reads every entry of the named collection, newest first. Entries
// failing the collection's front matter schema fail the load: broken
// content is caught at build time, not shipped.
func (r *Repository) Load(ctx context.Context, collection string) ([]entities.Entry, error) {
	col, ok := r.lookupCollection(collection)
	if !ok {
		return nil, fmt.Errorf("content: %w: %q", domain.ErrUnknownCollection, collection)
	}

	var entries []entities.Entry
	err := fs.WalkDir(r.fsys, col.Name, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		raw, err := fs.ReadFile(r.fsys, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		id := strings.TrimSuffix(strings.TrimPrefix(path, col.Name+"/"), ".md")
		entry, err := parseEntry(id, col, raw)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if entry.Meta.Draft && !r.includeDrafts {
			return nil
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("content: load %q: %w", collection, err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Meta.Date.Equal(entries[j].Meta.Date) {
			return entries[i].Meta.Date.After(entries[j].Meta.Date)
		}
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

func (r *Repository) lookupCollection(name string) (config.Collection, bool) {
	for _, c := range r.collections {
		if c.Name == name {
			return c, true
		}
	}
	return config.Collection{}, false
}

func parseEntry(id string, col config.Collection, raw []byte) (entities.Entry, error) {
	fm, body, err := splitFrontMatter(raw)
	if err != nil {
		return entities.Entry{}, err
	}

	var fields map[string]any
	if err := yaml.Unmarshal(fm, &fields); err != nil {
		return entities.Entry{}, fmt.Errorf("%w: %v", domain.ErrInvalidFrontMatter, err)
	}

	for _, req := range col.Required {
		if empty(fields[req]) {
			return entities.Entry{}, fmt.Errorf("%w: %q", domain.ErrMissingField, req)
		}
	}

	meta, err := buildMeta(fields)
	if err != nil {
		return entities.Entry{}, err
	}

	return entities.Entry{
		ID:         id,
		Collection: col.Name,
		Meta:       meta,
		Body:       body,
	}, nil
}

// splitFrontMatter separates the leading YAML block, delimited by "---"
// lines, from the markdown body. The block is mandatory: an entry without
// front matter cannot satisfy any schema.
func splitFrontMatter(raw []byte) ([]byte, string, error) {
	const delim = "---"

	s := string(bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n")))
	if !strings.HasPrefix(s, delim+"\n") {
		return nil, "", fmt.Errorf("%w: missing leading --- block", domain.ErrInvalidFrontMatter)
	}
	rest := s[len(delim)+1:]
	end := strings.Index(rest, "\n"+delim)
	if end < 0 {
		return nil, "", fmt.Errorf("%w: unterminated --- block", domain.ErrInvalidFrontMatter)
	}

	fm := rest[:end]
	body := rest[end+len("\n"+delim):]
	body = strings.TrimPrefix(body, "\n")
	return []byte(fm), body, nil
}

func buildMeta(fields map[string]any) (entities.Meta, error) {
	meta := entities.Meta{Extra: map[string]any{}}

	for k, v := range fields {
		switch k {
		case "title":
			meta.Title, _ = v.(string)
		case "description":
			meta.Description, _ = v.(string)
		case "author":
			meta.Author, _ = v.(string)
		case "image":
			meta.Image, _ = v.(string)
		case "draft":
			meta.Draft, _ = v.(bool)
		case "date":
			d, err := parseDate(v)
			if err != nil {
				return entities.Meta{}, err
			}
			meta.Date = d
		case "tags":
			meta.Tags = toStrings(v)
		default:
			meta.Extra[k] = v
		}
	}
	return meta, nil
}

// parseDate accepts what YAML hands us: a native timestamp for unquoted
// dates, or a string in date / RFC 3339 form.
func parseDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case string:
		for _, layout := range []string{"2006-01-02", time.RFC3339} {
			if t, err := time.Parse(layout, d); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable date %v", domain.ErrInvalidFrontMatter, v)
}

func toStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func empty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
