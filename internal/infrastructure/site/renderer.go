package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"

	"sitegen/internal/domain"
	"sitegen/internal/domain/entities"
	"sitegen/internal/ports/output"
)

var _ output.PageRenderer = (*Renderer)(nil)

// Renderer executes the site's html/template set. Templates are parsed
// once; each render clones the set to bind the page's locale into the
// lookup funcs.
//
// Inside templates:
//
//	{{ t "ReadMore" }}                  UI string for the page's locale
//	{{ t "Greeting" "Name" .Author }}   with template placeholders
//	{{ data "site" }}                   localized data document
type Renderer struct {
	base       *template.Template
	translator output.Translator
	data       output.DataSource
}

// NewRenderer parses every *.html template under fsys.
func NewRenderer(fsys fs.FS, translator output.Translator, data output.DataSource) (*Renderer, error) {
	base := template.New("site").Funcs(template.FuncMap{
		// Placeholders so parsing succeeds; rebound per page in RenderPage.
		"t":    func(key string, pairs ...any) (string, error) { return "", nil },
		"data": func(key string) (any, error) { return nil, nil },
	})
	base, err := base.ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("site: parse templates: %w", err)
	}
	return &Renderer{base: base, translator: translator, data: data}, nil
}

// Has reports whether the template set defines the named template.
func (r *Renderer) Has(name string) bool {
	return r.base.Lookup(name) != nil
}

// RenderPage executes the page's template with its data. Translation
// lookups run inside the template; a missing key aborts the render with
// domain.ErrMissingTranslationKey so the build fails instead of emitting a
// page with undefined content.
func (r *Renderer) RenderPage(page entities.Page) ([]byte, error) {
	if !r.Has(page.Template) {
		return nil, fmt.Errorf("site: %w: %q", domain.ErrUnknownTemplate, page.Template)
	}

	tmpl, err := r.base.Clone()
	if err != nil {
		return nil, fmt.Errorf("site: clone templates: %w", err)
	}
	tmpl.Funcs(template.FuncMap{
		"t": func(key string, pairs ...any) (string, error) {
			return r.translator.T(page.Locale, key, pairsToMap(pairs))
		},
		"data": func(key string) (any, error) {
			return r.data.Lookup(key, page.Locale)
		},
	})

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, page.Template, page.Data); err != nil {
		return nil, fmt.Errorf("site: render %s (%s): %w", page.Template, page.Locale, err)
	}
	return buf.Bytes(), nil
}

// pairsToMap turns trailing "key, value, key, value" arguments into the
// template data map go-i18n expects. An odd trailing key is ignored.
func pairsToMap(pairs []any) map[string]any {
	if len(pairs) < 2 {
		return nil
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		k, ok := pairs[i].(string)
		if !ok {
			continue
		}
		m[k] = pairs[i+1]
	}
	return m
}
