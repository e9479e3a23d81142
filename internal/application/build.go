package application

import (
	"context"
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"sitegen/internal/domain/entities"
	"sitegen/internal/ports/output"
	"sitegen/pkg/urlpath"
)

// BuildService renders the whole site: for every configured locale it
// filters each collection, renders the index and the collection pages, and
// writes the tree under the output root. Locale builds are independent of
// each other; output never depends on their order.
type BuildService struct {
	locales  entities.LocaleSet
	baseURL  string
	content  output.ContentRepository
	markdown output.MarkdownRenderer
	renderer output.PageRenderer
	writer   output.SiteWriter
	log      *zap.Logger
}

func NewBuildService(
	locales entities.LocaleSet,
	baseURL string,
	content output.ContentRepository,
	markdown output.MarkdownRenderer,
	renderer output.PageRenderer,
	writer output.SiteWriter,
	log *zap.Logger,
) *BuildService {
	return &BuildService{
		locales:  locales,
		baseURL:  baseURL,
		content:  content,
		markdown: markdown,
		renderer: renderer,
		writer:   writer,
		log:      log,
	}
}

// Build renders every locale into the output directory. The first missing
// translation or broken entry aborts the build.
func (s *BuildService) Build(ctx context.Context) error {
	if err := s.writer.Clean(); err != nil {
		return err
	}

	loaded := map[string][]entities.Entry{}
	for _, name := range s.content.Collections() {
		entries, err := s.content.Load(ctx, name)
		if err != nil {
			return err
		}
		loaded[name] = entries
	}

	pages := 0
	for _, locale := range s.locales.Codes {
		n, err := s.buildLocale(ctx, locale, loaded)
		if err != nil {
			return fmt.Errorf("build %s: %w", locale, err)
		}
		s.log.Info("locale built", zap.String("locale", locale), zap.Int("pages", n))
		pages += n
	}

	s.log.Info("site built",
		zap.Int("pages", pages),
		zap.Int("locales", len(s.locales.Codes)))
	return nil
}

func (s *BuildService) buildLocale(ctx context.Context, locale string, loaded map[string][]entities.Entry) (int, error) {
	filtered := map[string][]entities.Entry{}
	for name, entries := range loaded {
		filtered[name] = s.locales.FilterByLocale(entries, locale)
	}

	pages := 0
	emit := func(page entities.Page) error {
		out, err := s.renderer.RenderPage(page)
		if err != nil {
			return err
		}
		if err := s.writer.Write(page.OutPath, out); err != nil {
			return err
		}
		pages++
		return nil
	}

	err := emit(entities.Page{
		Locale:   locale,
		Template: "index.html",
		OutPath:  urlpath.File(locale, s.locales.Default),
		Data:     s.pageData(locale, urlpath.URL(locale, s.locales.Default), map[string]any{"Collections": filtered}),
	})
	if err != nil {
		return 0, err
	}

	for _, name := range s.content.Collections() {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		entries := filtered[name]

		listTemplate := name + ".html"
		if s.renderer.Has(listTemplate) {
			err := emit(entities.Page{
				Locale:   locale,
				Template: listTemplate,
				OutPath:  urlpath.File(locale, s.locales.Default, name),
				Data: s.pageData(locale, urlpath.URL(locale, s.locales.Default, name), map[string]any{
					"Collection": name,
					"Entries":    entries,
				}),
			})
			if err != nil {
				return 0, err
			}
		}

		entryTemplate := name + "-entry.html"
		if !s.renderer.Has(entryTemplate) {
			if len(entries) > 0 {
				s.log.Warn("collection has entries but no entry template",
					zap.String("collection", name),
					zap.String("template", entryTemplate))
			}
			continue
		}

		for _, e := range entries {
			body, err := s.markdown.Render(e.Body)
			if err != nil {
				return 0, fmt.Errorf("%s/%s: %w", name, e.ID, err)
			}
			err = emit(entities.Page{
				Locale:   locale,
				Template: entryTemplate,
				OutPath:  urlpath.File(locale, s.locales.Default, name, e.Slug),
				Data: s.pageData(locale, urlpath.URL(locale, s.locales.Default, name, e.Slug), map[string]any{
					"Entry":   e,
					"Content": template.HTML(body),
				}),
			})
			if err != nil {
				return 0, err
			}
		}
	}

	return pages, nil
}

// pageData assembles the template dot for one page: the page-specific
// values plus the keys every template can rely on.
func (s *BuildService) pageData(locale, urlPath string, extra map[string]any) map[string]any {
	data := map[string]any{
		"Locale":        locale,
		"DefaultLocale": s.locales.Default,
		"Locales":       s.locales.Codes,
		"BaseURL":       s.baseURL,
		"Path":          urlPath,
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}
