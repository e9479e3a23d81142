package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"sitegen/internal/domain/entities"
	"sitegen/internal/ports/output"
)

// ValidateService checks the localization invariants without writing any
// output: the default locale must define every key, and every content entry
// must belong to a configured locale.
type ValidateService struct {
	locales    entities.LocaleSet
	content    output.ContentRepository
	translator output.Translator
	data       output.DataSource
	log        *zap.Logger
}

func NewValidateService(
	locales entities.LocaleSet,
	content output.ContentRepository,
	translator output.Translator,
	data output.DataSource,
	log *zap.Logger,
) *ValidateService {
	return &ValidateService{
		locales:    locales,
		content:    content,
		translator: translator,
		data:       data,
		log:        log,
	}
}

// Check loads every collection (so front matter schema errors surface here,
// not halfway through a build) and reports locale coverage gaps and entries
// no configured locale will ever pick up.
func (s *ValidateService) Check(ctx context.Context) (*entities.Report, error) {
	report := &entities.Report{
		MissingTextKeys: map[string][]string{},
		MissingDataKeys: map[string][]string{},
	}

	for _, locale := range s.locales.Others() {
		if keys := s.translator.MissingFrom(locale); len(keys) > 0 {
			report.MissingTextKeys[locale] = keys
		}
		if keys := s.data.MissingFrom(locale); len(keys) > 0 {
			report.MissingDataKeys[locale] = keys
		}
	}

	for _, name := range s.content.Collections() {
		entries, err := s.content.Load(ctx, name)
		if err != nil {
			return nil, err
		}
		for _, id := range s.locales.Orphans(entries) {
			report.OrphanEntries = append(report.OrphanEntries, fmt.Sprintf("%s/%s", name, id))
		}
	}

	if report.Clean() {
		s.log.Info("site configuration is clean")
	} else {
		s.log.Warn("site configuration has findings",
			zap.Int("orphan_entries", len(report.OrphanEntries)),
			zap.Int("locales_missing_text", len(report.MissingTextKeys)),
			zap.Int("locales_missing_data", len(report.MissingDataKeys)))
	}
	return report, nil
}
