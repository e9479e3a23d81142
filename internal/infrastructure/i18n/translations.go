package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"sitegen/internal/domain"
	"sitegen/internal/ports/output"
)

// Ensure Translator implements the output.Translator port.
var _ output.Translator = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer. It loads
// one active.<locale>.toml message file per configured locale from the
// given filesystem and resolves keys with a single level of fallback to the
// default locale.
type Translator struct {
	bundle          *goi18n.Bundle
	defaultLocale   string
	defaultLanguage language.Tag
	// keys records the message IDs each locale file defines, used by the
	// check command; go-i18n does not expose its loaded IDs.
	keys map[string]map[string]bool
}

// NewTranslator builds a Translator for the given locales (e.g. ["en","fr"])
// with defaultLocale as the fallback source of truth. A locale without a
// message file is fine — every lookup for it falls back — but the default
// locale's file must exist.
func NewTranslator(fsys fs.FS, defaultLocale string, locales []string) (*Translator, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("i18n: invalid default locale %q: %w", defaultLocale, err)
	}
	bundle := goi18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	t := &Translator{
		bundle:          bundle,
		defaultLocale:   defaultLocale,
		defaultLanguage: tag,
		keys:            make(map[string]map[string]bool, len(locales)),
	}

	for _, locale := range locales {
		file := fmt.Sprintf("active.%s.toml", locale)
		raw, err := fs.ReadFile(fsys, file)
		if err != nil {
			if locale == defaultLocale {
				return nil, fmt.Errorf("i18n: default locale file %s: %w", file, err)
			}
			continue
		}
		if _, err := bundle.ParseMessageFileBytes(raw, file); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", file, err)
		}
		ids, err := messageIDs(raw)
		if err != nil {
			return nil, fmt.Errorf("i18n: index %s: %w", file, err)
		}
		t.keys[locale] = ids
	}

	return t, nil
}

// T renders the message identified by key for the given locale, falling
// back to the default locale. A key missing even there is a configuration
// error: T reports domain.ErrMissingTranslationKey instead of echoing the
// key, so broken localization fails the build rather than ship.
func (t *Translator) T(locale, key string, data map[string]any) (string, error) {
	if key == "" {
		return "", fmt.Errorf("i18n: %w: empty key", domain.ErrMissingTranslationKey)
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := goi18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		// When the requested locale lacks the key but the default defines
		// it, Localize hands back the fallback message alongside a
		// MessageNotFoundErr. That is the fallback working, not a miss.
		var notFound *goi18n.MessageNotFoundErr
		if errors.As(err, &notFound) && msg != "" {
			return msg, nil
		}
		return "", fmt.Errorf("i18n: %w: %q (locales %v)", domain.ErrMissingTranslationKey, key, languages)
	}
	return msg, nil
}

// MissingFrom lists the keys the default locale defines that locale does not.
func (t *Translator) MissingFrom(locale string) []string {
	def := t.keys[t.defaultLocale]
	have := t.keys[locale]

	var missing []string
	for id := range def {
		if !have[id] {
			missing = append(missing, id)
		}
	}
	sort.Strings(missing)
	return missing
}

// messageIDs extracts the top-level message IDs from a TOML message file.
// Both flat (`Key = "text"`) and table (`[Key] other = "text"`) forms count.
func messageIDs(raw []byte) (map[string]bool, error) {
	var doc map[string]any
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(doc))
	for id := range doc {
		ids[id] = true
	}
	return ids, nil
}
