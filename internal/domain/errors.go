package domain

import "errors"

// Domain errors.
var (
	// ErrMissingTranslationKey means a key resolved to nothing even after
	// falling back to the default locale. Builds fail on it rather than
	// ship pages with undefined content.
	ErrMissingTranslationKey = errors.New("translation key missing from default locale")

	ErrUnknownCollection  = errors.New("unknown content collection")
	ErrInvalidFrontMatter = errors.New("invalid front matter")
	ErrMissingField       = errors.New("required front matter field missing")
	ErrUnknownTemplate    = errors.New("unknown template")
)
