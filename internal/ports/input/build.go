package input

import (
	"context"

	"sitegen/internal/domain/entities"
)

type BuildUseCase interface {
	// Build renders the whole site, every configured locale, into the
	// output directory.
	Build(ctx context.Context) error
}

type ValidateUseCase interface {
	// Check verifies the localization invariants without writing output:
	// the default locale must be complete, and every content entry must
	// belong to a configured locale.
	Check(ctx context.Context) (*entities.Report, error)
}
