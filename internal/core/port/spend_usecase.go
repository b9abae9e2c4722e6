package port

import (
	"context"

	"adspend/internal/core/domain"
)

// SpendUseCase defines the operations exposed by the spend engine. It is
// the primary port used by the HTTP adapter and the scheduler.
type SpendUseCase interface {
	// Recompute prices every ad and persists the result. Per-ad problems
	// are reported in the batch result; only a failed bulk read returns an
	// error wrapping domain.ErrReadFailure. If ctx is cancelled the partial
	// result is returned together with the context error.
	Recompute(ctx context.Context) (*domain.BatchResult, error)

	// GetDefaults returns the defaults the next run will use.
	GetDefaults(ctx context.Context) (*DefaultsView, error)

	// UpdateDefaults validates and stores new defaults. They take effect
	// on the next run.
	UpdateDefaults(ctx context.Context, defaults domain.BiddingDefaults) (*DefaultsView, error)
}

// DefaultsView is the effective configuration after sanitising. Stored is
// false when nothing has been saved and the built-in values apply.
type DefaultsView struct {
	Defaults domain.BiddingDefaults `json:"defaults"`
	Stored   bool                   `json:"stored"`
	Warnings []domain.Warning       `json:"warnings,omitempty"`
}
