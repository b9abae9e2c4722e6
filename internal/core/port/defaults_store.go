package port

import (
	"context"

	"adspend/internal/core/domain"
)

// DefaultsStore persists the system bidding defaults singleton.
type DefaultsStore interface {
	// GetDefaults returns the stored defaults. The boolean is false when
	// no defaults have been saved yet.
	GetDefaults(ctx context.Context) (domain.BiddingDefaults, bool, error)
	// SaveDefaults replaces the stored defaults.
	SaveDefaults(ctx context.Context, defaults domain.BiddingDefaults) error
}
