package port

import (
	"context"

	"adspend/internal/core/domain"
)

// AdCatalog is the outbound port to the ad store. ListAds is the bulk read
// at the start of a run; UpdateSpend is the per-ad write-back.
// Implementations must be safe for concurrent use.
type AdCatalog interface {
	// ListAds returns every ad regardless of lifecycle state.
	ListAds(ctx context.Context) ([]domain.Ad, error)
	// UpdateSpend overwrites the recomputed spend of one ad. It returns
	// domain.ErrAdNotFound when the ad no longer exists.
	UpdateSpend(ctx context.Context, update domain.SpendUpdate) error
}
