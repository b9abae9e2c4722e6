package port

import (
	"context"

	"adspend/internal/core/domain"
)

// EventCounter returns cumulative delivery counts for many ads in one call.
// Ads without counts are simply absent from the returned set; counts that
// exist but cannot be parsed are reported through EventCountSet.Reject.
type EventCounter interface {
	CountEvents(ctx context.Context, adIDs []string) (*domain.EventCountSet, error)
}
