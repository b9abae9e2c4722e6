package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
	"adspend/internal/core/port"
)

// CounterWriter stores event counts for an ad. Only the Redis counter
// accepts writes; the ClickHouse log is filled by the tracker.
type CounterWriter interface {
	SetCounts(ctx context.Context, adID string, counts domain.EventCounts) error
}

// Seed inserts demo ads, bidding defaults and, when counters is not nil,
// event counts. Existing rows are left untouched so seeding can be repeated.
func Seed(ctx context.Context, pool *pgxpool.Pool, defaults port.DefaultsStore, counters CounterWriter) error {
	r := rand.New(rand.NewPCG(42, 7))

	if _, found, err := defaults.GetDefaults(ctx); err != nil {
		return err
	} else if !found {
		d := domain.SafeDefaults()
		d.UpdatedAt = time.Now().UTC()
		if err = defaults.SaveDefaults(ctx, d); err != nil {
			return err
		}
	}

	placements := []domain.Placement{
		domain.PlacementFeed, domain.PlacementReels, domain.PlacementMessages, domain.PlacementAll,
	}
	niches := []string{"", "fitness", "travel", "gaming"}
	approvals := []domain.ApprovalStatus{
		domain.ApprovalApproved, domain.ApprovalApproved, domain.ApprovalApproved, domain.ApprovalPending,
	}

	for i := 1; i <= 40; i++ {
		id := fmt.Sprintf("demo-ad-%03d", i)
		targeting := map[string]any{}
		if niche := niches[r.IntN(len(niches))]; niche != "" {
			targeting["niche"] = niche
		}
		if i%5 == 0 {
			targeting["cpm"] = 1.25
			targeting["maxMultiplier"] = 3
		}
		tgtJSON, err := json.Marshal(targeting)
		if err != nil {
			return err
		}

		var totalBudget *string
		if i%3 == 0 {
			b := decimal.NewFromInt(int64(5 + r.IntN(50))).String()
			totalBudget = &b
		}

		billing := domain.BillingPaid
		if i%7 == 0 {
			billing = domain.BillingUnpaid
		}

		_, err = pool.Exec(ctx, `INSERT INTO ads
    (id, active, approval_status, billing_status, placement, targeting, total_budget)
VALUES ($1, $2, $3, $4, $5, $6, $7::numeric) ON CONFLICT (id) DO NOTHING`,
			id, i%11 != 0, string(approvals[r.IntN(len(approvals))]), string(billing),
			string(placements[r.IntN(len(placements))]), tgtJSON, totalBudget)
		if err != nil {
			return fmt.Errorf("seed ad %s: %w", id, err)
		}

		if counters == nil {
			continue
		}
		counts := domain.EventCounts{
			Impressions: int64(r.IntN(20000)),
			Clicks:      int64(r.IntN(200)),
			Likes:       int64(r.IntN(100)),
			Comments:    int64(r.IntN(30)),
			Shares:      int64(r.IntN(10)),
		}
		if err = counters.SetCounts(ctx, id, counts); err != nil {
			return fmt.Errorf("seed counts %s: %w", id, err)
		}
	}
	return nil
}
