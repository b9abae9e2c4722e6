package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adspend/internal/core/domain"
	"adspend/internal/core/port"
)

// AdRepository implements port.AdCatalog using pgxpool for PostgreSQL.
type AdRepository struct {
	pool *pgxpool.Pool
}

var _ port.AdCatalog = (*AdRepository)(nil)

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

// ListAds returns every ad. Numeric columns are read as text so they land
// in decimals without a float round trip.
func (r *AdRepository) ListAds(ctx context.Context) ([]domain.Ad, error) {
	query := `
        SELECT
            id,
            active,
            approval_status,
            billing_status,
            placement,
            targeting,
            daily_budget::text,
            total_budget::text,
            spend::text,
            created_at,
            updated_at
        FROM ads
        ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Ad, error) {
		var (
			ad           domain.Ad
			targetingRaw []byte
			daily, total *string
			spend        string
		)
		err := row.Scan(
			&ad.ID,
			&ad.Active,
			&ad.ApprovalStatus,
			&ad.BillingStatus,
			&ad.Placement,
			&targetingRaw,
			&daily,
			&total,
			&spend,
			&ad.CreatedAt,
			&ad.UpdatedAt,
		)
		if err != nil {
			return ad, err
		}
		// an unreadable targeting document prices like an ad without
		// targeting; the engine reports it as a warning
		ad.Targeting, ad.TargetingErr = domain.ParseTargeting(targetingRaw)
		if ad.DailyBudget, err = optionalDecimal(daily); err != nil {
			return ad, fmt.Errorf("ad %s daily_budget: %w", ad.ID, err)
		}
		if ad.TotalBudget, err = optionalDecimal(total); err != nil {
			return ad, fmt.Errorf("ad %s total_budget: %w", ad.ID, err)
		}
		if ad.Spend, err = parseDecimal(spend); err != nil {
			return ad, fmt.Errorf("ad %s spend: %w", ad.ID, err)
		}
		return ad, nil
	})
}

// UpdateSpend overwrites the computed fields of one ad. Running it twice
// with the same update leaves the row unchanged.
func (r *AdRepository) UpdateSpend(ctx context.Context, up domain.SpendUpdate) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE ads SET
            spend = $2,
            multiplier = $3,
            effective_cpm = $4,
            effective_cpc = $5,
            effective_cpe = $6,
            competitor_count = $7,
            spend_computed_at = $8
        WHERE id = $1`,
		up.AdID,
		up.Spend.String(),
		up.Multiplier.String(),
		up.EffectiveCPM.String(),
		up.EffectiveCPC.String(),
		up.EffectiveCPE.String(),
		up.CompetitorCount,
		up.ComputedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrAdNotFound, up.AdID)
	}
	return nil
}
