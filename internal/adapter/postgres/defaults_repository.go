package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
	"adspend/internal/core/port"
)

// DefaultsRepository implements port.DefaultsStore on the single-row
// bidding_defaults table.
type DefaultsRepository struct {
	pool *pgxpool.Pool
}

var _ port.DefaultsStore = (*DefaultsRepository)(nil)

// NewDefaultsRepository returns a new repository instance.
func NewDefaultsRepository(pool *pgxpool.Pool) *DefaultsRepository {
	return &DefaultsRepository{pool: pool}
}

// GetDefaults reads the singleton row. The boolean result is false when
// the row does not exist yet. Numeric columns are read as text so they land
// in decimals without a float round trip.
func (r *DefaultsRepository) GetDefaults(ctx context.Context) (domain.BiddingDefaults, bool, error) {
	var (
		d                            domain.BiddingDefaults
		cpm, cpc, cpe, maxMult, step string
	)
	err := r.pool.QueryRow(ctx, `
        SELECT cpm::text, cpc::text, cpe::text, max_multiplier::text, competitor_step::text, updated_at
        FROM bidding_defaults WHERE id = 1`).
		Scan(&cpm, &cpc, &cpe, &maxMult, &step, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.BiddingDefaults{}, false, nil
	}
	if err != nil {
		return domain.BiddingDefaults{}, false, err
	}

	fields := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"cpm", cpm, &d.CPM},
		{"cpc", cpc, &d.CPC},
		{"cpe", cpe, &d.CPE},
		{"max_multiplier", maxMult, &d.MaxMultiplier},
		{"competitor_step", step, &d.CompetitorStep},
	}
	for _, f := range fields {
		v, err := parseDecimal(f.raw)
		if err != nil {
			return domain.BiddingDefaults{}, false, fmt.Errorf("bidding_defaults.%s: %w", f.name, err)
		}
		*f.dst = v
	}
	return d, true, nil
}

// SaveDefaults upserts the singleton row.
func (r *DefaultsRepository) SaveDefaults(ctx context.Context, d domain.BiddingDefaults) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO bidding_defaults (id, cpm, cpc, cpe, max_multiplier, competitor_step, updated_at)
        VALUES (1, $1, $2, $3, $4, $5, $6)
        ON CONFLICT (id) DO UPDATE SET
            cpm = EXCLUDED.cpm,
            cpc = EXCLUDED.cpc,
            cpe = EXCLUDED.cpe,
            max_multiplier = EXCLUDED.max_multiplier,
            competitor_step = EXCLUDED.competitor_step,
            updated_at = EXCLUDED.updated_at`,
		d.CPM.String(), d.CPC.String(), d.CPE.String(), d.MaxMultiplier.String(), d.CompetitorStep.String(), d.UpdatedAt)
	return err
}
