package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"adspend/internal/core/auction"
	"adspend/internal/core/domain"
	"adspend/internal/core/port"
	"adspend/internal/observability"
)

var tracer = otel.Tracer("adspend/usecase")

// Options tune the per-ad fan-out of a recompute run.
type Options struct {
	// Concurrency bounds how many ads are priced and written at once.
	Concurrency int
	// AdTimeout bounds the write-back of a single ad.
	AdTimeout time.Duration
}

// SpendUseCase recomputes the spend of every ad in the catalog. It
// implements port.SpendUseCase.
type SpendUseCase struct {
	catalog  port.AdCatalog
	events   port.EventCounter
	defaults port.DefaultsStore
	logger   *slog.Logger
	metrics  observability.MetricsRegistry
	opts     Options
	now      func() time.Time

	// runs are serialised; a second trigger waits for the first
	runMu sync.Mutex
}

var _ port.SpendUseCase = (*SpendUseCase)(nil)

// NewSpendUseCase wires the engine to its collaborators. Zero options are
// replaced by a concurrency of 8 and a 5 second per-ad timeout.
func NewSpendUseCase(
	catalog port.AdCatalog,
	events port.EventCounter,
	defaults port.DefaultsStore,
	logger *slog.Logger,
	metrics observability.MetricsRegistry,
	opts Options,
) *SpendUseCase {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 8
	}
	if opts.AdTimeout <= 0 {
		opts.AdTimeout = 5 * time.Second
	}
	if metrics == nil {
		metrics = observability.NewNoOpRegistry()
	}
	return &SpendUseCase{
		catalog:  catalog,
		events:   events,
		defaults: defaults,
		logger:   logger,
		metrics:  metrics,
		opts:     opts,
		now:      time.Now,
	}
}

// outcome is what happened to one ad during a run.
type outcome struct {
	done     bool
	failure  *domain.Failure
	warnings []domain.Warning
	update   domain.SpendUpdate
}

// Recompute runs the full pipeline: snapshot defaults, load ads and event
// counts, group once, then price and persist every ad on a bounded pool.
func (u *SpendUseCase) Recompute(ctx context.Context) (*domain.BatchResult, error) {
	u.runMu.Lock()
	defer u.runMu.Unlock()

	ctx, span := tracer.Start(ctx, "SpendUseCase.Recompute")
	defer span.End()

	start := u.now()
	res := &domain.BatchResult{
		RunID:     uuid.NewString(),
		StartedAt: start.UTC(),
		Succeeded: []string{},
		Failed:    []domain.Failure{},
	}
	logger := u.logger.With(slog.String("run_id", res.RunID))
	span.SetAttributes(attribute.String("run_id", res.RunID))

	fail := func(err error) (*domain.BatchResult, error) {
		u.metrics.IncrementRuns("read_failure")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error("recompute aborted", slog.Any("error", err))
		return nil, err
	}

	defaults, _, warnings, err := u.loadDefaults(ctx)
	if err != nil {
		return fail(err)
	}
	res.Warnings = append(res.Warnings, warnings...)

	ads, err := u.catalog.ListAds(ctx)
	if err != nil {
		return fail(fmt.Errorf("%w: list ads: %w", domain.ErrReadFailure, err))
	}
	ids := make([]string, len(ads))
	for i, ad := range ads {
		ids[i] = ad.ID
	}
	counts, err := u.events.CountEvents(ctx, ids)
	if err != nil {
		return fail(fmt.Errorf("%w: count events: %w", domain.ErrReadFailure, err))
	}

	// Every multiplier depends on the whole eligible population, so the
	// grouping pass must finish before any ad is priced.
	competition := auction.Group(ads)
	span.SetAttributes(
		attribute.Int("ads", len(ads)),
		attribute.Int("groups", competition.Groups()),
	)
	logger.Info("recompute started",
		slog.Int("ads", len(ads)),
		slog.Int("groups", competition.Groups()),
		slog.Int("event_counts", counts.Len()),
	)

	outcomes := make([]outcome, len(ads))
	var g errgroup.Group
	g.SetLimit(u.opts.Concurrency)
	for i := range ads {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			outcomes[i] = u.processAd(ctx, ads[i], counts, competition, defaults)
			return nil
		})
	}
	_ = g.Wait()

	total := decimal.Zero
	var invalid, persistence int
	for i, o := range outcomes {
		res.Warnings = append(res.Warnings, o.warnings...)
		switch {
		case o.failure != nil:
			res.Failed = append(res.Failed, *o.failure)
			if o.failure.Kind == domain.FailureInvalidInput {
				invalid++
			} else {
				persistence++
			}
			logger.Warn("ad recompute failed",
				slog.String("ad_id", o.failure.AdID),
				slog.String("kind", string(o.failure.Kind)),
				slog.String("reason", o.failure.Reason),
			)
		case o.done:
			res.Succeeded = append(res.Succeeded, ads[i].ID)
			total = total.Add(o.update.Spend)
			m, _ := o.update.Multiplier.Float64()
			u.metrics.RecordMultiplier(m)
		default:
			res.Skipped = append(res.Skipped, ads[i].ID)
		}
	}
	for _, w := range res.Warnings {
		u.metrics.IncrementConfigWarnings(w.Parameter)
	}

	res.FinishedAt = u.now().UTC()
	elapsed := res.FinishedAt.Sub(res.StartedAt)
	u.metrics.RecordRunDuration(elapsed)
	u.metrics.AddAdsProcessed("succeeded", len(res.Succeeded))
	u.metrics.AddAdsProcessed(string(domain.FailureInvalidInput), invalid)
	u.metrics.AddAdsProcessed(string(domain.FailurePersistence), persistence)
	u.metrics.AddAdsProcessed("skipped", len(res.Skipped))

	logger.Info("recompute finished",
		slog.Int("succeeded", len(res.Succeeded)),
		slog.Int("failed", len(res.Failed)),
		slog.Int("skipped", len(res.Skipped)),
		slog.Int("warnings", len(res.Warnings)),
		slog.Duration("elapsed", elapsed),
	)

	if err := ctx.Err(); err != nil {
		u.metrics.IncrementRuns("cancelled")
		span.SetStatus(codes.Error, "cancelled")
		return res, fmt.Errorf("recompute cancelled: %w", err)
	}
	u.metrics.IncrementRuns("ok")
	if len(res.Skipped) == 0 {
		f, _ := total.Float64()
		u.metrics.SetCatalogSpend(f)
	}
	return res, nil
}

// processAd prices one ad and writes the result back under its own
// timeout. An ad whose turn comes after cancellation is left untouched.
func (u *SpendUseCase) processAd(
	ctx context.Context,
	ad domain.Ad,
	counts *domain.EventCountSet,
	competition auction.Competition,
	defaults domain.BiddingDefaults,
) outcome {
	if ctx.Err() != nil {
		return outcome{}
	}

	update, warnings, err := priceAd(ad, counts, competition, defaults)
	if err != nil {
		markFailed(ctx, ad.ID, domain.FailureInvalidInput)
		return outcome{
			warnings: warnings,
			failure:  &domain.Failure{AdID: ad.ID, Kind: domain.FailureInvalidInput, Reason: err.Error()},
		}
	}
	update.ComputedAt = u.now().UTC()

	wctx, cancel := context.WithTimeout(ctx, u.opts.AdTimeout)
	defer cancel()
	if err = u.catalog.UpdateSpend(wctx, update); err != nil {
		if ctx.Err() != nil {
			// the run was cancelled mid-write; the ad counts as skipped
			return outcome{}
		}
		err = fmt.Errorf("%w: %w", domain.ErrPersistenceFailure, err)
		markFailed(ctx, ad.ID, domain.FailurePersistence)
		return outcome{
			warnings: warnings,
			failure:  &domain.Failure{AdID: ad.ID, Kind: domain.FailurePersistence, Reason: err.Error()},
		}
	}
	return outcome{done: true, warnings: warnings, update: update}
}

// markFailed records a per-ad failure on the run span.
func markFailed(ctx context.Context, adID string, kind domain.FailureKind) {
	trace.SpanFromContext(ctx).AddEvent("ad failed", trace.WithAttributes(
		attribute.String("ad_id", adID),
		attribute.String("kind", string(kind)),
	))
}

// priceAd runs resolver, multiplier and aggregator for one ad.
func priceAd(
	ad domain.Ad,
	counts *domain.EventCountSet,
	competition auction.Competition,
	defaults domain.BiddingDefaults,
) (domain.SpendUpdate, []domain.Warning, error) {
	var warnings []domain.Warning
	if ad.TargetingErr != nil {
		warnings = append(warnings, domain.Warning{
			AdID:      ad.ID,
			Parameter: "targeting",
			Reason:    fmt.Sprintf("malformed targeting ignored, using system defaults and niche %q: %v", domain.DefaultNiche, ad.TargetingErr),
		})
	}

	resolved := auction.Resolve(ad, defaults)
	for _, name := range resolved.Malformed {
		warnings = append(warnings, domain.Warning{
			AdID:      ad.ID,
			Parameter: name,
			Reason:    "malformed override ignored, using system default",
		})
	}

	c, err := counts.Lookup(ad.ID)
	if err != nil {
		return domain.SpendUpdate{}, warnings, err
	}

	competitors := competition.CompetitorsFor(ad)
	multiplier, ok := auction.Multiplier(competitors, defaults.CompetitorStep, resolved.Params.MaxMultiplier)
	if !ok {
		warnings = append(warnings, domain.Warning{
			AdID:      ad.ID,
			Parameter: "maxMultiplier",
			Reason:    fmt.Sprintf("%v: ceiling %s below 1, multiplier clamped to 1", domain.ErrConfigurationInvalid, resolved.Params.MaxMultiplier),
		})
	}

	spend, err := auction.Spend(c, resolved.Params, multiplier, ad.TotalBudget)
	if err != nil {
		return domain.SpendUpdate{}, warnings, err
	}

	return domain.SpendUpdate{
		AdID:            ad.ID,
		Spend:           spend.Spend,
		Multiplier:      multiplier,
		EffectiveCPM:    spend.EffectiveCPM,
		EffectiveCPC:    spend.EffectiveCPC,
		EffectiveCPE:    spend.EffectiveCPE,
		CompetitorCount: competitors,
	}, warnings, nil
}

// loadDefaults snapshots the stored defaults, falling back to the
// built-in values when nothing has been saved, and sanitises them.
func (u *SpendUseCase) loadDefaults(ctx context.Context) (domain.BiddingDefaults, bool, []domain.Warning, error) {
	stored, found, err := u.defaults.GetDefaults(ctx)
	if err != nil {
		return domain.BiddingDefaults{}, false, nil, fmt.Errorf("%w: load defaults: %w", domain.ErrReadFailure, err)
	}

	var warnings []domain.Warning
	if !found {
		stored = domain.SafeDefaults()
		warnings = append(warnings, domain.Warning{
			Parameter: "defaults",
			Reason:    fmt.Sprintf("%v: no bidding defaults stored, using built-in values", domain.ErrConfigurationInvalid),
		})
	}
	sanitized, fixes := stored.Sanitize()
	for _, w := range fixes {
		w.Reason = fmt.Sprintf("%v: %s", domain.ErrConfigurationInvalid, w.Reason)
		warnings = append(warnings, w)
	}
	return sanitized, found, warnings, nil
}

// GetDefaults returns the defaults the next run will use.
func (u *SpendUseCase) GetDefaults(ctx context.Context) (*port.DefaultsView, error) {
	defaults, found, warnings, err := u.loadDefaults(ctx)
	if err != nil {
		return nil, err
	}
	return &port.DefaultsView{Defaults: defaults, Stored: found, Warnings: warnings}, nil
}

// UpdateDefaults stores new defaults after checking that every price is
// positive, the competitor step is positive and the ceiling is at least 1.
func (u *SpendUseCase) UpdateDefaults(ctx context.Context, defaults domain.BiddingDefaults) (*port.DefaultsView, error) {
	if _, fixes := defaults.Sanitize(); len(fixes) > 0 {
		errs := make([]error, 0, len(fixes))
		for _, w := range fixes {
			errs = append(errs, fmt.Errorf("%s: %s", w.Parameter, w.Reason))
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrConfigurationInvalid, errors.Join(errs...))
	}

	defaults.UpdatedAt = u.now().UTC()
	if err := u.defaults.SaveDefaults(ctx, defaults); err != nil {
		return nil, fmt.Errorf("%w: save defaults: %w", domain.ErrPersistenceFailure, err)
	}
	u.logger.Info("bidding defaults updated",
		slog.String("cpm", defaults.CPM.String()),
		slog.String("cpc", defaults.CPC.String()),
		slog.String("cpe", defaults.CPE.String()),
		slog.String("max_multiplier", defaults.MaxMultiplier.String()),
		slog.String("competitor_step", defaults.CompetitorStep.String()),
	)
	return &port.DefaultsView{Defaults: defaults, Stored: true}, nil
}
