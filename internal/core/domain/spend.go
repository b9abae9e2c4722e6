package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SpendUpdate is the write-back for one ad. Spend is required; the other
// fields are kept for display by the admin tooling.
type SpendUpdate struct {
	AdID            string
	Spend           decimal.Decimal
	Multiplier      decimal.Decimal
	EffectiveCPM    decimal.Decimal
	EffectiveCPC    decimal.Decimal
	EffectiveCPE    decimal.Decimal
	CompetitorCount int
	ComputedAt      time.Time
}

// FailureKind classifies a per-ad failure.
type FailureKind string

const (
	FailureInvalidInput FailureKind = "invalid_input"
	FailurePersistence  FailureKind = "persistence_failure"
)

// Failure is one ad that could not be recomputed.
type Failure struct {
	AdID   string      `json:"adId"`
	Kind   FailureKind `json:"kind"`
	Reason string      `json:"reason"`
}

// Warning reports a configuration value that was replaced by a safe
// fallback. AdID is empty for system-wide defaults.
type Warning struct {
	AdID      string `json:"adId,omitempty"`
	Parameter string `json:"parameter"`
	Reason    string `json:"reason"`
}

// BatchResult is the report of one recompute run.
type BatchResult struct {
	RunID      string    `json:"runId"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	Succeeded  []string  `json:"succeeded"`
	Failed     []Failure `json:"failed"`
	Skipped    []string  `json:"skipped,omitempty"`
	Warnings   []Warning `json:"warnings,omitempty"`
}
