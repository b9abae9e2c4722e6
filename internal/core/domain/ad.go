package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ApprovalStatus is the moderation state of an ad.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// BillingStatus is the payment state of an ad.
type BillingStatus string

const (
	BillingUnpaid   BillingStatus = "unpaid"
	BillingPaid     BillingStatus = "paid"
	BillingFailed   BillingStatus = "failed"
	BillingRefunded BillingStatus = "refunded"
)

// Placement is the surface an ad is shown on.
type Placement string

const (
	PlacementFeed     Placement = "feed"
	PlacementReels    Placement = "reels"
	PlacementMessages Placement = "messages"
	PlacementAll      Placement = "all"
)

// DefaultNiche is used for ads that do not name an audience niche.
const DefaultNiche = "general"

// Ad represents an advertisable unit together with its budgeting state.
// Money is kept as decimal to avoid drift across recomputations.
type Ad struct {
	ID             string
	Active         bool
	ApprovalStatus ApprovalStatus
	BillingStatus  BillingStatus
	Placement      Placement
	Targeting      Targeting
	DailyBudget    *decimal.Decimal
	TotalBudget    *decimal.Decimal
	Spend          decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// TargetingErr is set when the stored targeting document could not be
	// decoded. Targeting is then empty and the ad prices at system defaults.
	TargetingErr error
}

// Eligible reports whether the ad takes part in competition grouping.
func (a Ad) Eligible() bool {
	return a.Active && a.ApprovalStatus == ApprovalApproved && a.BillingStatus == BillingPaid
}

// Niche returns the audience niche, falling back to DefaultNiche.
func (a Ad) Niche() string {
	if a.Targeting.Niche == "" {
		return DefaultNiche
	}
	return a.Targeting.Niche
}

// Targeting is the free-form targeting metadata stored with an ad.
type Targeting struct {
	Niche string `json:"niche,omitempty"`
	BidOverrides
}

// BidOverrides holds per-ad price overrides exactly as they were entered.
// Values stay raw so that a malformed entry can be told apart from a
// missing one.
type BidOverrides struct {
	CPM           json.RawMessage `json:"cpm,omitempty"`
	CPC           json.RawMessage `json:"cpc,omitempty"`
	CPE           json.RawMessage `json:"cpe,omitempty"`
	MaxMultiplier json.RawMessage `json:"maxMultiplier,omitempty"`
}
