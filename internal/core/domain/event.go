package domain

import (
	"fmt"
	"math"
)

// EventCounts are the cumulative delivery counts of one ad as reported by
// the event tracker.
type EventCounts struct {
	Impressions int64 `json:"impressions"`
	Clicks      int64 `json:"clicks"`
	Likes       int64 `json:"likes"`
	Comments    int64 `json:"comments"`
	Shares      int64 `json:"shares"`
}

// Engagements is the sum of likes, comments and shares.
func (c EventCounts) Engagements() int64 {
	return c.Likes + c.Comments + c.Shares
}

// Validate rejects negative counts and engagement totals that do not fit
// in an int64. Either points at an upstream defect and is never clamped.
func (c EventCounts) Validate() error {
	fields := []struct {
		name  string
		value int64
	}{
		{"impressions", c.Impressions},
		{"clicks", c.Clicks},
		{"likes", c.Likes},
		{"comments", c.Comments},
		{"shares", c.Shares},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%w: negative %s count %d", ErrInvalidInput, f.name, f.value)
		}
	}
	if c.Likes > math.MaxInt64-c.Comments || c.Likes+c.Comments > math.MaxInt64-c.Shares {
		return fmt.Errorf("%w: engagement total overflows (likes %d, comments %d, shares %d)",
			ErrInvalidInput, c.Likes, c.Comments, c.Shares)
	}
	return nil
}

// EventCountSet is the answer to one bulk event count lookup. Entries that
// the tracker returned but could not be parsed are kept as rejections so
// the reason reaches the batch result.
type EventCountSet struct {
	counts   map[string]EventCounts
	rejected map[string]error
}

// NewEventCountSet returns an empty set.
func NewEventCountSet() *EventCountSet {
	return &EventCountSet{
		counts:   make(map[string]EventCounts),
		rejected: make(map[string]error),
	}
}

// Put stores counts for an ad.
func (s *EventCountSet) Put(adID string, c EventCounts) {
	delete(s.rejected, adID)
	s.counts[adID] = c
}

// Reject records that the counts for an ad were unusable.
func (s *EventCountSet) Reject(adID string, reason error) {
	delete(s.counts, adID)
	s.rejected[adID] = reason
}

// Len returns the number of ads with usable counts.
func (s *EventCountSet) Len() int {
	return len(s.counts)
}

// Lookup returns the counts for an ad or an ErrInvalidInput describing why
// there are none.
func (s *EventCountSet) Lookup(adID string) (EventCounts, error) {
	if reason, ok := s.rejected[adID]; ok {
		return EventCounts{}, fmt.Errorf("%w: malformed event counts: %v", ErrInvalidInput, reason)
	}
	c, ok := s.counts[adID]
	if !ok {
		return EventCounts{}, fmt.Errorf("%w: missing event counts", ErrInvalidInput)
	}
	return c, nil
}
