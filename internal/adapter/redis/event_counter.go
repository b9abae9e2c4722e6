// Package redis reads per-ad delivery counters kept by the event tracker in
// Redis hashes.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"adspend/internal/core/domain"
	"adspend/internal/core/port"
)

// Hash fields written by the tracker under each ad key.
const (
	FieldImpressions = "impressions"
	FieldClicks      = "clicks"
	FieldLikes       = "likes"
	FieldComments    = "comments"
	FieldShares      = "shares"
)

// defaultBatchSize caps the number of commands per pipeline round trip.
const defaultBatchSize = 500

// EventCounter implements port.EventCounter on hashes named
// <prefix>events:ad:<id>.
type EventCounter struct {
	client    redis.Cmdable
	prefix    string
	batchSize int
}

var _ port.EventCounter = (*EventCounter)(nil)

// NewEventCounter returns a counter reading keys under prefix. The client
// may be a plain client, a cluster client or a ring.
func NewEventCounter(client redis.Cmdable, prefix string) *EventCounter {
	return &EventCounter{client: client, prefix: prefix, batchSize: defaultBatchSize}
}

// Key returns the hash key holding the counters of one ad.
func (c *EventCounter) Key(adID string) string {
	return c.prefix + "events:ad:" + adID
}

// CountEvents fetches all hashes with pipelined HGETALLs. Ads without a
// hash are left out of the set; fields that are absent count as zero. A
// Redis error reply for a single key, such as WRONGTYPE, rejects that ad
// only. Connection and protocol failures abort the whole read.
func (c *EventCounter) CountEvents(ctx context.Context, adIDs []string) (*domain.EventCountSet, error) {
	set := domain.NewEventCountSet()
	for start := 0; start < len(adIDs); start += c.batchSize {
		end := min(start+c.batchSize, len(adIDs))
		batch := adIDs[start:end]

		pipe := c.client.Pipeline()
		cmds := make([]*redis.MapStringStringCmd, len(batch))
		for i, id := range batch {
			cmds[i] = pipe.HGetAll(ctx, c.Key(id))
		}
		if _, err := pipe.Exec(ctx); err != nil && !isReplyError(err) {
			return nil, fmt.Errorf("event counter pipeline: %w", err)
		}

		for i, cmd := range cmds {
			fields, err := cmd.Result()
			if isReplyError(err) {
				set.Reject(batch[i], fmt.Errorf("hgetall %s: %w", c.Key(batch[i]), err))
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("hgetall %s: %w", c.Key(batch[i]), err)
			}
			if len(fields) == 0 {
				continue
			}
			counts, err := parseCounts(fields)
			if err != nil {
				set.Reject(batch[i], err)
				continue
			}
			set.Put(batch[i], counts)
		}
	}
	return set, nil
}

// SetCounts overwrites the counters of one ad. The tracker owns these keys
// in production; this is used for seeding.
func (c *EventCounter) SetCounts(ctx context.Context, adID string, counts domain.EventCounts) error {
	return c.client.HSet(ctx, c.Key(adID),
		FieldImpressions, counts.Impressions,
		FieldClicks, counts.Clicks,
		FieldLikes, counts.Likes,
		FieldComments, counts.Comments,
		FieldShares, counts.Shares,
	).Err()
}

// isReplyError reports whether err is an error reply sent by the server for
// one command, as opposed to a transport failure.
func isReplyError(err error) bool {
	var reply redis.Error
	return errors.As(err, &reply) && !errors.Is(err, redis.Nil)
}

func parseCounts(fields map[string]string) (domain.EventCounts, error) {
	var counts domain.EventCounts
	targets := []struct {
		name string
		dst  *int64
	}{
		{FieldImpressions, &counts.Impressions},
		{FieldClicks, &counts.Clicks},
		{FieldLikes, &counts.Likes},
		{FieldComments, &counts.Comments},
		{FieldShares, &counts.Shares},
	}
	for _, t := range targets {
		raw, ok := fields[t.name]
		if !ok {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.EventCounts{}, fmt.Errorf("%s: %q is not an integer", t.name, raw)
		}
		*t.dst = v
	}
	return counts, nil
}
