package redis

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adspend/internal/core/domain"
)

// setupTestRedis spins up an in-memory Redis and returns a counter on it.
func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *EventCounter) {
	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(s.Close)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return s, NewEventCounter(client, "test:")
}

func TestCountEvents(t *testing.T) {
	s, counter := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, counter.SetCounts(ctx, "a1", domain.EventCounts{Impressions: 2000, Clicks: 3, Likes: 4, Comments: 5, Shares: 6}))
	s.HSet("test:events:ad:a2", "impressions", "10")
	s.HSet("test:events:ad:bad", "impressions", "10", "clicks", "many")
	s.HSet("test:events:ad:neg", "impressions", "-4")

	set, err := counter.CountEvents(ctx, []string{"a1", "a2", "bad", "neg", "absent"})
	require.NoError(t, err)

	c, err := set.Lookup("a1")
	require.NoError(t, err)
	assert.Equal(t, domain.EventCounts{Impressions: 2000, Clicks: 3, Likes: 4, Comments: 5, Shares: 6}, c)
	assert.Equal(t, int64(15), c.Engagements())

	c, err = set.Lookup("a2")
	require.NoError(t, err)
	assert.Equal(t, domain.EventCounts{Impressions: 10}, c)

	_, err = set.Lookup("bad")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), `clicks: "many" is not an integer`)

	// negative values are passed through; the aggregator rejects them
	c, err = set.Lookup("neg")
	require.NoError(t, err)
	assert.Equal(t, int64(-4), c.Impressions)

	_, err = set.Lookup("absent")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 3, set.Len())
}

func TestCountEventsWrongTypeKeyRejectsOnlyThatAd(t *testing.T) {
	s, counter := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, counter.SetCounts(ctx, "good", domain.EventCounts{Impressions: 1000, Clicks: 2}))
	require.NoError(t, s.Set("test:events:ad:corrupt", "oops"))

	set, err := counter.CountEvents(ctx, []string{"good", "corrupt"})
	require.NoError(t, err)

	c, err := set.Lookup("good")
	require.NoError(t, err)
	assert.Equal(t, domain.EventCounts{Impressions: 1000, Clicks: 2}, c)

	_, err = set.Lookup("corrupt")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "WRONGTYPE")
	assert.Equal(t, 1, set.Len())
}

func TestCountEventsBatches(t *testing.T) {
	_, counter := setupTestRedis(t)
	counter.batchSize = 3
	ctx := context.Background()

	ids := make([]string, 10)
	for i := range ids {
		ids[i] = fmt.Sprintf("ad-%d", i)
		require.NoError(t, counter.SetCounts(ctx, ids[i], domain.EventCounts{Clicks: int64(i)}))
	}

	set, err := counter.CountEvents(ctx, ids)
	require.NoError(t, err)
	assert.Equal(t, 10, set.Len())
	c, err := set.Lookup("ad-9")
	require.NoError(t, err)
	assert.Equal(t, int64(9), c.Clicks)
}

func TestCountEventsEmpty(t *testing.T) {
	_, counter := setupTestRedis(t)

	set, err := counter.CountEvents(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestCountEventsUnavailable(t *testing.T) {
	s, counter := setupTestRedis(t)
	require.NoError(t, counter.SetCounts(context.Background(), "a", domain.EventCounts{}))
	s.Close()

	_, err := counter.CountEvents(context.Background(), []string{"a"})
	assert.Error(t, err)
}
