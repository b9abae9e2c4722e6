// Package clickhouse counts delivery events straight from the raw event log
// kept in ClickHouse. It is the alternative to the Redis counters when the
// tracker only appends events.
package clickhouse

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/XSAM/otelsql"
	"go.opentelemetry.io/otel/attribute"

	"adspend/internal/core/domain"
	"adspend/internal/core/port"
)

// Event types stored in ad_events.event_type.
const (
	EventImpression = "impression"
	EventClick      = "click"
	EventLike       = "like"
	EventComment    = "comment"
	EventShare      = "share"
)

const createEventsTable = `CREATE TABLE IF NOT EXISTS ad_events (
    timestamp  DateTime,
    event_type LowCardinality(String),
    ad_id      String,
    user_id    String
) ENGINE=MergeTree() ORDER BY (ad_id, event_type, timestamp)`

const countEventsQuery = `SELECT ad_id,
    countIf(event_type = 'impression'),
    countIf(event_type = 'click'),
    countIf(event_type = 'like'),
    countIf(event_type = 'comment'),
    countIf(event_type = 'share')
FROM ad_events
WHERE has(?, ad_id)
GROUP BY ad_id`

const defaultBatchSize = 1000

// Open connects to ClickHouse through an otelsql wrapped driver and makes
// sure the event table exists.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := otelsql.Open("clickhouse", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "clickhouse")),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse open: %w", err)
	}
	db.SetMaxOpenConns(10)
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("clickhouse ping: %w", err)
	}
	if _, err = db.ExecContext(ctx, createEventsTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("clickhouse create table: %w", err)
	}
	return db, nil
}

// EventCounter implements port.EventCounter with one aggregate query per
// batch of ad ids.
type EventCounter struct {
	db        *sql.DB
	batchSize int
}

var _ port.EventCounter = (*EventCounter)(nil)

// NewEventCounter returns a counter querying db, typically opened with
// Open.
func NewEventCounter(db *sql.DB) *EventCounter {
	return &EventCounter{db: db, batchSize: defaultBatchSize}
}

// CountEvents aggregates the event log. The log is complete, so an ad with
// no rows has zero counts rather than missing ones.
func (c *EventCounter) CountEvents(ctx context.Context, adIDs []string) (*domain.EventCountSet, error) {
	set := domain.NewEventCountSet()
	for _, id := range adIDs {
		set.Put(id, domain.EventCounts{})
	}
	for start := 0; start < len(adIDs); start += c.batchSize {
		end := min(start+c.batchSize, len(adIDs))
		rows, err := c.db.QueryContext(ctx, countEventsQuery, adIDs[start:end])
		if err != nil {
			return nil, fmt.Errorf("count events: %w", err)
		}
		err = collect(rows, set)
		_ = rows.Close()
		if err != nil {
			return nil, err
		}
	}
	return set, nil
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func collect(rows rowScanner, set *domain.EventCountSet) error {
	for rows.Next() {
		var (
			adID                                     string
			impressions, clicks, likes, cmts, shares uint64
		)
		if err := rows.Scan(&adID, &impressions, &clicks, &likes, &cmts, &shares); err != nil {
			return fmt.Errorf("scan event counts: %w", err)
		}
		set.Put(adID, domain.EventCounts{
			Impressions: int64(impressions),
			Clicks:      int64(clicks),
			Likes:       int64(likes),
			Comments:    int64(cmts),
			Shares:      int64(shares),
		})
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate event counts: %w", err)
	}
	return nil
}
