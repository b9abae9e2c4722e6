package clickhouse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adspend/internal/core/domain"
)

type fakeRows struct {
	rows    [][]any
	pos     int
	scanErr error
	err     error
}

func (f *fakeRows) Next() bool {
	if f.pos >= len(f.rows) {
		return false
	}
	f.pos++
	return true
}

func (f *fakeRows) Scan(dest ...any) error {
	if f.scanErr != nil {
		return f.scanErr
	}
	row := f.rows[f.pos-1]
	*dest[0].(*string) = row[0].(string)
	for i := 1; i < len(dest); i++ {
		*dest[i].(*uint64) = row[i].(uint64)
	}
	return nil
}

func (f *fakeRows) Err() error { return f.err }

func TestCollect(t *testing.T) {
	set := domain.NewEventCountSet()
	set.Put("quiet", domain.EventCounts{})
	rows := &fakeRows{rows: [][]any{
		{"a1", uint64(2000), uint64(3), uint64(1), uint64(2), uint64(3)},
	}}

	require.NoError(t, collect(rows, set))

	c, err := set.Lookup("a1")
	require.NoError(t, err)
	assert.Equal(t, domain.EventCounts{Impressions: 2000, Clicks: 3, Likes: 1, Comments: 2, Shares: 3}, c)
	assert.Equal(t, int64(6), c.Engagements())

	c, err = set.Lookup("quiet")
	require.NoError(t, err)
	assert.Equal(t, domain.EventCounts{}, c)
}

func TestCollectErrors(t *testing.T) {
	boom := errors.New("boom")

	err := collect(&fakeRows{rows: [][]any{{"a"}}, scanErr: boom}, domain.NewEventCountSet())
	assert.ErrorIs(t, err, boom)

	err = collect(&fakeRows{err: boom}, domain.NewEventCountSet())
	assert.ErrorIs(t, err, boom)
}
