package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isokohq/isoko-api/internal/domain"
	"github.com/isokohq/isoko-api/internal/domain/entity"
)

// captureQuerier records the statements a repository emits.
type captureQuerier struct {
	execs []capturedExec
}

type capturedExec struct {
	sql  string
	args []any
}

func (c *captureQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	c.execs = append(c.execs, capturedExec{sql: sql, args: args})
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (c *captureQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	panic("unexpected Query")
}

func (c *captureQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	panic("unexpected QueryRow")
}

func TestIncrementDailyUpsertsRelativeIncrement(t *testing.T) {
	q := &captureQuerier{}
	repo := NewAnalyticsRepository(q)
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	err := repo.IncrementDaily(context.Background(), "biz-1", day, entity.EventPageView)
	require.NoError(t, err)
	require.Len(t, q.execs, 1)

	// The increment must be relative to the stored value so concurrent events
	// on the same (business, date) row never lose an update.
	sql := q.execs[0].sql
	assert.Contains(t, sql, "ON CONFLICT (business_id, date)")
	assert.Contains(t, sql, "DO UPDATE SET page_views = business_analytics.page_views + 1")
	assert.NotContains(t, sql, "page_views = $")
	assert.Equal(t, "biz-1", q.execs[0].args[1])
	assert.Equal(t, day, q.execs[0].args[2])
}

func TestIncrementDailyMapsEventToColumn(t *testing.T) {
	cases := map[string]string{
		entity.EventContactClick:     "contact_clicks = business_analytics.contact_clicks + 1",
		entity.EventPhoneClick:       "phone_clicks = business_analytics.phone_clicks + 1",
		entity.EventSearchAppearance: "search_appearances = business_analytics.search_appearances + 1",
	}
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	for eventType, want := range cases {
		q := &captureQuerier{}
		repo := NewAnalyticsRepository(q)

		err := repo.IncrementDaily(context.Background(), "biz-1", day, eventType)
		require.NoError(t, err)
		require.Len(t, q.execs, 1)
		assert.Contains(t, q.execs[0].sql, want, eventType)
	}
}

func TestIncrementDailyRejectsUnknownEvent(t *testing.T) {
	q := &captureQuerier{}
	repo := NewAnalyticsRepository(q)

	err := repo.IncrementDaily(context.Background(), "biz-1", time.Now(), "page_scroll")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, q.execs, "unknown events must not reach the database")
}

func TestIncrementDailyInsertsFreshRowAtOne(t *testing.T) {
	q := &captureQuerier{}
	repo := NewAnalyticsRepository(q)

	err := repo.IncrementDaily(context.Background(), "biz-1", time.Now(), entity.EventPhotoView)
	require.NoError(t, err)
	require.Len(t, q.execs, 1)

	insert := q.execs[0].sql[:strings.Index(q.execs[0].sql, "ON CONFLICT")]
	assert.Contains(t, insert, "photo_views")
	assert.Contains(t, insert, "VALUES ($1, $2, $3, 1,")
}
