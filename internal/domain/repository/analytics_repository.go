package repository

import (
	"context"
	"time"

	"github.com/isokohq/isoko-api/internal/domain/entity"
)

// AnalyticsRepository persistence port for the daily fact rows.
type AnalyticsRepository interface {
	// IncrementDaily lazily creates the (business, date) row and bumps the
	// counter mapped to eventType by one. Implementations must use an upsert
	// so two concurrent first-events-of-the-day cannot both insert.
	IncrementDaily(ctx context.Context, businessID string, day time.Time, eventType string) error

	// SumRange returns counter sums over [from, to] inclusive. Days with no
	// row contribute zero.
	SumRange(ctx context.Context, businessID string, from, to time.Time) (entity.AnalyticsTotals, error)

	// DailySeries returns the existing rows in [from, to] ordered by date.
	DailySeries(ctx context.Context, businessID string, from, to time.Time) ([]*entity.BusinessAnalytics, error)
}
