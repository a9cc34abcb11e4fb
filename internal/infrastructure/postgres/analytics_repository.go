package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/isokohq/isoko-api/internal/domain"
	"github.com/isokohq/isoko-api/internal/domain/entity"
	"github.com/isokohq/isoko-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// eventColumns maps each event type to its daily counter column. The map is
// the whitelist that keeps event names out of raw SQL.
var eventColumns = map[string]string{
	entity.EventPageView:         "page_views",
	entity.EventUniqueVisitor:    "unique_visitors",
	entity.EventContactClick:     "contact_clicks",
	entity.EventPhoneClick:       "phone_clicks",
	entity.EventEmailClick:       "email_clicks",
	entity.EventWebsiteClick:     "website_clicks",
	entity.EventDirectionRequest: "direction_requests",
	entity.EventSearchAppearance: "search_appearances",
	entity.EventSearchClick:      "search_clicks",
	entity.EventReviewView:       "review_views",
	entity.EventPhotoView:        "photo_views",
}

const analyticsCounters = `page_views, unique_visitors, contact_clicks, phone_clicks, email_clicks,
	website_clicks, direction_requests, search_appearances, search_clicks, review_views, photo_views`

// AnalyticsRepo AnalyticsRepository implementation over the daily fact table.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository builds the adapter. Pass pool or read gateway (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// IncrementDaily upserts the (business, date) row and bumps the mapped
// counter. ON CONFLICT absorbs the race between two first-events-of-the-day,
// and the relative increment (c = c + 1) cannot lose concurrent updates.
func (r *AnalyticsRepo) IncrementDaily(ctx context.Context, businessID string, day time.Time, eventType string) error {
	column, ok := eventColumns[eventType]
	if !ok {
		return domain.ErrInvalidInput
	}
	query := fmt.Sprintf(`
		INSERT INTO business_analytics (id, business_id, date, %s, created_at, updated_at)
		VALUES ($1, $2, $3, 1, now(), now())
		ON CONFLICT (business_id, date)
		DO UPDATE SET %s = business_analytics.%s + 1, updated_at = now()`,
		column, column, column)
	_, err := r.q.Exec(ctx, query, uuid.New().String(), businessID, day)
	if err != nil {
		return fmt.Errorf("increment daily %s: %w", eventType, err)
	}
	return nil
}

// SumRange sums every counter over [from, to]. Missing days count as zero.
func (r *AnalyticsRepo) SumRange(ctx context.Context, businessID string, from, to time.Time) (entity.AnalyticsTotals, error) {
	var t entity.AnalyticsTotals
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(page_views), 0), COALESCE(SUM(unique_visitors), 0),
		       COALESCE(SUM(contact_clicks), 0), COALESCE(SUM(phone_clicks), 0),
		       COALESCE(SUM(email_clicks), 0), COALESCE(SUM(website_clicks), 0),
		       COALESCE(SUM(direction_requests), 0), COALESCE(SUM(search_appearances), 0),
		       COALESCE(SUM(search_clicks), 0), COALESCE(SUM(review_views), 0),
		       COALESCE(SUM(photo_views), 0)
		FROM business_analytics
		WHERE business_id = $1 AND date BETWEEN $2 AND $3`, businessID, from, to).Scan(
		&t.PageViews, &t.UniqueVisitors, &t.ContactClicks, &t.PhoneClicks, &t.EmailClicks,
		&t.WebsiteClicks, &t.DirectionRequests, &t.SearchAppearances, &t.SearchClicks,
		&t.ReviewViews, &t.PhotoViews,
	)
	if err != nil {
		return entity.AnalyticsTotals{}, fmt.Errorf("analytics sum range: %w", err)
	}
	return t, nil
}

// DailySeries returns the stored rows in [from, to] ordered by date.
// Days without activity have no row.
func (r *AnalyticsRepo) DailySeries(ctx context.Context, businessID string, from, to time.Time) ([]*entity.BusinessAnalytics, error) {
	query := `
		SELECT id, business_id, date, ` + analyticsCounters + `, created_at, updated_at
		FROM business_analytics
		WHERE business_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date`
	rows, err := r.q.Query(ctx, query, businessID, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics daily series: %w", err)
	}
	defer rows.Close()

	var list []*entity.BusinessAnalytics
	for rows.Next() {
		var a entity.BusinessAnalytics
		if err := rows.Scan(
			&a.ID, &a.BusinessID, &a.Date,
			&a.PageViews, &a.UniqueVisitors, &a.ContactClicks, &a.PhoneClicks, &a.EmailClicks,
			&a.WebsiteClicks, &a.DirectionRequests, &a.SearchAppearances, &a.SearchClicks,
			&a.ReviewViews, &a.PhotoViews,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan analytics row: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
