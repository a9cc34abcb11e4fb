package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/isokohq/isoko-api/internal/application/dto"
	"github.com/isokohq/isoko-api/internal/domain/entity"
)

// GetWeeklyStats returns totals over the trailing 7 days, today inclusive.
func (s *Service) GetWeeklyStats(ctx context.Context, actorID, businessID string) (*dto.PeriodStatsResponse, error) {
	if _, err := s.authorize(ctx, actorID, businessID); err != nil {
		return nil, err
	}
	return s.periodStats(ctx, businessID, weeklyDays)
}

// GetMonthlyStats returns totals over the trailing 30 days, today inclusive.
func (s *Service) GetMonthlyStats(ctx context.Context, actorID, businessID string) (*dto.PeriodStatsResponse, error) {
	if _, err := s.authorize(ctx, actorID, businessID); err != nil {
		return nil, err
	}
	return s.periodStats(ctx, businessID, monthlyDays)
}

func (s *Service) periodStats(ctx context.Context, businessID string, days int) (*dto.PeriodStatsResponse, error) {
	today := s.today()
	totals, err := s.analytics.SumRange(ctx, businessID, today.AddDate(0, 0, -(days-1)), today)
	if err != nil {
		return nil, err
	}
	return toPeriodStats(totals, days), nil
}

// GetGrowthStats compares the current 7- and 30-day windows against the
// immediately preceding windows of equal length.
func (s *Service) GetGrowthStats(ctx context.Context, actorID, businessID string) (*dto.GrowthStatsResponse, error) {
	if _, err := s.authorize(ctx, actorID, businessID); err != nil {
		return nil, err
	}
	w, err := s.fetchWindows(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return toGrowthStats(w), nil
}

// GetOverview assembles the full dashboard payload. The four window sums are
// fetched concurrently; they are independent reads against the same table.
func (s *Service) GetOverview(ctx context.Context, actorID, businessID string) (*dto.AnalyticsOverviewResponse, error) {
	if _, err := s.authorize(ctx, actorID, businessID); err != nil {
		return nil, err
	}
	w, err := s.fetchWindows(ctx, businessID)
	if err != nil {
		return nil, err
	}

	today := s.today()
	series, err := s.analytics.DailySeries(ctx, businessID, today.AddDate(0, 0, -(monthlyDays-1)), today)
	if err != nil {
		return nil, err
	}
	daily := make([]dto.DailyStatResponse, 0, len(series))
	for _, row := range series {
		daily = append(daily, dto.DailyStatResponse{
			Date:     row.Date.Format("2006-01-02"),
			Views:    row.PageViews,
			Contacts: row.ContactClicks + row.PhoneClicks + row.EmailClicks,
		})
	}

	monthly := w.cur30
	return &dto.AnalyticsOverviewResponse{
		BusinessID:     businessID,
		Weekly:         *toPeriodStats(w.cur7, weeklyDays),
		Monthly:        *toPeriodStats(monthly, monthlyDays),
		Growth:         *toGrowthStats(w),
		Daily:          daily,
		ConversionRate: conversionRate(monthly.Contacts(), monthly.PageViews),
	}, nil
}

// OverviewPDF renders the overview as a downloadable report.
func (s *Service) OverviewPDF(ctx context.Context, actorID, businessID string) ([]byte, error) {
	b, err := s.authorize(ctx, actorID, businessID)
	if err != nil {
		return nil, err
	}
	if s.reports == nil {
		return nil, fmt.Errorf("report generator not configured")
	}
	ov, err := s.GetOverview(ctx, actorID, businessID)
	if err != nil {
		return nil, err
	}
	return s.reports.Overview(b, ov)
}

// windows holds the four trailing sums the growth figures compare.
type windows struct {
	cur7, prior7, cur30, prior30 entity.AnalyticsTotals
}

// fetchWindows runs the four range sums concurrently.
func (s *Service) fetchWindows(ctx context.Context, businessID string) (windows, error) {
	today := s.today()
	spans := []struct {
		key      string
		from, to time.Time
	}{
		{"cur7", today.AddDate(0, 0, -(weeklyDays - 1)), today},
		{"prior7", today.AddDate(0, 0, -(2*weeklyDays - 1)), today.AddDate(0, 0, -weeklyDays)},
		{"cur30", today.AddDate(0, 0, -(monthlyDays - 1)), today},
		{"prior30", today.AddDate(0, 0, -(2*monthlyDays - 1)), today.AddDate(0, 0, -monthlyDays)},
	}

	type result struct {
		key    string
		totals entity.AnalyticsTotals
		err    error
	}
	ch := make(chan result, len(spans))
	for _, sp := range spans {
		go func(key string, from, to time.Time) {
			totals, err := s.analytics.SumRange(ctx, businessID, from, to)
			ch <- result{key: key, totals: totals, err: err}
		}(sp.key, sp.from, sp.to)
	}

	var w windows
	for range spans {
		r := <-ch
		if r.err != nil {
			return windows{}, r.err
		}
		switch r.key {
		case "cur7":
			w.cur7 = r.totals
		case "prior7":
			w.prior7 = r.totals
		case "cur30":
			w.cur30 = r.totals
		case "prior30":
			w.prior30 = r.totals
		}
	}
	return w, nil
}

func toPeriodStats(t entity.AnalyticsTotals, days int) *dto.PeriodStatsResponse {
	return &dto.PeriodStatsResponse{
		PageViews:         t.PageViews,
		UniqueVisitors:    t.UniqueVisitors,
		ContactClicks:     t.ContactClicks,
		PhoneClicks:       t.PhoneClicks,
		EmailClicks:       t.EmailClicks,
		WebsiteClicks:     t.WebsiteClicks,
		DirectionRequests: t.DirectionRequests,
		SearchAppearances: t.SearchAppearances,
		SearchClicks:      t.SearchClicks,
		ReviewViews:       t.ReviewViews,
		PhotoViews:        t.PhotoViews,
		TotalContacts:     t.Contacts(),
		AvgDailyViews:     avgDaily(t.PageViews, days),
	}
}

func toGrowthStats(w windows) *dto.GrowthStatsResponse {
	return &dto.GrowthStatsResponse{
		WeeklyViews:     growthPct(w.cur7.PageViews, w.prior7.PageViews),
		WeeklyContacts:  growthPct(w.cur7.Contacts(), w.prior7.Contacts()),
		MonthlyViews:    growthPct(w.cur30.PageViews, w.prior30.PageViews),
		MonthlyContacts: growthPct(w.cur30.Contacts(), w.prior30.Contacts()),
	}
}
