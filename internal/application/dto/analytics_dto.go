package dto

import "github.com/shopspring/decimal"

// RecordEventRequest tracking beacon body.
type RecordEventRequest struct {
	EventType string `json:"event_type"`
}

// PeriodStatsResponse counter totals over a trailing window.
type PeriodStatsResponse struct {
	PageViews         int64           `json:"page_views"`
	UniqueVisitors    int64           `json:"unique_visitors"`
	ContactClicks     int64           `json:"contact_clicks"`
	PhoneClicks       int64           `json:"phone_clicks"`
	EmailClicks       int64           `json:"email_clicks"`
	WebsiteClicks     int64           `json:"website_clicks"`
	DirectionRequests int64           `json:"direction_requests"`
	SearchAppearances int64           `json:"search_appearances"`
	SearchClicks      int64           `json:"search_clicks"`
	ReviewViews       int64           `json:"review_views"`
	PhotoViews        int64           `json:"photo_views"`
	TotalContacts     int64           `json:"total_contacts"`
	AvgDailyViews     decimal.Decimal `json:"avg_daily_views"`
}

// GrowthStatsResponse percentage change of the current window over the prior
// window of equal length.
type GrowthStatsResponse struct {
	WeeklyViews     decimal.Decimal `json:"weekly_views"`
	WeeklyContacts  decimal.Decimal `json:"weekly_contacts"`
	MonthlyViews    decimal.Decimal `json:"monthly_views"`
	MonthlyContacts decimal.Decimal `json:"monthly_contacts"`
}

// DailyStatResponse one point of the daily series.
type DailyStatResponse struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Views    int64  `json:"views"`
	Contacts int64  `json:"contacts"`
}

// AnalyticsOverviewResponse the dashboard payload: weekly and monthly
// totals, growth percentages, the daily series and the conversion rate.
type AnalyticsOverviewResponse struct {
	BusinessID     string              `json:"business_id"`
	Weekly         PeriodStatsResponse `json:"weekly"`
	Monthly        PeriodStatsResponse `json:"monthly"`
	Growth         GrowthStatsResponse `json:"growth"`
	Daily          []DailyStatResponse `json:"daily"`
	ConversionRate decimal.Decimal     `json:"conversion_rate"`
}
