package entity

import "time"

// Analytics event types. Each maps to exactly one daily counter.
const (
	EventPageView         = "page_view"
	EventUniqueVisitor    = "unique_visitor"
	EventContactClick     = "contact_click"
	EventPhoneClick       = "phone_click"
	EventEmailClick       = "email_click"
	EventWebsiteClick     = "website_click"
	EventDirectionRequest = "direction_request"
	EventSearchAppearance = "search_appearance"
	EventSearchClick      = "search_click"
	EventReviewView       = "review_view"
	EventPhotoView        = "photo_view"
)

// EventTypes lists every accepted analytics event type.
var EventTypes = []string{
	EventPageView, EventUniqueVisitor, EventContactClick, EventPhoneClick,
	EventEmailClick, EventWebsiteClick, EventDirectionRequest,
	EventSearchAppearance, EventSearchClick, EventReviewView, EventPhotoView,
}

// ValidEventType reports whether s is one of the accepted event types.
func ValidEventType(s string) bool {
	for _, e := range EventTypes {
		if e == s {
			return true
		}
	}
	return false
}

// IsContactEvent reports whether the event counts toward the business's
// denormalized contact counters.
func IsContactEvent(s string) bool {
	return s == EventContactClick || s == EventPhoneClick || s == EventEmailClick
}

// BusinessAnalytics is the daily fact row: one per (business, calendar date),
// uniqueness enforced by the composite key. Counters only ever increase and
// rows are never deleted.
type BusinessAnalytics struct {
	ID         string
	BusinessID string
	Date       time.Time // calendar date, midnight UTC

	PageViews         int64
	UniqueVisitors    int64
	ContactClicks     int64
	PhoneClicks       int64
	EmailClicks       int64
	WebsiteClicks     int64
	DirectionRequests int64
	SearchAppearances int64
	SearchClicks      int64
	ReviewViews       int64
	PhotoViews        int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AnalyticsTotals holds counter sums over a date window.
type AnalyticsTotals struct {
	PageViews         int64
	UniqueVisitors    int64
	ContactClicks     int64
	PhoneClicks       int64
	EmailClicks       int64
	WebsiteClicks     int64
	DirectionRequests int64
	SearchAppearances int64
	SearchClicks      int64
	ReviewViews       int64
	PhotoViews        int64
}

// Contacts returns the combined contact-category clicks.
func (t AnalyticsTotals) Contacts() int64 {
	return t.ContactClicks + t.PhoneClicks + t.EmailClicks
}
