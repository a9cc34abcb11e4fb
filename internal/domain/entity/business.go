package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Business represents a directory listing owned by exactly one user.
//
// The counter fields (ViewCount, ContactCount, MonthlyViews, MonthlyContacts)
// and ResponseRate/AvgResponseTime are denormalized projections of the daily
// analytics rows and inquiry history. They are eventually consistent with the
// fact tables: view/contact counts are incremented in place, the response
// stats are fully recomputed after every response action.
type Business struct {
	ID          string
	OwnerID     string
	Name        string
	Slug        string
	Description string
	Category    string
	City        string
	Address     string
	Phone       string
	Email       string
	Website     string
	IsVerified  bool
	Status      string // active, inactive (soft delete; rows are never removed)

	ViewCount       int64
	ContactCount    int64
	MonthlyViews    int64
	MonthlyContacts int64
	ResponseRate    decimal.Decimal // 0-100, two decimals
	AvgResponseTime int             // minutes

	Rating      decimal.Decimal // cached average review rating, two decimals
	ReviewCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BusinessPatch enumerates the legally mutable fields of a business.
// Nil fields are left untouched; UpdatedAt is always refreshed.
type BusinessPatch struct {
	Name        *string
	Description *string
	Category    *string
	City        *string
	Address     *string
	Phone       *string
	Email       *string
	Website     *string
	IsVerified  *bool
}

// IsActive reports whether the listing is visible.
func (b *Business) IsActive() bool { return b.Status == "active" }
