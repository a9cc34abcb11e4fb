package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBusinessRequest new listing body.
type CreateBusinessRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	City        string `json:"city"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Website     string `json:"website"`
}

// UpdateBusinessRequest partial update; nil fields are not written.
type UpdateBusinessRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	City        *string `json:"city"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Website     *string `json:"website"`
	IsVerified  *bool   `json:"is_verified"` // admin only
}

// ListBusinessesRequest query filters for the public directory listing.
type ListBusinessesRequest struct {
	Category string `query:"category"`
	City     string `query:"city"`
	Search   string `query:"search"`
	Verified *bool  `query:"verified"`
	PageRequest
}

// BusinessResponse public listing representation.
type BusinessResponse struct {
	ID              string          `json:"id"`
	OwnerID         string          `json:"owner_id"`
	Name            string          `json:"name"`
	Slug            string          `json:"slug"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	City            string          `json:"city"`
	Address         string          `json:"address"`
	Phone           string          `json:"phone"`
	Email           string          `json:"email"`
	Website         string          `json:"website"`
	IsVerified      bool            `json:"is_verified"`
	Status          string          `json:"status"`
	ViewCount       int64           `json:"view_count"`
	ContactCount    int64           `json:"contact_count"`
	MonthlyViews    int64           `json:"monthly_views"`
	MonthlyContacts int64           `json:"monthly_contacts"`
	ResponseRate    decimal.Decimal `json:"response_rate"`
	AvgResponseTime int             `json:"avg_response_time"` // minutes
	Rating          decimal.Decimal `json:"rating"`
	ReviewCount     int             `json:"review_count"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// BusinessListResponse directory page.
type BusinessListResponse struct {
	Businesses []BusinessResponse `json:"businesses"`
	Pagination PageResponse       `json:"pagination"`
}
