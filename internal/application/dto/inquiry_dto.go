package dto

import "time"

// CreateInquiryRequest public contact-form body.
type CreateInquiryRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	InquiryType   string `json:"inquiry_type"`
	Source        string `json:"source"`
}

// RespondInquiryRequest owner reply body.
type RespondInquiryRequest struct {
	ResponseMessage string `json:"response_message"`
}

// UpdateInquiryStatusRequest direct status overwrite, optionally with a new
// priority in the same call.
type UpdateInquiryStatusRequest struct {
	Status   string  `json:"status"`
	Priority *string `json:"priority"`
}

// UpdateInquiryPriorityRequest priority-only change.
type UpdateInquiryPriorityRequest struct {
	Priority string `json:"priority"`
}

// ListInquiriesRequest query filters for the owner inbox.
type ListInquiriesRequest struct {
	Status      string `query:"status"`
	InquiryType string `query:"inquiry_type"`
	Priority    string `query:"priority"`
	SortBy      string `query:"sort_by"` // created_at (default) or priority
	PageRequest
}

// InquiryResponse full inquiry representation for the owner inbox.
type InquiryResponse struct {
	ID              string     `json:"id"`
	BusinessID      string     `json:"business_id"`
	CustomerName    string     `json:"customer_name"`
	CustomerEmail   string     `json:"customer_email"`
	CustomerPhone   string     `json:"customer_phone,omitempty"`
	Subject         string     `json:"subject"`
	Message         string     `json:"message"`
	InquiryType     string     `json:"inquiry_type"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	Source          string     `json:"source"`
	ResponseMessage *string    `json:"response_message,omitempty"`
	RespondedAt     *time.Time `json:"responded_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// InquiryStatsResponse per-status totals shown alongside the inbox.
type InquiryStatsResponse struct {
	Total     int64 `json:"total"`
	New       int64 `json:"new"`
	Read      int64 `json:"read"`
	Responded int64 `json:"responded"`
	Closed    int64 `json:"closed"`
}

// InquiryListResponse inbox page with the stats block.
type InquiryListResponse struct {
	Inquiries  []InquiryResponse    `json:"inquiries"`
	Stats      InquiryStatsResponse `json:"stats"`
	Pagination PageResponse         `json:"pagination"`
}
