package repository

import (
	"context"
	"time"

	"github.com/isokohq/isoko-api/internal/domain/entity"
)

// InquiryFilter optional predicates for listing inquiries of a business.
type InquiryFilter struct {
	Status      string
	InquiryType string
	Priority    string
	SortBy      string // created_at (default) or priority
	Limit       int
	Offset      int
}

// InquiryStatusCounts per-status totals for the list endpoint's stats block.
type InquiryStatusCounts struct {
	Total     int64
	New       int64
	Read      int64
	Responded int64
	Closed    int64
}

// ResponseStats aggregates the trailing-window inquiry history used to
// recompute the business response rate.
type ResponseStats struct {
	Total        int64
	Responded    int64
	AvgRespHours float64 // mean responded_at - created_at, in hours; 0 when none responded
}

// InquiryRepository persistence port for customer inquiries.
// Inquiries are never hard-deleted.
type InquiryRepository interface {
	Create(ctx context.Context, inq *entity.CustomerInquiry) error
	GetByID(ctx context.Context, id string) (*entity.CustomerInquiry, error)
	ListByBusiness(ctx context.Context, businessID string, f InquiryFilter) ([]*entity.CustomerInquiry, int, error)

	// MarkAsRead flips status new -> read. A no-op when the inquiry has
	// already moved past new (the WHERE clause keeps it idempotent).
	MarkAsRead(ctx context.Context, id string) error

	// SetResponse stores message + timestamp and moves status to responded.
	SetResponse(ctx context.Context, id, message string, respondedAt time.Time) error

	// UpdateStatus overwrites status (and optionally priority) without
	// transition-order enforcement.
	UpdateStatus(ctx context.Context, id, status string, priority *string) error
	UpdatePriority(ctx context.Context, id, priority string) error

	StatusCounts(ctx context.Context, businessID string) (InquiryStatusCounts, error)
	ResponseStatsSince(ctx context.Context, businessID string, since time.Time) (ResponseStats, error)
}
