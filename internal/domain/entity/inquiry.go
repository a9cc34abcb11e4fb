package entity

import "time"

// Inquiry statuses. New inquiries start in StatusNew; MarkAsRead and Respond
// are the only guarded transitions, the generic status update overwrites
// freely. Closed is terminal only by convention, never entered automatically.
const (
	InquiryStatusNew       = "new"
	InquiryStatusRead      = "read"
	InquiryStatusResponded = "responded"
	InquiryStatusClosed    = "closed"
)

// Inquiry types.
const (
	InquiryTypeGeneral     = "general"
	InquiryTypeQuote       = "quote"
	InquiryTypeService     = "service"
	InquiryTypeComplaint   = "complaint"
	InquiryTypePartnership = "partnership"
)

// Inquiry priorities. Independent axis from status.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// CustomerInquiry is a contact-form message directed at one business.
// Invariant: ResponseMessage and RespondedAt are both set or both nil.
// Inquiries are never hard-deleted.
type CustomerInquiry struct {
	ID            string
	BusinessID    string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Subject       string
	Message       string
	InquiryType   string // see InquiryType* constants
	Status        string // see InquiryStatus* constants
	Priority      string // see Priority* constants
	Source        string // e.g. "web", "mobile"

	ResponseMessage *string
	RespondedAt     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidInquiryStatus reports whether s is one of the four statuses.
func ValidInquiryStatus(s string) bool {
	switch s {
	case InquiryStatusNew, InquiryStatusRead, InquiryStatusResponded, InquiryStatusClosed:
		return true
	}
	return false
}

// ValidInquiryType reports whether s is a known inquiry type.
func ValidInquiryType(s string) bool {
	switch s {
	case InquiryTypeGeneral, InquiryTypeQuote, InquiryTypeService, InquiryTypeComplaint, InquiryTypePartnership:
		return true
	}
	return false
}

// ValidPriority reports whether s is a known priority.
func ValidPriority(s string) bool {
	switch s {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}
