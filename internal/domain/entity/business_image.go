package entity

import "time"

// BusinessImage is a gallery photo of a business listing.
// Soft-deleted via IsActive.
type BusinessImage struct {
	ID         string
	BusinessID string
	URL        string
	Caption    string
	IsPrimary  bool
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
