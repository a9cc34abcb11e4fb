package entity

import "time"

// Review is a customer rating of a business. One review per (business, user),
// enforced by a unique constraint.
type Review struct {
	ID         string
	BusinessID string
	UserID     string
	Rating     int // 1-5
	Title      string
	Comment    string
	Status     string // active, hidden
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ReviewPatch mutable review fields. Nil fields are left untouched.
type ReviewPatch struct {
	Rating  *int
	Title   *string
	Comment *string
}
