package entity

import "time"

// BusinessService is an offering listed under a business (e.g. "Plumbing
// call-out"). Soft-deleted via IsActive to preserve inquiry history.
type BusinessService struct {
	ID          string
	BusinessID  string
	Name        string
	Description string
	PriceRange  string // free-form, e.g. "10,000-50,000 RWF"
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BusinessServicePatch mutable service fields.
type BusinessServicePatch struct {
	Name        *string
	Description *string
	PriceRange  *string
}
