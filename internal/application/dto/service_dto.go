package dto

import "time"

// CreateServiceRequest new service entry for a listing.
type CreateServiceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceRange  string `json:"price_range"`
}

// UpdateServiceRequest partial service update.
type UpdateServiceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	PriceRange  *string `json:"price_range"`
}

// ServiceResponse service entry representation.
type ServiceResponse struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceRange  string    `json:"price_range"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
