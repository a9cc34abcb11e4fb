package dto

import "time"

// CreateImageRequest register an uploaded image URL against a listing.
type CreateImageRequest struct {
	URL       string `json:"url"`
	Caption   string `json:"caption"`
	IsPrimary bool   `json:"is_primary"`
}

// ImageResponse gallery image representation.
type ImageResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	URL        string    `json:"url"`
	Caption    string    `json:"caption"`
	IsPrimary  bool      `json:"is_primary"`
	CreatedAt  time.Time `json:"created_at"`
}
