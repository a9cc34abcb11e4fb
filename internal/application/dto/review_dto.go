package dto

import "time"

// CreateReviewRequest new review body.
type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

// UpdateReviewRequest partial review update.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Title   *string `json:"title"`
	Comment *string `json:"comment"`
}

// ReviewResponse public review representation.
type ReviewResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	UserID     string    `json:"user_id"`
	Rating     int       `json:"rating"`
	Title      string    `json:"title"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ReviewListResponse review page.
type ReviewListResponse struct {
	Reviews    []ReviewResponse `json:"reviews"`
	Pagination PageResponse     `json:"pagination"`
}
