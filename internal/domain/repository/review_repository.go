package repository

import (
	"context"

	"github.com/isokohq/isoko-api/internal/domain/entity"
)

// ReviewRepository persistence port for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]*entity.Review, int, error)
	Update(ctx context.Context, id string, patch entity.ReviewPatch) error
	SoftDelete(ctx context.Context, id string) error

	// RatingSummary returns the average rating and count of active reviews.
	RatingSummary(ctx context.Context, businessID string) (avg float64, count int, err error)
}
