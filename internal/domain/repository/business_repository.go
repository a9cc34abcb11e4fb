package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/isokohq/isoko-api/internal/domain/entity"
)

// BusinessFilter optional predicates for listing businesses.
// Search matches name/description by substring.
type BusinessFilter struct {
	Category string
	City     string
	Search   string
	Verified *bool
	Limit    int
	Offset   int
}

// BusinessRepository persistence port for listings.
//
// The Increment* methods express counters as relative updates
// (counter = counter + 1) so concurrent writers cannot lose updates.
type BusinessRepository interface {
	Create(ctx context.Context, b *entity.Business) error
	GetByID(ctx context.Context, id string) (*entity.Business, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Business, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, f BusinessFilter) ([]*entity.Business, int, error)
	Update(ctx context.Context, id string, patch entity.BusinessPatch) error
	SoftDelete(ctx context.Context, id string) error

	IncrementViewCounters(ctx context.Context, id string) error
	IncrementContactCounters(ctx context.Context, id string) error
	UpdateResponseStats(ctx context.Context, id string, rate decimal.Decimal, avgMinutes int) error
	UpdateRating(ctx context.Context, id string, rating decimal.Decimal, reviewCount int) error
}
