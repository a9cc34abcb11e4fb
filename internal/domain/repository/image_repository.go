package repository

import (
	"context"

	"github.com/isokohq/isoko-api/internal/domain/entity"
)

// ImageRepository persistence port for business gallery images.
type ImageRepository interface {
	Create(ctx context.Context, img *entity.BusinessImage) error
	GetByID(ctx context.Context, id string) (*entity.BusinessImage, error)
	ListByBusiness(ctx context.Context, businessID string) ([]*entity.BusinessImage, error)
	SetPrimary(ctx context.Context, businessID, imageID string) error
	SoftDelete(ctx context.Context, id string) error
}
