package repository

import (
	"context"

	"github.com/isokohq/isoko-api/internal/domain/entity"
)

// ServiceRepository persistence port for business services.
type ServiceRepository interface {
	Create(ctx context.Context, s *entity.BusinessService) error
	GetByID(ctx context.Context, id string) (*entity.BusinessService, error)
	ListByBusiness(ctx context.Context, businessID string) ([]*entity.BusinessService, error)
	Update(ctx context.Context, id string, patch entity.BusinessServicePatch) error
	SoftDelete(ctx context.Context, id string) error
}
