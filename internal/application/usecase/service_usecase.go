package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/isokohq/isoko-api/internal/application/dto"
	"github.com/isokohq/isoko-api/internal/domain"
	"github.com/isokohq/isoko-api/internal/domain/entity"
	"github.com/isokohq/isoko-api/internal/domain/repository"
	"github.com/isokohq/isoko-api/pkg/logger"
)

// ServiceUsecase implements the service catalogue under a listing.
type ServiceUsecase struct {
	services   repository.ServiceRepository
	businesses repository.BusinessRepository
	users      repository.UserRepository
	log        *logger.Logger
}

// NewServiceUsecase wires the service use case.
func NewServiceUsecase(services repository.ServiceRepository, businesses repository.BusinessRepository, users repository.UserRepository, log *logger.Logger) *ServiceUsecase {
	return &ServiceUsecase{services: services, businesses: businesses, users: users, log: log}
}

// Create adds a service entry to the acting user's listing.
func (uc *ServiceUsecase) Create(ctx context.Context, actorID, businessID string, req dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if err := uc.authorize(ctx, actorID, businessID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	s := &entity.BusinessService{
		ID:          uuid.NewString(),
		BusinessID:  businessID,
		Name:        req.Name,
		Description: req.Description,
		PriceRange:  req.PriceRange,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.services.Create(ctx, s); err != nil {
		return nil, err
	}
	created, err := uc.services.GetByID(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	return toServiceResponse(created), nil
}

// ListByBusiness returns the active services of one listing.
func (uc *ServiceUsecase) ListByBusiness(ctx context.Context, businessID string) ([]dto.ServiceResponse, error) {
	items, err := uc.services.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceResponse, 0, len(items))
	for _, s := range items {
		out = append(out, *toServiceResponse(s))
	}
	return out, nil
}

// Update edits a service entry.
func (uc *ServiceUsecase) Update(ctx context.Context, actorID, serviceID string, req dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	s, err := uc.services.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.authorize(ctx, actorID, s.BusinessID); err != nil {
		return nil, err
	}

	patch := entity.BusinessServicePatch{Name: req.Name, Description: req.Description, PriceRange: req.PriceRange}
	if err := uc.services.Update(ctx, serviceID, patch); err != nil {
		return nil, err
	}
	updated, err := uc.services.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	return toServiceResponse(updated), nil
}

// Delete deactivates a service entry.
func (uc *ServiceUsecase) Delete(ctx context.Context, actorID, serviceID string) error {
	s, err := uc.services.GetByID(ctx, serviceID)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	if err := uc.authorize(ctx, actorID, s.BusinessID); err != nil {
		return err
	}
	return uc.services.SoftDelete(ctx, serviceID)
}

func (uc *ServiceUsecase) authorize(ctx context.Context, actorID, businessID string) error {
	actor, err := uc.users.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if actor == nil {
		return domain.ErrUnauthorized
	}
	b, err := uc.businesses.GetByID(ctx, businessID)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	if !actor.CanManage(b.OwnerID) {
		return domain.ErrForbidden
	}
	return nil
}
