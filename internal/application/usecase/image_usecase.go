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

// ImageUsecase implements the listing photo gallery.
type ImageUsecase struct {
	images     repository.ImageRepository
	businesses repository.BusinessRepository
	users      repository.UserRepository
	log        *logger.Logger
}

// NewImageUsecase wires the gallery use case.
func NewImageUsecase(images repository.ImageRepository, businesses repository.BusinessRepository, users repository.UserRepository, log *logger.Logger) *ImageUsecase {
	return &ImageUsecase{images: images, businesses: businesses, users: users, log: log}
}

// Create registers an uploaded image URL against the listing.
func (uc *ImageUsecase) Create(ctx context.Context, actorID, businessID string, req dto.CreateImageRequest) (*dto.ImageResponse, error) {
	if err := uc.authorize(ctx, actorID, businessID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.URL) == "" {
		return nil, fmt.Errorf("%w: url is required", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	img := &entity.BusinessImage{
		ID:         uuid.NewString(),
		BusinessID: businessID,
		URL:        req.URL,
		Caption:    req.Caption,
		IsPrimary:  req.IsPrimary,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.images.Create(ctx, img); err != nil {
		return nil, err
	}
	if req.IsPrimary {
		// demote any previous primary
		if err := uc.images.SetPrimary(ctx, businessID, img.ID); err != nil {
			return nil, err
		}
	}
	created, err := uc.images.GetByID(ctx, img.ID)
	if err != nil {
		return nil, err
	}
	return toImageResponse(created), nil
}

// ListByBusiness returns the active gallery of one listing.
func (uc *ImageUsecase) ListByBusiness(ctx context.Context, businessID string) ([]dto.ImageResponse, error) {
	items, err := uc.images.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ImageResponse, 0, len(items))
	for _, img := range items {
		out = append(out, *toImageResponse(img))
	}
	return out, nil
}

// SetPrimary makes one image the listing's cover photo.
func (uc *ImageUsecase) SetPrimary(ctx context.Context, actorID, imageID string) error {
	img, err := uc.images.GetByID(ctx, imageID)
	if err != nil {
		return err
	}
	if img == nil {
		return domain.ErrNotFound
	}
	if err := uc.authorize(ctx, actorID, img.BusinessID); err != nil {
		return err
	}
	return uc.images.SetPrimary(ctx, img.BusinessID, imageID)
}

// Delete deactivates a gallery image.
func (uc *ImageUsecase) Delete(ctx context.Context, actorID, imageID string) error {
	img, err := uc.images.GetByID(ctx, imageID)
	if err != nil {
		return err
	}
	if img == nil {
		return domain.ErrNotFound
	}
	if err := uc.authorize(ctx, actorID, img.BusinessID); err != nil {
		return err
	}
	return uc.images.SoftDelete(ctx, imageID)
}

func (uc *ImageUsecase) authorize(ctx context.Context, actorID, businessID string) error {
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
