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
	"github.com/isokohq/isoko-api/pkg/slug"
)

// BusinessUsecase implements directory listing management.
//
// reader serves the public browse path (directory listing, slug lookup) and
// may be backed by a read replica; writes and read-after-write fetches always
// go through businesses.
type BusinessUsecase struct {
	businesses repository.BusinessRepository
	reader     repository.BusinessRepository
	users      repository.UserRepository
	log        *logger.Logger
}

// NewBusinessUsecase wires the listing use case.
func NewBusinessUsecase(businesses, reader repository.BusinessRepository, users repository.UserRepository, log *logger.Logger) *BusinessUsecase {
	return &BusinessUsecase{businesses: businesses, reader: reader, users: users, log: log}
}

// Create registers a new listing owned by the acting user.
func (uc *BusinessUsecase) Create(ctx context.Context, actorID string, req dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	actor, err := uc.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role == entity.RoleCustomer {
		return nil, domain.ErrForbidden
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, fmt.Errorf("%w: category is required", domain.ErrInvalidInput)
	}

	s, err := uc.uniqueSlug(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	b := &entity.Business{
		ID:          uuid.NewString(),
		OwnerID:     actor.ID,
		Name:        req.Name,
		Slug:        s,
		Description: req.Description,
		Category:    req.Category,
		City:        req.City,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.businesses.Create(ctx, b); err != nil {
		return nil, err
	}

	created, err := uc.businesses.GetByID(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("business_id", b.ID).Str("slug", s).Msg("business created")
	return toBusinessResponse(created), nil
}

// uniqueSlug derives the URL slug from the name. The existence check and the
// insert are not atomic; a concurrent taker is caught by the unique index and
// surfaces as ErrDuplicate.
func (uc *BusinessUsecase) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := slug.Make(name)
	if base == "" {
		return "", fmt.Errorf("%w: name yields an empty slug", domain.ErrInvalidInput)
	}
	taken, err := uc.businesses.SlugExists(ctx, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}
	return fmt.Sprintf("%s-%s", base, uuid.NewString()[:8]), nil
}

// GetByID returns one listing.
func (uc *BusinessUsecase) GetByID(ctx context.Context, id string) (*dto.BusinessResponse, error) {
	b, err := uc.businesses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return toBusinessResponse(b), nil
}

// GetBySlug returns one listing by its public URL slug. Inactive listings are
// hidden from the public profile.
func (uc *BusinessUsecase) GetBySlug(ctx context.Context, s string) (*dto.BusinessResponse, error) {
	b, err := uc.reader.GetBySlug(ctx, s)
	if err != nil {
		return nil, err
	}
	if b == nil || !b.IsActive() {
		return nil, domain.ErrNotFound
	}
	return toBusinessResponse(b), nil
}

// List returns the public directory page matching the filters.
func (uc *BusinessUsecase) List(ctx context.Context, req dto.ListBusinessesRequest) (*dto.BusinessListResponse, error) {
	req.Normalize()
	items, total, err := uc.reader.List(ctx, repository.BusinessFilter{
		Category: req.Category,
		City:     req.City,
		Search:   req.Search,
		Verified: req.Verified,
		Limit:    req.Limit,
		Offset:   req.Offset(),
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.BusinessResponse, 0, len(items))
	for _, b := range items {
		out = append(out, *toBusinessResponse(b))
	}
	return &dto.BusinessListResponse{
		Businesses: out,
		Pagination: dto.PageResponse{Page: req.Page, Limit: req.Limit, Total: total},
	}, nil
}

// Update applies a partial update. Only the owner or an admin may write, and
// only admins may touch the verification flag.
func (uc *BusinessUsecase) Update(ctx context.Context, actorID, id string, req dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	actor, b, err := uc.authorize(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	if req.IsVerified != nil && actor.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	patch := entity.BusinessPatch{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		City:        req.City,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		IsVerified:  req.IsVerified,
	}
	if err := uc.businesses.Update(ctx, b.ID, patch); err != nil {
		return nil, err
	}

	updated, err := uc.businesses.GetByID(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	return toBusinessResponse(updated), nil
}

// Delete soft-deletes the listing; inquiry and review history stays behind it.
func (uc *BusinessUsecase) Delete(ctx context.Context, actorID, id string) error {
	if _, _, err := uc.authorize(ctx, actorID, id); err != nil {
		return err
	}
	return uc.businesses.SoftDelete(ctx, id)
}

func (uc *BusinessUsecase) actor(ctx context.Context, actorID string) (*entity.User, error) {
	actor, err := uc.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	return actor, nil
}

func (uc *BusinessUsecase) authorize(ctx context.Context, actorID, businessID string) (*entity.User, *entity.Business, error) {
	actor, err := uc.actor(ctx, actorID)
	if err != nil {
		return nil, nil, err
	}
	b, err := uc.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, nil, err
	}
	if b == nil {
		return nil, nil, domain.ErrNotFound
	}
	if !actor.CanManage(b.OwnerID) {
		return nil, nil, domain.ErrForbidden
	}
	return actor, b, nil
}
