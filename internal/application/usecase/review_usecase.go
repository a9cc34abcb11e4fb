package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/isokohq/isoko-api/internal/application/dto"
	"github.com/isokohq/isoko-api/internal/domain"
	"github.com/isokohq/isoko-api/internal/domain/entity"
	"github.com/isokohq/isoko-api/internal/domain/repository"
	"github.com/isokohq/isoko-api/pkg/logger"
)

// ReviewUsecase implements customer reviews and the cached business rating.
type ReviewUsecase struct {
	reviews    repository.ReviewRepository
	businesses repository.BusinessRepository
	users      repository.UserRepository
	log        *logger.Logger
}

// NewReviewUsecase wires the review use case.
func NewReviewUsecase(reviews repository.ReviewRepository, businesses repository.BusinessRepository, users repository.UserRepository, log *logger.Logger) *ReviewUsecase {
	return &ReviewUsecase{reviews: reviews, businesses: businesses, users: users, log: log}
}

// Create adds a review. One review per user per business; a second attempt
// surfaces as ErrDuplicate from the unique constraint.
func (uc *ReviewUsecase) Create(ctx context.Context, userID, businessID string, req dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrInvalidInput)
	}
	b, err := uc.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if b == nil || !b.IsActive() {
		return nil, domain.ErrNotFound
	}

	now := time.Now().UTC()
	r := &entity.Review{
		ID:         uuid.NewString(),
		BusinessID: businessID,
		UserID:     userID,
		Rating:     req.Rating,
		Title:      req.Title,
		Comment:    req.Comment,
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.reviews.Create(ctx, r); err != nil {
		return nil, err
	}

	uc.refreshRating(ctx, businessID)

	created, err := uc.reviews.GetByID(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	return toReviewResponse(created), nil
}

// ListByBusiness returns the active reviews of one listing.
func (uc *ReviewUsecase) ListByBusiness(ctx context.Context, businessID string, page dto.PageRequest) (*dto.ReviewListResponse, error) {
	page.Normalize()
	items, total, err := uc.reviews.ListByBusiness(ctx, businessID, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReviewResponse, 0, len(items))
	for _, r := range items {
		out = append(out, *toReviewResponse(r))
	}
	return &dto.ReviewListResponse{
		Reviews:    out,
		Pagination: dto.PageResponse{Page: page.Page, Limit: page.Limit, Total: total},
	}, nil
}

// Update edits a review. Only the author or an admin may write.
func (uc *ReviewUsecase) Update(ctx context.Context, actorID, reviewID string, req dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	r, err := uc.authorize(ctx, actorID, reviewID)
	if err != nil {
		return nil, err
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrInvalidInput)
	}

	patch := entity.ReviewPatch{Rating: req.Rating, Title: req.Title, Comment: req.Comment}
	if err := uc.reviews.Update(ctx, r.ID, patch); err != nil {
		return nil, err
	}
	if req.Rating != nil {
		uc.refreshRating(ctx, r.BusinessID)
	}

	updated, err := uc.reviews.GetByID(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	return toReviewResponse(updated), nil
}

// Delete hides a review and refreshes the cached rating.
func (uc *ReviewUsecase) Delete(ctx context.Context, actorID, reviewID string) error {
	r, err := uc.authorize(ctx, actorID, reviewID)
	if err != nil {
		return err
	}
	if err := uc.reviews.SoftDelete(ctx, r.ID); err != nil {
		return err
	}
	uc.refreshRating(ctx, r.BusinessID)
	return nil
}

// refreshRating recomputes the denormalized average on the business row.
// A failure leaves the cache stale until the next review write; the review
// itself is already committed, so the error is logged, not returned.
func (uc *ReviewUsecase) refreshRating(ctx context.Context, businessID string) {
	avg, count, err := uc.reviews.RatingSummary(ctx, businessID)
	if err == nil {
		err = uc.businesses.UpdateRating(ctx, businessID, decimal.NewFromFloat(avg).Round(2), count)
	}
	if err != nil {
		uc.log.Warn().Err(err).Str("business_id", businessID).Msg("rating refresh failed")
	}
}

func (uc *ReviewUsecase) authorize(ctx context.Context, actorID, reviewID string) (*entity.Review, error) {
	actor, err := uc.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	r, err := uc.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if actor.Role != entity.RoleAdmin && actor.ID != r.UserID {
		return nil, domain.ErrForbidden
	}
	return r, nil
}
