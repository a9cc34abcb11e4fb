package usecase

import (
	"github.com/isokohq/isoko-api/internal/application/dto"
	"github.com/isokohq/isoko-api/internal/domain/entity"
)

func toBusinessResponse(b *entity.Business) *dto.BusinessResponse {
	return &dto.BusinessResponse{
		ID:              b.ID,
		OwnerID:         b.OwnerID,
		Name:            b.Name,
		Slug:            b.Slug,
		Description:     b.Description,
		Category:        b.Category,
		City:            b.City,
		Address:         b.Address,
		Phone:           b.Phone,
		Email:           b.Email,
		Website:         b.Website,
		IsVerified:      b.IsVerified,
		Status:          b.Status,
		ViewCount:       b.ViewCount,
		ContactCount:    b.ContactCount,
		MonthlyViews:    b.MonthlyViews,
		MonthlyContacts: b.MonthlyContacts,
		ResponseRate:    b.ResponseRate,
		AvgResponseTime: b.AvgResponseTime,
		Rating:          b.Rating,
		ReviewCount:     b.ReviewCount,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func toReviewResponse(r *entity.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:         r.ID,
		BusinessID: r.BusinessID,
		UserID:     r.UserID,
		Rating:     r.Rating,
		Title:      r.Title,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func toServiceResponse(s *entity.BusinessService) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:          s.ID,
		BusinessID:  s.BusinessID,
		Name:        s.Name,
		Description: s.Description,
		PriceRange:  s.PriceRange,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toImageResponse(img *entity.BusinessImage) *dto.ImageResponse {
	return &dto.ImageResponse{
		ID:         img.ID,
		BusinessID: img.BusinessID,
		URL:        img.URL,
		Caption:    img.Caption,
		IsPrimary:  img.IsPrimary,
		CreatedAt:  img.CreatedAt,
	}
}
