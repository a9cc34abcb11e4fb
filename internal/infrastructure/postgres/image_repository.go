package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/isokohq/isoko-api/internal/domain"
	"github.com/isokohq/isoko-api/internal/domain/entity"
	"github.com/isokohq/isoko-api/internal/domain/repository"
)

var _ repository.ImageRepository = (*ImageRepo)(nil)

// ImageRepo ImageRepository implementation (usable with pool or tx).
type ImageRepo struct {
	q Querier
}

// NewImageRepository builds the adapter. Pass pool or tx (Querier).
func NewImageRepository(q Querier) *ImageRepo {
	return &ImageRepo{q: q}
}

// Create persists a new gallery image.
func (r *ImageRepo) Create(ctx context.Context, img *entity.BusinessImage) error {
	query := `
		INSERT INTO business_images (id, business_id, url, caption, is_primary, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		img.ID, img.BusinessID, img.URL, img.Caption, img.IsPrimary, img.IsActive, img.CreatedAt, img.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert image: %w", err)
	}
	return nil
}

// GetByID fetches an image by ID.
func (r *ImageRepo) GetByID(ctx context.Context, id string) (*entity.BusinessImage, error) {
	query := `
		SELECT id, business_id, url, caption, is_primary, is_active, created_at, updated_at
		FROM business_images WHERE id = $1`
	var img entity.BusinessImage
	err := r.q.QueryRow(ctx, query, id).Scan(
		&img.ID, &img.BusinessID, &img.URL, &img.Caption, &img.IsPrimary, &img.IsActive,
		&img.CreatedAt, &img.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get image: %w", err)
	}
	return &img, nil
}

// ListByBusiness lists active images, primary first.
func (r *ImageRepo) ListByBusiness(ctx context.Context, businessID string) ([]*entity.BusinessImage, error) {
	query := `
		SELECT id, business_id, url, caption, is_primary, is_active, created_at, updated_at
		FROM business_images WHERE business_id = $1 AND is_active
		ORDER BY is_primary DESC, created_at`
	rows, err := r.q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	defer rows.Close()

	var list []*entity.BusinessImage
	for rows.Next() {
		var img entity.BusinessImage
		if err := rows.Scan(&img.ID, &img.BusinessID, &img.URL, &img.Caption, &img.IsPrimary,
			&img.IsActive, &img.CreatedAt, &img.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		list = append(list, &img)
	}
	return list, rows.Err()
}

// SetPrimary flags one image as primary and clears the flag on the rest.
func (r *ImageRepo) SetPrimary(ctx context.Context, businessID, imageID string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE business_images SET is_primary = (id = $2), updated_at = now() WHERE business_id = $1`,
		businessID, imageID)
	if err != nil {
		return fmt.Errorf("set primary image: %w", err)
	}
	return nil
}

// SoftDelete marks the image inactive.
func (r *ImageRepo) SoftDelete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE business_images SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete image: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
