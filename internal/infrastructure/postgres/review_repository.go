package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/isokohq/isoko-api/internal/domain"
	"github.com/isokohq/isoko-api/internal/domain/entity"
	"github.com/isokohq/isoko-api/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo ReviewRepository implementation (usable with pool or tx).
type ReviewRepo struct {
	q Querier
}

// NewReviewRepository builds the adapter. Pass pool or tx (Querier).
func NewReviewRepository(q Querier) *ReviewRepo {
	return &ReviewRepo{q: q}
}

// Create persists a review. The (business_id, user_id) unique constraint
// enforces one review per user per business.
func (r *ReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, business_id, user_id, rating, title, comment, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		review.ID, review.BusinessID, review.UserID, review.Rating,
		review.Title, review.Comment, review.Status, review.CreatedAt, review.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// GetByID fetches a review by ID.
func (r *ReviewRepo) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	query := `
		SELECT id, business_id, user_id, rating, title, comment, status, created_at, updated_at
		FROM reviews WHERE id = $1`
	var rv entity.Review
	err := r.q.QueryRow(ctx, query, id).Scan(
		&rv.ID, &rv.BusinessID, &rv.UserID, &rv.Rating, &rv.Title, &rv.Comment,
		&rv.Status, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return &rv, nil
}

// ListByBusiness lists active reviews for a business, newest first.
func (r *ReviewRepo) ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]*entity.Review, int, error) {
	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM reviews WHERE business_id = $1 AND status = 'active'`, businessID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count reviews: %w", err)
	}

	query := `
		SELECT id, business_id, user_id, rating, title, comment, status, created_at, updated_at
		FROM reviews WHERE business_id = $1 AND status = 'active'
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, businessID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var list []*entity.Review
	for rows.Next() {
		var rv entity.Review
		if err := rows.Scan(&rv.ID, &rv.BusinessID, &rv.UserID, &rv.Rating, &rv.Title,
			&rv.Comment, &rv.Status, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan review: %w", err)
		}
		list = append(list, &rv)
	}
	return list, total, rows.Err()
}

// Update writes only the supplied patch fields and refreshes updated_at.
func (r *ReviewRepo) Update(ctx context.Context, id string, patch entity.ReviewPatch) error {
	sets := []string{"updated_at = now()"}
	args := []any{id}
	n := 1

	set := func(column string, value any) {
		n++
		sets = append(sets, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
	}
	if patch.Rating != nil {
		set("rating", *patch.Rating)
	}
	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Comment != nil {
		set("comment", *patch.Comment)
	}

	query := fmt.Sprintf(`UPDATE reviews SET %s WHERE id = $1`, strings.Join(sets, ", "))
	cmd, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete hides the review.
func (r *ReviewRepo) SoftDelete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE reviews SET status = 'hidden', updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete review: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RatingSummary returns the average rating and count of active reviews.
// COALESCE keeps the average at zero when there are none.
func (r *ReviewRepo) RatingSummary(ctx context.Context, businessID string) (float64, int, error) {
	var avg float64
	var count int
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM reviews WHERE business_id = $1 AND status = 'active'`, businessID).Scan(&avg, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("rating summary: %w", err)
	}
	return avg, count, nil
}
