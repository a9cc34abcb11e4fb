package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/isokohq/isoko-api/internal/domain"
	"github.com/isokohq/isoko-api/internal/domain/entity"
	"github.com/isokohq/isoko-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

const businessColumns = `id, owner_id, name, slug, description, category, city, address, phone, email, website,
	is_verified, status, view_count, contact_count, monthly_views, monthly_contacts,
	response_rate, avg_response_time, rating, review_count, created_at, updated_at`

// BusinessRepo BusinessRepository implementation (usable with pool, tx or the
// read gateway). Writes must be given the primary pool.
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository builds the adapter. Pass pool, tx or read gateway (Querier).
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

// Create persists a new listing.
func (r *BusinessRepo) Create(ctx context.Context, b *entity.Business) error {
	query := `
		INSERT INTO businesses (id, owner_id, name, slug, description, category, city, address, phone, email, website,
			is_verified, status, response_rate, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.OwnerID, b.Name, b.Slug, b.Description, b.Category, b.City, b.Address, b.Phone, b.Email, b.Website,
		b.IsVerified, b.Status, b.ResponseRate, b.Rating, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// GetByID fetches a listing by ID.
func (r *BusinessRepo) GetByID(ctx context.Context, id string) (*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetBySlug fetches a listing by slug.
func (r *BusinessRepo) GetBySlug(ctx context.Context, slug string) (*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE slug = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, slug))
}

// SlugExists reports whether any row already carries the slug.
func (r *BusinessRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM businesses WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("slug exists: %w", err)
	}
	return exists, nil
}

// List returns active listings matching the filter plus the total count.
func (r *BusinessRepo) List(ctx context.Context, f repository.BusinessFilter) ([]*entity.Business, int, error) {
	where := []string{"status = 'active'"}
	args := []any{}
	n := 0

	add := func(clause string, value any) {
		n++
		where = append(where, fmt.Sprintf(clause, n))
		args = append(args, value)
	}
	if f.Category != "" {
		add("category = $%d", f.Category)
	}
	if f.City != "" {
		add("city = $%d", f.City)
	}
	if f.Search != "" {
		n++
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", n, n))
		args = append(args, "%"+f.Search+"%")
	}
	if f.Verified != nil {
		add("is_verified = $%d", *f.Verified)
	}

	whereSQL := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM businesses WHERE ` + whereSQL
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count businesses: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM businesses WHERE %s ORDER BY is_verified DESC, created_at DESC LIMIT $%d OFFSET $%d`,
		businessColumns, whereSQL, n+1, n+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list businesses: %w", err)
	}
	defer rows.Close()

	var list []*entity.Business
	for rows.Next() {
		b, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, b)
	}
	return list, total, rows.Err()
}

// Update writes only the supplied patch fields and refreshes updated_at.
func (r *BusinessRepo) Update(ctx context.Context, id string, patch entity.BusinessPatch) error {
	sets := []string{"updated_at = now()"}
	args := []any{id}
	n := 1

	set := func(column string, value any) {
		n++
		sets = append(sets, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
	}
	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Category != nil {
		set("category", *patch.Category)
	}
	if patch.City != nil {
		set("city", *patch.City)
	}
	if patch.Address != nil {
		set("address", *patch.Address)
	}
	if patch.Phone != nil {
		set("phone", *patch.Phone)
	}
	if patch.Email != nil {
		set("email", *patch.Email)
	}
	if patch.Website != nil {
		set("website", *patch.Website)
	}
	if patch.IsVerified != nil {
		set("is_verified", *patch.IsVerified)
	}

	query := fmt.Sprintf(`UPDATE businesses SET %s WHERE id = $1`, strings.Join(sets, ", "))
	cmd, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update business: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marks the listing inactive. The row stays to preserve
// inquiry/review history.
func (r *BusinessRepo) SoftDelete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE businesses SET status = 'inactive', updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete business: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IncrementViewCounters bumps the lifetime and monthly view counters.
// Relative update, safe under concurrent writers.
func (r *BusinessRepo) IncrementViewCounters(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `
		UPDATE businesses
		SET view_count = view_count + 1, monthly_views = monthly_views + 1
		WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment view counters: %w", err)
	}
	return nil
}

// IncrementContactCounters bumps the lifetime and monthly contact counters.
func (r *BusinessRepo) IncrementContactCounters(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `
		UPDATE businesses
		SET contact_count = contact_count + 1, monthly_contacts = monthly_contacts + 1
		WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment contact counters: %w", err)
	}
	return nil
}

// UpdateResponseStats overwrites the recomputed response rate and average
// response time (minutes).
func (r *BusinessRepo) UpdateResponseStats(ctx context.Context, id string, rate decimal.Decimal, avgMinutes int) error {
	_, err := r.q.Exec(ctx, `
		UPDATE businesses
		SET response_rate = $2, avg_response_time = $3, updated_at = now()
		WHERE id = $1`, id, rate, avgMinutes)
	if err != nil {
		return fmt.Errorf("update response stats: %w", err)
	}
	return nil
}

// UpdateRating overwrites the cached review average and count.
func (r *BusinessRepo) UpdateRating(ctx context.Context, id string, rating decimal.Decimal, reviewCount int) error {
	_, err := r.q.Exec(ctx, `
		UPDATE businesses
		SET rating = $2, review_count = $3, updated_at = now()
		WHERE id = $1`, id, rating, reviewCount)
	if err != nil {
		return fmt.Errorf("update rating: %w", err)
	}
	return nil
}

func (r *BusinessRepo) scanOne(row pgx.Row) (*entity.Business, error) {
	var b entity.Business
	err := row.Scan(
		&b.ID, &b.OwnerID, &b.Name, &b.Slug, &b.Description, &b.Category, &b.City, &b.Address,
		&b.Phone, &b.Email, &b.Website, &b.IsVerified, &b.Status,
		&b.ViewCount, &b.ContactCount, &b.MonthlyViews, &b.MonthlyContacts,
		&b.ResponseRate, &b.AvgResponseTime, &b.Rating, &b.ReviewCount,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business: %w", err)
	}
	return &b, nil
}

func (r *BusinessRepo) scanRow(rows pgx.Rows) (*entity.Business, error) {
	var b entity.Business
	if err := rows.Scan(
		&b.ID, &b.OwnerID, &b.Name, &b.Slug, &b.Description, &b.Category, &b.City, &b.Address,
		&b.Phone, &b.Email, &b.Website, &b.IsVerified, &b.Status,
		&b.ViewCount, &b.ContactCount, &b.MonthlyViews, &b.MonthlyContacts,
		&b.ResponseRate, &b.AvgResponseTime, &b.Rating, &b.ReviewCount,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan business: %w", err)
	}
	return &b, nil
}
