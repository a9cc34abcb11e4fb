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

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo ServiceRepository implementation (usable with pool or tx).
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository builds the adapter. Pass pool or tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

// Create persists a new service offering.
func (r *ServiceRepo) Create(ctx context.Context, s *entity.BusinessService) error {
	query := `
		INSERT INTO business_services (id, business_id, name, description, price_range, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.BusinessID, s.Name, s.Description, s.PriceRange, s.IsActive, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID fetches a service by ID.
func (r *ServiceRepo) GetByID(ctx context.Context, id string) (*entity.BusinessService, error) {
	query := `
		SELECT id, business_id, name, description, price_range, is_active, created_at, updated_at
		FROM business_services WHERE id = $1`
	var s entity.BusinessService
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.BusinessID, &s.Name, &s.Description, &s.PriceRange, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

// ListByBusiness lists active services of a business.
func (r *ServiceRepo) ListByBusiness(ctx context.Context, businessID string) ([]*entity.BusinessService, error) {
	query := `
		SELECT id, business_id, name, description, price_range, is_active, created_at, updated_at
		FROM business_services WHERE business_id = $1 AND is_active ORDER BY name`
	rows, err := r.q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var list []*entity.BusinessService
	for rows.Next() {
		var s entity.BusinessService
		if err := rows.Scan(&s.ID, &s.BusinessID, &s.Name, &s.Description, &s.PriceRange,
			&s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update writes only the supplied patch fields and refreshes updated_at.
func (r *ServiceRepo) Update(ctx context.Context, id string, patch entity.BusinessServicePatch) error {
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
	if patch.PriceRange != nil {
		set("price_range", *patch.PriceRange)
	}

	query := fmt.Sprintf(`UPDATE business_services SET %s WHERE id = $1`, strings.Join(sets, ", "))
	cmd, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marks the service inactive.
func (r *ServiceRepo) SoftDelete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE business_services SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete service: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
