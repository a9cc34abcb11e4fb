package postgres

import (
	"context"
	"fmt"

	"github.com/isokohq/isoko-api/internal/domain/entity"
	"github.com/isokohq/isoko-api/internal/domain/repository"
)

var _ repository.HoursRepository = (*HoursRepo)(nil)

// HoursRepo HoursRepository implementation (usable with pool or tx).
// The weekly bulk replace runs Create/DeleteByBusiness inside one transaction
// via the TxRunner.
type HoursRepo struct {
	q Querier
}

// NewHoursRepository builds the adapter. Pass pool or tx (Querier).
func NewHoursRepository(q Querier) *HoursRepo {
	return &HoursRepo{q: q}
}

// ListByBusiness returns the stored week ordered by weekday.
func (r *HoursRepo) ListByBusiness(ctx context.Context, businessID string) (entity.WeekSchedule, error) {
	query := `
		SELECT id, business_id, day_of_week, is_open, open_time, close_time, break_start, break_end, created_at, updated_at
		FROM operating_hours WHERE business_id = $1 ORDER BY day_of_week`
	rows, err := r.q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list operating hours: %w", err)
	}
	defer rows.Close()

	var week entity.WeekSchedule
	for rows.Next() {
		var h entity.OperatingHours
		if err := rows.Scan(&h.ID, &h.BusinessID, &h.DayOfWeek, &h.IsOpen, &h.OpenTime, &h.CloseTime,
			&h.BreakStart, &h.BreakEnd, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan operating hours: %w", err)
		}
		week = append(week, h)
	}
	return week, rows.Err()
}

// DeleteByBusiness removes the stored week. Only meaningful inside the
// bulk-replace transaction.
func (r *HoursRepo) DeleteByBusiness(ctx context.Context, businessID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM operating_hours WHERE business_id = $1`, businessID)
	if err != nil {
		return fmt.Errorf("delete operating hours: %w", err)
	}
	return nil
}

// Create inserts one day row.
func (r *HoursRepo) Create(ctx context.Context, h *entity.OperatingHours) error {
	query := `
		INSERT INTO operating_hours (id, business_id, day_of_week, is_open, open_time, close_time, break_start, break_end, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		h.ID, h.BusinessID, h.DayOfWeek, h.IsOpen, h.OpenTime, h.CloseTime,
		h.BreakStart, h.BreakEnd, h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert operating hours: %w", err)
	}
	return nil
}
