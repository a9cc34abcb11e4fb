package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/isokohq/isoko-api/internal/domain"
	"github.com/isokohq/isoko-api/internal/domain/entity"
	"github.com/isokohq/isoko-api/internal/domain/repository"
)

var _ repository.InquiryRepository = (*InquiryRepo)(nil)

const inquiryColumns = `id, business_id, customer_name, customer_email, customer_phone, subject, message,
	inquiry_type, status, priority, source, response_message, responded_at, created_at, updated_at`

// InquiryRepo InquiryRepository implementation (usable with pool or tx).
type InquiryRepo struct {
	q Querier
}

// NewInquiryRepository builds the adapter. Pass pool or tx (Querier).
func NewInquiryRepository(q Querier) *InquiryRepo {
	return &InquiryRepo{q: q}
}

// Create persists a new inquiry (status new, no response fields).
func (r *InquiryRepo) Create(ctx context.Context, inq *entity.CustomerInquiry) error {
	query := `
		INSERT INTO customer_inquiries (id, business_id, customer_name, customer_email, customer_phone,
			subject, message, inquiry_type, status, priority, source, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		inq.ID, inq.BusinessID, inq.CustomerName, inq.CustomerEmail, inq.CustomerPhone,
		inq.Subject, inq.Message, inq.InquiryType, inq.Status, inq.Priority, inq.Source,
		inq.CreatedAt, inq.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

// GetByID fetches an inquiry by ID.
func (r *InquiryRepo) GetByID(ctx context.Context, id string) (*entity.CustomerInquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM customer_inquiries WHERE id = $1`
	var inq entity.CustomerInquiry
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inq.ID, &inq.BusinessID, &inq.CustomerName, &inq.CustomerEmail, &inq.CustomerPhone,
		&inq.Subject, &inq.Message, &inq.InquiryType, &inq.Status, &inq.Priority, &inq.Source,
		&inq.ResponseMessage, &inq.RespondedAt, &inq.CreatedAt, &inq.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inquiry: %w", err)
	}
	return &inq, nil
}

// ListByBusiness lists inquiries matching the filter plus the total count.
func (r *InquiryRepo) ListByBusiness(ctx context.Context, businessID string, f repository.InquiryFilter) ([]*entity.CustomerInquiry, int, error) {
	where := []string{"business_id = $1"}
	args := []any{businessID}
	n := 1

	add := func(clause string, value any) {
		n++
		where = append(where, fmt.Sprintf(clause, n))
		args = append(args, value)
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.InquiryType != "" {
		add("inquiry_type = $%d", f.InquiryType)
	}
	if f.Priority != "" {
		add("priority = $%d", f.Priority)
	}

	whereSQL := strings.Join(where, " AND ")

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customer_inquiries WHERE `+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count inquiries: %w", err)
	}

	// Sort column whitelist: anything else falls back to newest-first.
	orderBy := "created_at DESC"
	if f.SortBy == "priority" {
		orderBy = `CASE priority WHEN 'urgent' THEN 0 WHEN 'high' THEN 1 WHEN 'normal' THEN 2 ELSE 3 END, created_at DESC`
	}

	query := fmt.Sprintf(`SELECT %s FROM customer_inquiries WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		inquiryColumns, whereSQL, orderBy, n+1, n+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	var list []*entity.CustomerInquiry
	for rows.Next() {
		var inq entity.CustomerInquiry
		if err := rows.Scan(
			&inq.ID, &inq.BusinessID, &inq.CustomerName, &inq.CustomerEmail, &inq.CustomerPhone,
			&inq.Subject, &inq.Message, &inq.InquiryType, &inq.Status, &inq.Priority, &inq.Source,
			&inq.ResponseMessage, &inq.RespondedAt, &inq.CreatedAt, &inq.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan inquiry: %w", err)
		}
		list = append(list, &inq)
	}
	return list, total, rows.Err()
}

// MarkAsRead flips status new -> read. The status guard in the WHERE clause
// makes repeated calls a no-op once the inquiry moved past new.
func (r *InquiryRepo) MarkAsRead(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `
		UPDATE customer_inquiries SET status = 'read', updated_at = now()
		WHERE id = $1 AND status = 'new'`, id)
	if err != nil {
		return fmt.Errorf("mark inquiry read: %w", err)
	}
	return nil
}

// SetResponse stores the response fields together and moves status to responded.
func (r *InquiryRepo) SetResponse(ctx context.Context, id, message string, respondedAt time.Time) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE customer_inquiries
		SET status = 'responded', response_message = $2, responded_at = $3, updated_at = now()
		WHERE id = $1`, id, message, respondedAt)
	if err != nil {
		return fmt.Errorf("set inquiry response: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus overwrites status (and optionally priority) with no
// transition-order enforcement.
func (r *InquiryRepo) UpdateStatus(ctx context.Context, id, status string, priority *string) error {
	var cmdErr error
	if priority != nil {
		cmd, err := r.q.Exec(ctx, `
			UPDATE customer_inquiries SET status = $2, priority = $3, updated_at = now()
			WHERE id = $1`, id, status, *priority)
		if err == nil && cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		cmdErr = err
	} else {
		cmd, err := r.q.Exec(ctx, `
			UPDATE customer_inquiries SET status = $2, updated_at = now()
			WHERE id = $1`, id, status)
		if err == nil && cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		cmdErr = err
	}
	if cmdErr != nil {
		return fmt.Errorf("update inquiry status: %w", cmdErr)
	}
	return nil
}

// UpdatePriority changes the priority axis only.
func (r *InquiryRepo) UpdatePriority(ctx context.Context, id, priority string) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE customer_inquiries SET priority = $2, updated_at = now()
		WHERE id = $1`, id, priority)
	if err != nil {
		return fmt.Errorf("update inquiry priority: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// StatusCounts returns per-status totals for a business.
func (r *InquiryRepo) StatusCounts(ctx context.Context, businessID string) (repository.InquiryStatusCounts, error) {
	var c repository.InquiryStatusCounts
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'new'),
		       COUNT(*) FILTER (WHERE status = 'read'),
		       COUNT(*) FILTER (WHERE status = 'responded'),
		       COUNT(*) FILTER (WHERE status = 'closed')
		FROM customer_inquiries WHERE business_id = $1`, businessID).Scan(
		&c.Total, &c.New, &c.Read, &c.Responded, &c.Closed,
	)
	if err != nil {
		return repository.InquiryStatusCounts{}, fmt.Errorf("inquiry status counts: %w", err)
	}
	return c, nil
}

// ResponseStatsSince aggregates the trailing-window history feeding the
// response-rate recompute. The average is in hours; zero when nothing was
// responded to.
func (r *InquiryRepo) ResponseStatsSince(ctx context.Context, businessID string, since time.Time) (repository.ResponseStats, error) {
	var s repository.ResponseStats
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(responded_at),
		       COALESCE(AVG(EXTRACT(EPOCH FROM (responded_at - created_at)) / 3600.0)
		                FILTER (WHERE responded_at IS NOT NULL), 0)
		FROM customer_inquiries
		WHERE business_id = $1 AND created_at >= $2`, businessID, since).Scan(
		&s.Total, &s.Responded, &s.AvgRespHours,
	)
	if err != nil {
		return repository.ResponseStats{}, fmt.Errorf("inquiry response stats: %w", err)
	}
	return s, nil
}
