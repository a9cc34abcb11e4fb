package repository

import (
	"context"

	"github.com/isokohq/isoko-api/internal/domain/entity"
)

// HoursRepository persistence port for weekly operating hours.
type HoursRepository interface {
	ListByBusiness(ctx context.Context, businessID string) (entity.WeekSchedule, error)

	// DeleteByBusiness and Create are meant to run inside one transaction
	// (bulk replace); see the TxRunner.
	DeleteByBusiness(ctx context.Context, businessID string) error
	Create(ctx context.Context, h *entity.OperatingHours) error
}
