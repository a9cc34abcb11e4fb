package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/isokohq/isoko-api/internal/application/dto"
	"github.com/isokohq/isoko-api/internal/domain"
	"github.com/isokohq/isoko-api/internal/domain/entity"
	"github.com/isokohq/isoko-api/internal/domain/repository"
	"github.com/isokohq/isoko-api/pkg/logger"
)

// HoursTxRunner runs the weekly bulk replace inside one transaction so a
// partial failure leaves the previous schedule untouched.
type HoursTxRunner interface {
	RunHours(ctx context.Context, fn func(hours repository.HoursRepository) error) error
}

// HoursUsecase implements the weekly operating schedule.
type HoursUsecase struct {
	hours      repository.HoursRepository
	businesses repository.BusinessRepository
	users      repository.UserRepository
	runner     HoursTxRunner
	now        func() time.Time
	log        *logger.Logger
}

// NewHoursUsecase wires the operating hours use case.
func NewHoursUsecase(hours repository.HoursRepository, businesses repository.BusinessRepository, users repository.UserRepository, runner HoursTxRunner, log *logger.Logger) *HoursUsecase {
	return &HoursUsecase{
		hours:      hours,
		businesses: businesses,
		users:      users,
		runner:     runner,
		now:        time.Now,
		log:        log,
	}
}

// Get returns the week schedule with the current open/closed state.
func (uc *HoursUsecase) Get(ctx context.Context, businessID string) (*dto.HoursResponse, error) {
	week, err := uc.hours.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	days := make([]dto.DayHoursResponse, 0, len(week))
	for _, h := range week {
		days = append(days, dto.DayHoursResponse{
			DayOfWeek:  h.DayOfWeek,
			IsOpen:     h.IsOpen,
			OpenTime:   h.OpenTime,
			CloseTime:  h.CloseTime,
			BreakStart: h.BreakStart,
			BreakEnd:   h.BreakEnd,
		})
	}

	st := week.StatusAt(uc.now())
	return &dto.HoursResponse{
		Days:       days,
		IsOpen:     st.IsOpen,
		Status:     st.Status,
		NextChange: st.NextChange,
	}, nil
}

// Replace swaps the full week schedule in one transaction: delete the old
// rows, insert the new seven. Validation happens before the transaction
// starts, so a bad payload never touches the stored schedule.
func (uc *HoursUsecase) Replace(ctx context.Context, actorID, businessID string, req dto.ReplaceHoursRequest) error {
	if err := uc.authorize(ctx, actorID, businessID); err != nil {
		return err
	}

	rows, err := uc.buildWeek(businessID, req)
	if err != nil {
		return err
	}

	return uc.runner.RunHours(ctx, func(hours repository.HoursRepository) error {
		if err := hours.DeleteByBusiness(ctx, businessID); err != nil {
			return err
		}
		for _, h := range rows {
			if err := hours.Create(ctx, h); err != nil {
				return err
			}
		}
		return nil
	})
}

// buildWeek validates the payload covers each weekday exactly once and that
// every day row is internally consistent.
func (uc *HoursUsecase) buildWeek(businessID string, req dto.ReplaceHoursRequest) ([]*entity.OperatingHours, error) {
	if len(req.Days) != 7 {
		return nil, fmt.Errorf("%w: expected 7 days, got %d", domain.ErrInvalidInput, len(req.Days))
	}

	now := uc.now().UTC()
	var seen [7]bool
	rows := make([]*entity.OperatingHours, 0, 7)
	for _, d := range req.Days {
		if d.DayOfWeek < 0 || d.DayOfWeek > 6 {
			return nil, fmt.Errorf("%w: day_of_week %d out of range", domain.ErrInvalidInput, d.DayOfWeek)
		}
		if seen[d.DayOfWeek] {
			return nil, fmt.Errorf("%w: day_of_week %d appears twice", domain.ErrInvalidInput, d.DayOfWeek)
		}
		seen[d.DayOfWeek] = true

		h := &entity.OperatingHours{
			ID:         uuid.NewString(),
			BusinessID: businessID,
			DayOfWeek:  d.DayOfWeek,
			IsOpen:     d.IsOpen,
			OpenTime:   d.OpenTime,
			CloseTime:  d.CloseTime,
			BreakStart: d.BreakStart,
			BreakEnd:   d.BreakEnd,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := h.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		rows = append(rows, h)
	}
	return rows, nil
}

func (uc *HoursUsecase) authorize(ctx context.Context, actorID, businessID string) error {
	actor, err := uc.users.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if actor == nil {
		return domain.ErrUnauthorized
	}
	b, err := uc.businesses.GetByID(ctx, businessID)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	if !actor.CanManage(b.OwnerID) {
		return domain.ErrForbidden
	}
	return nil
}
