package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/isokohq/isoko-api/internal/application/dto"
	"github.com/isokohq/isoko-api/internal/domain"
	"github.com/isokohq/isoko-api/internal/domain/entity"
	"github.com/isokohq/isoko-api/internal/domain/repository"
	"github.com/isokohq/isoko-api/pkg/logger"
)

// Trailing window lengths, in days, counted inclusive of today.
const (
	weeklyDays  = 7
	monthlyDays = 30
)

// ReportGenerator renders the analytics overview as a downloadable document.
type ReportGenerator interface {
	Overview(business *entity.Business, ov *dto.AnalyticsOverviewResponse) ([]byte, error)
}

// Service implements event recording and the dashboard aggregations.
//
// Recording is a dual write: the daily fact row is the source of truth and is
// bumped first; the denormalized lifetime counters on the business row follow
// outside any transaction. If the second write fails the event is still
// counted in the facts and the counters drift by one until the next recompute
// from facts; that trade was chosen over holding a transaction open on the
// hot tracking path.
type Service struct {
	analytics  repository.AnalyticsRepository
	businesses repository.BusinessRepository
	users      repository.UserRepository
	reports    ReportGenerator
	now        func() time.Time
	log        *logger.Logger
}

// NewService wires the analytics service.
func NewService(
	analytics repository.AnalyticsRepository,
	businesses repository.BusinessRepository,
	users repository.UserRepository,
	reports ReportGenerator,
	log *logger.Logger,
) *Service {
	return &Service{
		analytics:  analytics,
		businesses: businesses,
		users:      users,
		reports:    reports,
		now:        time.Now,
		log:        log,
	}
}

// RecordEvent counts one event against today's fact row for the business.
// Unauthenticated by design: tracking beacons fire from public pages.
func (s *Service) RecordEvent(ctx context.Context, businessID, eventType string) error {
	if !entity.ValidEventType(eventType) {
		return fmt.Errorf("%w: unknown event_type %q", domain.ErrInvalidInput, eventType)
	}
	b, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		return err
	}
	if b == nil || !b.IsActive() {
		return domain.ErrNotFound
	}

	if err := s.analytics.IncrementDaily(ctx, businessID, s.today(), eventType); err != nil {
		return err
	}

	// second write of the dual write; logged, never returned
	var counterErr error
	switch {
	case eventType == entity.EventPageView:
		counterErr = s.businesses.IncrementViewCounters(ctx, businessID)
	case entity.IsContactEvent(eventType):
		counterErr = s.businesses.IncrementContactCounters(ctx, businessID)
	}
	if counterErr != nil {
		s.log.Warn().Err(counterErr).
			Str("business_id", businessID).
			Str("event_type", eventType).
			Msg("analytics: business counter update failed")
	}
	return nil
}

// today is the current calendar date at midnight UTC, the fact row key.
func (s *Service) today() time.Time {
	return s.now().UTC().Truncate(24 * time.Hour)
}

// authorize lets the business owner or an admin read the dashboard.
func (s *Service) authorize(ctx context.Context, actorID, businessID string) (*entity.Business, error) {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	b, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.CanManage(b.OwnerID) {
		return nil, domain.ErrForbidden
	}
	return b, nil
}
