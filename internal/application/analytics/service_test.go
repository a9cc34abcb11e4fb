package analytics

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isokohq/isoko-api/internal/domain"
	"github.com/isokohq/isoko-api/internal/domain/entity"
	"github.com/isokohq/isoko-api/internal/domain/repository"
	"github.com/isokohq/isoko-api/pkg/logger"
)

type dailyCall struct {
	day       time.Time
	eventType string
}

type fakeAnalyticsRepo struct {
	calls  []dailyCall
	ranges map[string]entity.AnalyticsTotals // keyed by "from_to" (YYYY-MM-DD)
	series []*entity.BusinessAnalytics
}

func rangeKey(from, to time.Time) string {
	return from.Format("2006-01-02") + "_" + to.Format("2006-01-02")
}

func (f *fakeAnalyticsRepo) IncrementDaily(_ context.Context, _ string, day time.Time, eventType string) error {
	f.calls = append(f.calls, dailyCall{day: day, eventType: eventType})
	return nil
}

func (f *fakeAnalyticsRepo) SumRange(_ context.Context, _ string, from, to time.Time) (entity.AnalyticsTotals, error) {
	return f.ranges[rangeKey(from, to)], nil
}

func (f *fakeAnalyticsRepo) DailySeries(_ context.Context, _ string, _, _ time.Time) ([]*entity.BusinessAnalytics, error) {
	return f.series, nil
}

type fakeBusinessRepo struct {
	businesses        map[string]*entity.Business
	viewIncrements    int
	contactIncrements int
	counterErr        error
}

func (f *fakeBusinessRepo) Create(_ context.Context, _ *entity.Business) error { return nil }
func (f *fakeBusinessRepo) GetByID(_ context.Context, id string) (*entity.Business, error) {
	return f.businesses[id], nil
}
func (f *fakeBusinessRepo) GetBySlug(_ context.Context, _ string) (*entity.Business, error) {
	return nil, nil
}
func (f *fakeBusinessRepo) SlugExists(_ context.Context, _ string) (bool, error) { return false, nil }
func (f *fakeBusinessRepo) List(_ context.Context, _ repository.BusinessFilter) ([]*entity.Business, int, error) {
	return nil, 0, nil
}
func (f *fakeBusinessRepo) Update(_ context.Context, _ string, _ entity.BusinessPatch) error {
	return nil
}
func (f *fakeBusinessRepo) SoftDelete(_ context.Context, _ string) error { return nil }
func (f *fakeBusinessRepo) IncrementViewCounters(_ context.Context, _ string) error {
	if f.counterErr != nil {
		return f.counterErr
	}
	f.viewIncrements++
	return nil
}
func (f *fakeBusinessRepo) IncrementContactCounters(_ context.Context, _ string) error {
	if f.counterErr != nil {
		return f.counterErr
	}
	f.contactIncrements++
	return nil
}
func (f *fakeBusinessRepo) UpdateResponseStats(_ context.Context, _ string, _ decimal.Decimal, _ int) error {
	return nil
}
func (f *fakeBusinessRepo) UpdateRating(_ context.Context, _ string, _ decimal.Decimal, _ int) error {
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, _ *entity.User) error { return nil }
func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(_ context.Context, _ *entity.User) error { return nil }

func newServiceFixture() (*Service, *fakeAnalyticsRepo, *fakeBusinessRepo) {
	facts := &fakeAnalyticsRepo{ranges: make(map[string]entity.AnalyticsTotals)}
	biz := &fakeBusinessRepo{businesses: map[string]*entity.Business{
		"biz-1": {ID: "biz-1", OwnerID: "owner-1", Status: "active"},
	}}
	users := &fakeUserRepo{users: map[string]*entity.User{
		"owner-1": {ID: "owner-1", Role: entity.RoleOwner},
		"other-1": {ID: "other-1", Role: entity.RoleOwner},
	}}
	svc := NewService(facts, biz, users, nil, logger.Nop())
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 15, 42, 0, 0, time.UTC) }
	return svc, facts, biz
}

func TestRecordEventRejectsUnknownType(t *testing.T) {
	svc, _, _ := newServiceFixture()
	err := svc.RecordEvent(context.Background(), "biz-1", "mouse_move")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordEventRejectsUnknownBusiness(t *testing.T) {
	svc, _, _ := newServiceFixture()
	err := svc.RecordEvent(context.Background(), "nope", entity.EventPageView)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordEventBumpsDailyRowAtUTCDate(t *testing.T) {
	svc, facts, biz := newServiceFixture()

	require.NoError(t, svc.RecordEvent(context.Background(), "biz-1", entity.EventPageView))
	require.Len(t, facts.calls, 1)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), facts.calls[0].day)
	assert.Equal(t, entity.EventPageView, facts.calls[0].eventType)
	assert.Equal(t, 1, biz.viewIncrements)
	assert.Equal(t, 0, biz.contactIncrements)
}

func TestRecordEventContactClicksBumpContactCounters(t *testing.T) {
	svc, _, biz := newServiceFixture()

	for _, e := range []string{entity.EventContactClick, entity.EventPhoneClick, entity.EventEmailClick} {
		require.NoError(t, svc.RecordEvent(context.Background(), "biz-1", e))
	}
	assert.Equal(t, 3, biz.contactIncrements)
	assert.Equal(t, 0, biz.viewIncrements)
}

func TestRecordEventOtherTypesTouchNoCounters(t *testing.T) {
	svc, facts, biz := newServiceFixture()

	require.NoError(t, svc.RecordEvent(context.Background(), "biz-1", entity.EventSearchClick))
	assert.Len(t, facts.calls, 1)
	assert.Equal(t, 0, biz.viewIncrements)
	assert.Equal(t, 0, biz.contactIncrements)
}

func TestRecordEventSurvivesCounterFailure(t *testing.T) {
	svc, facts, biz := newServiceFixture()
	biz.counterErr = fmt.Errorf("primary unavailable")

	err := svc.RecordEvent(context.Background(), "biz-1", entity.EventPageView)
	assert.NoError(t, err, "the fact row is already counted; counter drift is tolerated")
	assert.Len(t, facts.calls, 1)
}

func TestOverviewWindowsAndGrowth(t *testing.T) {
	svc, facts, _ := newServiceFixture()

	// now = 2026-09-01: weekly window 08-26..09-01, prior 08-19..08-25,
	// monthly 08-03..09-01, prior 07-04..08-02.
	facts.ranges[rangeKey(date(2026, 8, 26), date(2026, 9, 1))] = entity.AnalyticsTotals{PageViews: 70, ContactClicks: 7}
	facts.ranges[rangeKey(date(2026, 8, 19), date(2026, 8, 25))] = entity.AnalyticsTotals{PageViews: 50, ContactClicks: 0}
	facts.ranges[rangeKey(date(2026, 8, 3), date(2026, 9, 1))] = entity.AnalyticsTotals{PageViews: 300, ContactClicks: 60}
	facts.ranges[rangeKey(date(2026, 7, 4), date(2026, 8, 2))] = entity.AnalyticsTotals{PageViews: 200, ContactClicks: 80}
	facts.series = []*entity.BusinessAnalytics{
		{Date: date(2026, 8, 31), PageViews: 12, ContactClicks: 1, PhoneClicks: 2},
		{Date: date(2026, 9, 1), PageViews: 8, EmailClicks: 1},
	}

	ov, err := svc.GetOverview(context.Background(), "owner-1", "biz-1")
	require.NoError(t, err)

	assert.Equal(t, int64(70), ov.Weekly.PageViews)
	assert.True(t, ov.Weekly.AvgDailyViews.Equal(decimal.NewFromInt(10)))

	assert.True(t, ov.Growth.WeeklyViews.Equal(decimal.NewFromInt(40)), "70 over 50 = +40%%")
	assert.True(t, ov.Growth.WeeklyContacts.Equal(decimal.NewFromInt(100)), "activity over empty prior window")
	assert.True(t, ov.Growth.MonthlyViews.Equal(decimal.NewFromInt(50)))
	assert.True(t, ov.Growth.MonthlyContacts.Equal(decimal.RequireFromString("-25")))

	// 60 contacts / 300 views
	assert.True(t, ov.ConversionRate.Equal(decimal.NewFromInt(20)))

	require.Len(t, ov.Daily, 2)
	assert.Equal(t, "2026-08-31", ov.Daily[0].Date)
	assert.Equal(t, int64(3), ov.Daily[0].Contacts)
	assert.Equal(t, int64(1), ov.Daily[1].Contacts)
}

func TestOverviewForbiddenForNonOwner(t *testing.T) {
	svc, _, _ := newServiceFixture()
	_, err := svc.GetOverview(context.Background(), "other-1", "biz-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
