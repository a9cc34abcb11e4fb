package inquiry

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isokohq/isoko-api/internal/application/dto"
	"github.com/isokohq/isoko-api/internal/application/notify"
	"github.com/isokohq/isoko-api/internal/domain"
	"github.com/isokohq/isoko-api/internal/domain/entity"
	"github.com/isokohq/isoko-api/internal/domain/repository"
	"github.com/isokohq/isoko-api/pkg/logger"
)

type fakeInquiryRepo struct {
	inquiries     map[string]*entity.CustomerInquiry
	markReadCalls int
	stats         repository.ResponseStats
	statsErr      error
}

func newFakeInquiryRepo() *fakeInquiryRepo {
	return &fakeInquiryRepo{inquiries: make(map[string]*entity.CustomerInquiry)}
}

func (f *fakeInquiryRepo) Create(_ context.Context, inq *entity.CustomerInquiry) error {
	// Stores the entity verbatim, like the INSERT in the pg repository.
	cp := *inq
	f.inquiries[inq.ID] = &cp
	return nil
}

func (f *fakeInquiryRepo) GetByID(_ context.Context, id string) (*entity.CustomerInquiry, error) {
	inq, ok := f.inquiries[id]
	if !ok {
		return nil, nil
	}
	cp := *inq
	return &cp, nil
}

func (f *fakeInquiryRepo) ListByBusiness(_ context.Context, businessID string, _ repository.InquiryFilter) ([]*entity.CustomerInquiry, int, error) {
	var out []*entity.CustomerInquiry
	for _, inq := range f.inquiries {
		if inq.BusinessID == businessID {
			cp := *inq
			out = append(out, &cp)
		}
	}
	return out, len(out), nil
}

func (f *fakeInquiryRepo) MarkAsRead(_ context.Context, id string) error {
	f.markReadCalls++
	if inq, ok := f.inquiries[id]; ok && inq.Status == entity.InquiryStatusNew {
		inq.Status = entity.InquiryStatusRead
	}
	return nil
}

func (f *fakeInquiryRepo) SetResponse(_ context.Context, id, message string, respondedAt time.Time) error {
	inq, ok := f.inquiries[id]
	if !ok {
		return domain.ErrNotFound
	}
	inq.Status = entity.InquiryStatusResponded
	inq.ResponseMessage = &message
	inq.RespondedAt = &respondedAt
	return nil
}

func (f *fakeInquiryRepo) UpdateStatus(_ context.Context, id, status string, priority *string) error {
	inq, ok := f.inquiries[id]
	if !ok {
		return domain.ErrNotFound
	}
	inq.Status = status
	if priority != nil {
		inq.Priority = *priority
	}
	return nil
}

func (f *fakeInquiryRepo) UpdatePriority(_ context.Context, id, priority string) error {
	inq, ok := f.inquiries[id]
	if !ok {
		return domain.ErrNotFound
	}
	inq.Priority = priority
	return nil
}

func (f *fakeInquiryRepo) StatusCounts(_ context.Context, businessID string) (repository.InquiryStatusCounts, error) {
	var c repository.InquiryStatusCounts
	for _, inq := range f.inquiries {
		if inq.BusinessID != businessID {
			continue
		}
		c.Total++
		switch inq.Status {
		case entity.InquiryStatusNew:
			c.New++
		case entity.InquiryStatusRead:
			c.Read++
		case entity.InquiryStatusResponded:
			c.Responded++
		case entity.InquiryStatusClosed:
			c.Closed++
		}
	}
	return c, nil
}

func (f *fakeInquiryRepo) ResponseStatsSince(_ context.Context, _ string, _ time.Time) (repository.ResponseStats, error) {
	return f.stats, f.statsErr
}

type fakeBusinessRepo struct {
	businesses map[string]*entity.Business
	respRate   decimal.Decimal
	respMins   int
	respCalls  int
}

func (f *fakeBusinessRepo) Create(_ context.Context, b *entity.Business) error { return nil }
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
func (f *fakeBusinessRepo) SoftDelete(_ context.Context, _ string) error              { return nil }
func (f *fakeBusinessRepo) IncrementViewCounters(_ context.Context, _ string) error   { return nil }
func (f *fakeBusinessRepo) IncrementContactCounters(_ context.Context, _ string) error { return nil }
func (f *fakeBusinessRepo) UpdateResponseStats(_ context.Context, _ string, rate decimal.Decimal, avgMinutes int) error {
	f.respRate = rate
	f.respMins = avgMinutes
	f.respCalls++
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

type fakeRecorder struct {
	events []string
	err    error
}

func (f *fakeRecorder) RecordEvent(_ context.Context, _, eventType string) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, eventType)
	return nil
}

type fakeNotifier struct {
	emails []notify.Email
}

func (f *fakeNotifier) Enqueue(e notify.Email) bool {
	f.emails = append(f.emails, e)
	return true
}

type fixture struct {
	uc        *Usecase
	inquiries *fakeInquiryRepo
	biz       *fakeBusinessRepo
	recorder  *fakeRecorder
	notifier  *fakeNotifier
}

func newFixture() *fixture {
	inquiries := newFakeInquiryRepo()
	biz := &fakeBusinessRepo{businesses: map[string]*entity.Business{
		"biz-1": {ID: "biz-1", OwnerID: "owner-1", Name: "Kigali Plumbing", Status: "active"},
	}}
	users := &fakeUserRepo{users: map[string]*entity.User{
		"owner-1": {ID: "owner-1", Email: "owner@isoko.rw", Name: "Owner", Role: entity.RoleOwner},
		"other-1": {ID: "other-1", Email: "other@isoko.rw", Role: entity.RoleOwner},
		"admin-1": {ID: "admin-1", Email: "admin@isoko.rw", Role: entity.RoleAdmin},
	}}
	recorder := &fakeRecorder{}
	notifier := &fakeNotifier{}
	uc := NewUsecase(inquiries, biz, users, recorder, notifier, logger.Nop())
	return &fixture{uc: uc, inquiries: inquiries, biz: biz, recorder: recorder, notifier: notifier}
}

func validCreate() dto.CreateInquiryRequest {
	return dto.CreateInquiryRequest{
		CustomerName:  "Jean Bosco",
		CustomerEmail: "jean@example.rw",
		Subject:       "Quote for bathroom renovation",
		Message:       "Hello, I need a quote for renovating two bathrooms.",
		InquiryType:   entity.InquiryTypeQuote,
	}
}

func TestCreateInquiryStartsNew(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Create(context.Background(), "biz-1", validCreate())
	require.NoError(t, err)
	assert.Equal(t, entity.InquiryStatusNew, resp.Status)
	assert.Equal(t, entity.PriorityNormal, resp.Priority)
	assert.Equal(t, "web", resp.Source)
	assert.Nil(t, resp.ResponseMessage)
	assert.Nil(t, resp.RespondedAt)
}

func TestCreateInquiryStampsTimestamps(t *testing.T) {
	f := newFixture()
	at := time.Date(2026, 9, 1, 15, 42, 0, 0, time.UTC)
	f.uc.now = func() time.Time { return at }

	resp, err := f.uc.Create(context.Background(), "biz-1", validCreate())
	require.NoError(t, err)

	// The repository inserts created_at/updated_at from the entity, so the
	// use case must stamp them before handing the row to persistence.
	stored := f.inquiries.inquiries[resp.ID]
	require.NotNil(t, stored)
	assert.Equal(t, at, stored.CreatedAt)
	assert.Equal(t, at, stored.UpdatedAt)
	assert.False(t, resp.CreatedAt.IsZero())
}

func TestCreateInquiryRecordsContactEventAndNotifiesOwner(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Create(context.Background(), "biz-1", validCreate())
	require.NoError(t, err)

	assert.Equal(t, []string{entity.EventContactClick}, f.recorder.events)
	require.Len(t, f.notifier.emails, 1)
	assert.Equal(t, "owner@isoko.rw", f.notifier.emails[0].To)
}

func TestCreateInquirySurvivesEventFailure(t *testing.T) {
	f := newFixture()
	f.recorder.err = fmt.Errorf("analytics down")

	resp, err := f.uc.Create(context.Background(), "biz-1", validCreate())
	require.NoError(t, err, "analytics failure must not fail the inquiry")
	assert.NotEmpty(t, resp.ID)
}

func TestCreateInquiryRejectsInactiveBusiness(t *testing.T) {
	f := newFixture()
	f.biz.businesses["biz-1"].Status = "inactive"

	_, err := f.uc.Create(context.Background(), "biz-1", validCreate())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetMarksNewAsReadOnce(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(context.Background(), "biz-1", validCreate())
	require.NoError(t, err)

	first, err := f.uc.Get(context.Background(), "owner-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InquiryStatusRead, first.Status)

	second, err := f.uc.Get(context.Background(), "owner-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InquiryStatusRead, second.Status)
	assert.Equal(t, 1, f.inquiries.markReadCalls, "read transition fires only from status new")
}

func TestGetForbiddenForOtherOwner(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(context.Background(), "biz-1", validCreate())
	require.NoError(t, err)

	_, err = f.uc.Get(context.Background(), "other-1", created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.uc.Get(context.Background(), "admin-1", created.ID)
	assert.NoError(t, err, "admins may read any inbox")
}

func TestRespondSetsMessageAndTimestampTogether(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(context.Background(), "biz-1", validCreate())
	require.NoError(t, err)

	resp, err := f.uc.Respond(context.Background(), "owner-1", created.ID, dto.RespondInquiryRequest{
		ResponseMessage: "Thanks for reaching out, we can visit on Thursday.",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.InquiryStatusResponded, resp.Status)
	require.NotNil(t, resp.ResponseMessage)
	require.NotNil(t, resp.RespondedAt)

	stored, _ := f.inquiries.GetByID(context.Background(), created.ID)
	assert.Equal(t, (stored.ResponseMessage == nil), (stored.RespondedAt == nil))
}

func TestRespondRecomputesResponseStats(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(context.Background(), "biz-1", validCreate())
	require.NoError(t, err)

	f.inquiries.stats = repository.ResponseStats{Total: 10, Responded: 4, AvgRespHours: 2.5}

	_, err = f.uc.Respond(context.Background(), "owner-1", created.ID, dto.RespondInquiryRequest{
		ResponseMessage: "We will get back to you with a full quote.",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, f.biz.respCalls)
	assert.True(t, f.biz.respRate.Equal(decimal.NewFromInt(40)), "4/10 responded = 40%%, got %s", f.biz.respRate)
	assert.Equal(t, 150, f.biz.respMins, "2.5h average = 150 minutes")
}

func TestRespondTwiceConflicts(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(context.Background(), "biz-1", validCreate())
	require.NoError(t, err)

	req := dto.RespondInquiryRequest{ResponseMessage: "First response, long enough."}
	_, err = f.uc.Respond(context.Background(), "owner-1", created.ID, req)
	require.NoError(t, err)

	_, err = f.uc.Respond(context.Background(), "owner-1", created.ID, req)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRespondRejectsShortMessage(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(context.Background(), "biz-1", validCreate())
	require.NoError(t, err)

	_, err = f.uc.Respond(context.Background(), "owner-1", created.ID, dto.RespondInquiryRequest{
		ResponseMessage: "   ok   ",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatusIsUnguarded(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(context.Background(), "biz-1", validCreate())
	require.NoError(t, err)

	// straight to closed, skipping read/responded
	resp, err := f.uc.UpdateStatus(context.Background(), "owner-1", created.ID, dto.UpdateInquiryStatusRequest{
		Status: entity.InquiryStatusClosed,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.InquiryStatusClosed, resp.Status)

	// and back again
	resp, err = f.uc.UpdateStatus(context.Background(), "owner-1", created.ID, dto.UpdateInquiryStatusRequest{
		Status: entity.InquiryStatusNew,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.InquiryStatusNew, resp.Status)
}

func TestResponseRateMath(t *testing.T) {
	cases := []struct {
		responded, total int64
		want             string
	}{
		{0, 0, "0"},
		{0, 10, "0"},
		{4, 10, "40"},
		{1, 3, "33.33"},
		{10, 10, "100"},
	}
	for _, c := range cases {
		got := responseRate(c.responded, c.total)
		assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
			"responseRate(%d, %d) = %s, want %s", c.responded, c.total, got, c.want)
	}
}

func TestAvgResponseMinutes(t *testing.T) {
	assert.Equal(t, 0, avgResponseMinutes(0))
	assert.Equal(t, 150, avgResponseMinutes(2.5))
	assert.Equal(t, 90, avgResponseMinutes(1.4999), "rounds to nearest minute")
}
