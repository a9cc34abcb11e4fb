package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/isokohq/isoko-api/internal/domain"
	"github.com/isokohq/isoko-api/internal/domain/entity"
	"github.com/isokohq/isoko-api/internal/domain/repository"
)

// In-memory fakes shared by the use case tests.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	m := make(map[string]*entity.User)
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, e := range f.users {
		if e.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

type fakeBusinessRepo struct {
	businesses map[string]*entity.Business

	viewIncrements    int
	contactIncrements int

	respRate    decimal.Decimal
	respMinutes int
	respUpdates int
}

func newFakeBusinessRepo(businesses ...*entity.Business) *fakeBusinessRepo {
	m := make(map[string]*entity.Business)
	for _, b := range businesses {
		m[b.ID] = b
	}
	return &fakeBusinessRepo{businesses: m}
}

func (f *fakeBusinessRepo) Create(_ context.Context, b *entity.Business) error {
	for _, e := range f.businesses {
		if e.Slug == b.Slug {
			return domain.ErrDuplicate
		}
	}
	f.businesses[b.ID] = b
	return nil
}

func (f *fakeBusinessRepo) GetByID(_ context.Context, id string) (*entity.Business, error) {
	return f.businesses[id], nil
}

func (f *fakeBusinessRepo) GetBySlug(_ context.Context, slug string) (*entity.Business, error) {
	for _, b := range f.businesses {
		if b.Slug == slug {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBusinessRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, b := range f.businesses {
		if b.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBusinessRepo) List(_ context.Context, _ repository.BusinessFilter) ([]*entity.Business, int, error) {
	var out []*entity.Business
	for _, b := range f.businesses {
		if b.IsActive() {
			out = append(out, b)
		}
	}
	return out, len(out), nil
}

func (f *fakeBusinessRepo) Update(_ context.Context, id string, patch entity.BusinessPatch) error {
	b, ok := f.businesses[id]
	if !ok {
		return domain.ErrNotFound
	}
	if patch.Name != nil {
		b.Name = *patch.Name
	}
	if patch.Description != nil {
		b.Description = *patch.Description
	}
	if patch.IsVerified != nil {
		b.IsVerified = *patch.IsVerified
	}
	return nil
}

func (f *fakeBusinessRepo) SoftDelete(_ context.Context, id string) error {
	b, ok := f.businesses[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.Status = "inactive"
	return nil
}

func (f *fakeBusinessRepo) IncrementViewCounters(_ context.Context, id string) error {
	f.viewIncrements++
	if b, ok := f.businesses[id]; ok {
		b.ViewCount++
		b.MonthlyViews++
	}
	return nil
}

func (f *fakeBusinessRepo) IncrementContactCounters(_ context.Context, id string) error {
	f.contactIncrements++
	if b, ok := f.businesses[id]; ok {
		b.ContactCount++
		b.MonthlyContacts++
	}
	return nil
}

func (f *fakeBusinessRepo) UpdateResponseStats(_ context.Context, id string, rate decimal.Decimal, avgMinutes int) error {
	f.respRate = rate
	f.respMinutes = avgMinutes
	f.respUpdates++
	if b, ok := f.businesses[id]; ok {
		b.ResponseRate = rate
		b.AvgResponseTime = avgMinutes
	}
	return nil
}

func (f *fakeBusinessRepo) UpdateRating(_ context.Context, id string, rating decimal.Decimal, reviewCount int) error {
	if b, ok := f.businesses[id]; ok {
		b.Rating = rating
		b.ReviewCount = reviewCount
	}
	return nil
}

type fakeHoursRepo struct {
	rows map[string]entity.WeekSchedule // keyed by business id

	failCreateAt int // fail the nth Create call when > 0
	creates      int
}

func newFakeHoursRepo() *fakeHoursRepo {
	return &fakeHoursRepo{rows: make(map[string]entity.WeekSchedule)}
}

func (f *fakeHoursRepo) ListByBusiness(_ context.Context, businessID string) (entity.WeekSchedule, error) {
	return f.rows[businessID], nil
}

func (f *fakeHoursRepo) DeleteByBusiness(_ context.Context, businessID string) error {
	delete(f.rows, businessID)
	return nil
}

func (f *fakeHoursRepo) Create(_ context.Context, h *entity.OperatingHours) error {
	f.creates++
	if f.failCreateAt > 0 && f.creates == f.failCreateAt {
		return fmt.Errorf("insert failed")
	}
	f.rows[h.BusinessID] = append(f.rows[h.BusinessID], *h)
	return nil
}

// fakeTxRunner mimics transactional bulk replace: the callback runs against a
// scratch copy that only replaces the real state on success.
type fakeTxRunner struct {
	repo *fakeHoursRepo
	runs int
}

func (r *fakeTxRunner) RunHours(ctx context.Context, fn func(repository.HoursRepository) error) error {
	r.runs++
	scratch := newFakeHoursRepo()
	for k, v := range r.repo.rows {
		scratch.rows[k] = append(entity.WeekSchedule(nil), v...)
	}
	scratch.failCreateAt = r.repo.failCreateAt
	if err := fn(scratch); err != nil {
		return err
	}
	r.repo.rows = scratch.rows
	return nil
}

func strptr(s string) *string { return &s }
