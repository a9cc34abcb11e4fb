package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isokohq/isoko-api/internal/application/dto"
	"github.com/isokohq/isoko-api/internal/domain"
	"github.com/isokohq/isoko-api/internal/domain/entity"
	"github.com/isokohq/isoko-api/pkg/logger"
)

func newBusinessFixture() (*BusinessUsecase, *fakeBusinessRepo) {
	users := newFakeUserRepo(
		&entity.User{ID: "owner-1", Role: entity.RoleOwner},
		&entity.User{ID: "owner-2", Role: entity.RoleOwner},
		&entity.User{ID: "admin-1", Role: entity.RoleAdmin},
		&entity.User{ID: "cust-1", Role: entity.RoleCustomer},
	)
	businesses := newFakeBusinessRepo()
	return NewBusinessUsecase(businesses, businesses, users, logger.Nop()), businesses
}

func TestBusinessCreateGeneratesSlug(t *testing.T) {
	uc, _ := newBusinessFixture()

	resp, err := uc.Create(context.Background(), "owner-1", dto.CreateBusinessRequest{
		Name:     "Kigali Construction Ltd!",
		Category: "construction",
		City:     "Kigali",
	})
	require.NoError(t, err)
	assert.Equal(t, "kigali-construction-ltd", resp.Slug)
	assert.Equal(t, "active", resp.Status)
}

func TestBusinessCreateStampsTimestamps(t *testing.T) {
	uc, businesses := newBusinessFixture()

	resp, err := uc.Create(context.Background(), "owner-1", dto.CreateBusinessRequest{
		Name:     "Musanze Hardware",
		Category: "retail",
	})
	require.NoError(t, err)

	// The INSERT takes created_at/updated_at from the entity, so zero values
	// here would become 0001-01-01 rows and break created_at ordering.
	stored := businesses.businesses[resp.ID]
	require.NotNil(t, stored)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.False(t, stored.UpdatedAt.IsZero())
}

func TestBusinessCreateSuffixesTakenSlug(t *testing.T) {
	uc, _ := newBusinessFixture()

	first, err := uc.Create(context.Background(), "owner-1", dto.CreateBusinessRequest{
		Name: "Nyamirambo Bakery", Category: "food", City: "Kigali",
	})
	require.NoError(t, err)

	second, err := uc.Create(context.Background(), "owner-2", dto.CreateBusinessRequest{
		Name: "Nyamirambo Bakery", Category: "food", City: "Kigali",
	})
	require.NoError(t, err)

	assert.Equal(t, "nyamirambo-bakery", first.Slug)
	assert.True(t, strings.HasPrefix(second.Slug, "nyamirambo-bakery-"))
	assert.NotEqual(t, first.Slug, second.Slug)
}

func TestBusinessCreateForbiddenForCustomers(t *testing.T) {
	uc, _ := newBusinessFixture()

	_, err := uc.Create(context.Background(), "cust-1", dto.CreateBusinessRequest{
		Name: "Shop", Category: "retail",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBusinessUpdateForbiddenForNonOwner(t *testing.T) {
	uc, _ := newBusinessFixture()

	created, err := uc.Create(context.Background(), "owner-1", dto.CreateBusinessRequest{
		Name: "Gisenyi Tours", Category: "tourism",
	})
	require.NoError(t, err)

	name := "Renamed"
	_, err = uc.Update(context.Background(), "owner-2", created.ID, dto.UpdateBusinessRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBusinessVerificationIsAdminOnly(t *testing.T) {
	uc, _ := newBusinessFixture()

	created, err := uc.Create(context.Background(), "owner-1", dto.CreateBusinessRequest{
		Name: "Huye Coffee", Category: "food",
	})
	require.NoError(t, err)

	verified := true
	_, err = uc.Update(context.Background(), "owner-1", created.ID, dto.UpdateBusinessRequest{IsVerified: &verified})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	resp, err := uc.Update(context.Background(), "admin-1", created.ID, dto.UpdateBusinessRequest{IsVerified: &verified})
	require.NoError(t, err)
	assert.True(t, resp.IsVerified)
}

func TestBusinessDeleteHidesPublicProfile(t *testing.T) {
	uc, _ := newBusinessFixture()

	created, err := uc.Create(context.Background(), "owner-1", dto.CreateBusinessRequest{
		Name: "Musanze Hardware", Category: "retail",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), "owner-1", created.ID))

	_, err = uc.GetBySlug(context.Background(), created.Slug)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
