package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isokohq/isoko-api/internal/application/dto"
	"github.com/isokohq/isoko-api/internal/domain"
	"github.com/isokohq/isoko-api/internal/domain/entity"
	"github.com/isokohq/isoko-api/pkg/config"
	"github.com/isokohq/isoko-api/pkg/logger"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, e := range f.users {
		if e.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	f.users[u.ID] = &cp
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

func (f *fakeUserRepo) Update(_ context.Context, _ *entity.User) error { return nil }

func newAuthFixture() (*Usecase, *fakeUserRepo) {
	users := newFakeUserRepo()
	cfg := config.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "isoko-test"}
	return NewUsecase(users, cfg, logger.Nop()), users
}

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:    "Marie@Isoko.rw",
		Password: "correct-horse",
		Name:     "Marie Uwase",
		Role:     entity.RoleOwner,
	}
}

func TestRegisterCreatesActiveAccount(t *testing.T) {
	uc, users := newAuthFixture()

	resp, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)
	assert.Equal(t, "marie@isoko.rw", resp.Email)
	assert.Equal(t, entity.RoleOwner, resp.Role)
	assert.Equal(t, "active", resp.Status)

	// The users INSERT carries created_at/updated_at from the entity.
	stored := users.users[resp.ID]
	require.NotNil(t, stored)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.False(t, stored.UpdatedAt.IsZero())
	assert.NotEqual(t, "correct-horse", stored.PasswordHash)
}

func TestRegisterDefaultsToCustomerRole(t *testing.T) {
	uc, _ := newAuthFixture()

	req := validRegister()
	req.Role = ""
	resp, err := uc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, resp.Role)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	uc, _ := newAuthFixture()

	req := validRegister()
	req.Role = entity.RoleAdmin
	_, err := uc.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), validRegister())
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLoginRoundTrip(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "marie@isoko.rw",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, entity.RoleOwner, resp.User.Role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email:    "marie@isoko.rw",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
