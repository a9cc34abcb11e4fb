package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/isokohq/isoko-api/internal/application/dto"
	"github.com/isokohq/isoko-api/internal/domain"
	"github.com/isokohq/isoko-api/internal/domain/entity"
	"github.com/isokohq/isoko-api/internal/domain/repository"
	"github.com/isokohq/isoko-api/pkg/config"
	"github.com/isokohq/isoko-api/pkg/jwt"
	"github.com/isokohq/isoko-api/pkg/logger"
)

// Usecase implements account registration and login.
type Usecase struct {
	users repository.UserRepository
	cfg   config.JWTConfig
	log   *logger.Logger
}

// NewUsecase wires the auth use case.
func NewUsecase(users repository.UserRepository, cfg config.JWTConfig, log *logger.Logger) *Usecase {
	return &Usecase{users: users, cfg: cfg, log: log}
}

// Register creates an account. The admin role can never be self-assigned.
func (uc *Usecase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return nil, fmt.Errorf("%w: valid email is required", domain.ErrInvalidInput)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	role := req.Role
	switch role {
	case "":
		role = entity.RoleCustomer
	case entity.RoleOwner, entity.RoleCustomer:
	default:
		return nil, fmt.Errorf("%w: role must be owner or customer", domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	u := &entity.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}

	created, err := uc.users.GetByID(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", u.ID).Str("role", role).Msg("user registered")
	return toUserResponse(created), nil
}

// Login verifies credentials and issues a token carrying the user's role.
// Wrong email and wrong password are indistinguishable to the caller.
func (uc *Usecase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	u, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if u.Status != "active" {
		return nil, domain.ErrForbidden
	}

	token, err := jwt.Generate(uc.cfg.Secret, u.ID, u.Role, uc.cfg.Issuer, uc.cfg.Expiration)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(u)}, nil
}

// Me returns the authenticated account.
func (uc *Usecase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	return toUserResponse(u), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
