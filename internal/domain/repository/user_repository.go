package repository

import (
	"context"

	"github.com/isokohq/isoko-api/internal/domain/entity"
)

// UserRepository persistence port for platform accounts.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
