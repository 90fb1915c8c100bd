package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/go-credentials-login/internal/domain/entity"
)

// ErrNotFound is returned when no user matches the lookup key.
var ErrNotFound = errors.New("user not found")

// UserRepository defines the interface for user-related database operations.
// Implementations return ErrNotFound for a missing row and any other error for
// infrastructure failures.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
