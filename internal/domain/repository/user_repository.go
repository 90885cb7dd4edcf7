package repository

import (
	"context"
	"errors"

	"github.com/Reidyensam/SeguimientoGastos/internal/domain/entity"
)

// ErrNotFound is returned when a row does not exist or is owned by someone else.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when an insert hits the unique email constraint.
var ErrDuplicateEmail = errors.New("duplicate email")

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
