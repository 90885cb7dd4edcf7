package repository

import (
	"context"

	"github.com/Reidyensam/SeguimientoGastos/internal/domain/entity"
)

// GastoRepository defines expense persistence. Every lookup and mutation is
// filtered by both the record id and the owning user id; a record belonging
// to another user behaves exactly like a missing one.
type GastoRepository interface {
	Create(ctx context.Context, g *entity.Gasto) error
	ListByUser(ctx context.Context, userID string) ([]entity.Gasto, error)
	GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Gasto, error)
	Update(ctx context.Context, g *entity.Gasto) error
	Delete(ctx context.Context, id, userID string) error
}
