package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Reidyensam/SeguimientoGastos/internal/domain/entity"
	"github.com/Reidyensam/SeguimientoGastos/internal/domain/repository"
)

type GastoRepository struct {
	pool *pgxpool.Pool
}

func NewGastoRepository(pool *pgxpool.Pool) *GastoRepository {
	return &GastoRepository{pool: pool}
}

func (r *GastoRepository) Create(ctx context.Context, g *entity.Gasto) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO gastos (nombre, monto, fecha, categoria, completado, usuario_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, g.Name, g.Amount, g.Date, g.Category, g.Completed, g.UserID)

	return row.Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
}

func (r *GastoRepository) ListByUser(ctx context.Context, userID string) ([]entity.Gasto, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, nombre, monto, fecha, categoria, completado, usuario_id, created_at, updated_at
		FROM gastos
		WHERE usuario_id = $1
		ORDER BY created_at, id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	gastos := make([]entity.Gasto, 0)
	for rows.Next() {
		var g entity.Gasto
		if err := rows.Scan(&g.ID, &g.Name, &g.Amount, &g.Date, &g.Category,
			&g.Completed, &g.UserID, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		gastos = append(gastos, g)
	}
	return gastos, rows.Err()
}

func (r *GastoRepository) GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Gasto, error) {
	g := &entity.Gasto{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, nombre, monto, fecha, categoria, completado, usuario_id, created_at, updated_at
		FROM gastos
		WHERE id = $1 AND usuario_id = $2
	`, id, userID)

	if err := row.Scan(&g.ID, &g.Name, &g.Amount, &g.Date, &g.Category,
		&g.Completed, &g.UserID, &g.CreatedAt, &g.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return g, nil
}

func (r *GastoRepository) Update(ctx context.Context, g *entity.Gasto) error {
	g.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE gastos
		SET nombre = $1, monto = $2, fecha = $3, categoria = $4, completado = $5, updated_at = $6
		WHERE id = $7 AND usuario_id = $8
	`, g.Name, g.Amount, g.Date, g.Category, g.Completed, g.UpdatedAt, g.ID, g.UserID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *GastoRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM gastos
		WHERE id = $1 AND usuario_id = $2
	`, id, userID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

var _ repository.GastoRepository = (*GastoRepository)(nil)
