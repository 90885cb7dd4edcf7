package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Reidyensam/SeguimientoGastos/internal/domain/entity"
	"github.com/Reidyensam/SeguimientoGastos/internal/domain/repository"
)

// GastoService runs the expense ledger. The owning user id accompanies every
// call; the repository filters by it, so records of other users are
// indistinguishable from missing ones.
type GastoService struct {
	Repo   repository.GastoRepository
	Logger *logrus.Logger
}

func NewGastoService(repo repository.GastoRepository, logger *logrus.Logger) *GastoService {
	return &GastoService{Repo: repo, Logger: logger}
}

type CreateGastoInput struct {
	Name      string
	Amount    float64
	Date      time.Time // zero value defaults to today
	Category  string    // empty defaults to CategoriaDefault
	Completed bool
}

type UpdateGastoInput struct {
	Name      *string
	Amount    *float64
	Date      *time.Time
	Category  *string
	Completed *bool
}

func (s *GastoService) List(ctx context.Context, userID string) ([]entity.Gasto, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *GastoService) Create(ctx context.Context, userID string, in CreateGastoInput) (*entity.Gasto, error) {
	g := &entity.Gasto{
		Name:      in.Name,
		Amount:    in.Amount,
		Date:      in.Date,
		Category:  in.Category,
		Completed: in.Completed,
		UserID:    userID,
	}
	if g.Date.IsZero() {
		g.Date = time.Now()
	}
	if g.Category == "" {
		g.Category = entity.CategoriaDefault
	}
	if err := s.Repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Update replaces only the fields present in the input; the rest keep their
// stored values. The initial lookup already enforces ownership.
func (s *GastoService) Update(ctx context.Context, userID, id string, in UpdateGastoInput) (*entity.Gasto, error) {
	g, err := s.Repo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		g.Name = *in.Name
	}
	if in.Amount != nil {
		g.Amount = *in.Amount
	}
	if in.Date != nil {
		g.Date = *in.Date
	}
	if in.Category != nil {
		g.Category = *in.Category
	}
	if in.Completed != nil {
		g.Completed = *in.Completed
	}

	if err := s.Repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *GastoService) Delete(ctx context.Context, userID, id string) error {
	return s.Repo.Delete(ctx, id, userID)
}
