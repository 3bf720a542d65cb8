package repository

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// TransactionFilter filtros opcionales para listar movimientos.
// Campos vacíos no filtran. Month usa el formato "2006-01".
type TransactionFilter struct {
	Status   string
	Area     string
	ActorID  string
	ItemCode string
	Month    string
}

// TransactionRepository define el puerto de persistencia del libro de movimientos (DIP).
// Update reescribe la fila completa por id: lectura-modificación-escritura sin
// versionado de fila; la última escritura gana (limitación aceptada del colaborador).
type TransactionRepository interface {
	Create(ctx context.Context, m *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	List(ctx context.Context, f TransactionFilter) ([]*entity.Movement, error)
	Update(ctx context.Context, m *entity.Movement) error
}
