package repository

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// PhysicalCountRepository define el puerto de persistencia de conteos físicos.
// Las filas son inmutables tras crearse (salvo confirmación de estado).
type PhysicalCountRepository interface {
	Create(ctx context.Context, c *entity.PhysicalCount) error
	List(ctx context.Context) ([]*entity.PhysicalCount, error)
}

// DiffLogRepository define el puerto del registro de discrepancias.
// El cierre mensual lo consume en modo solo lectura.
type DiffLogRepository interface {
	Create(ctx context.Context, d *entity.DiffLog) error
	List(ctx context.Context) ([]*entity.DiffLog, error)
}
