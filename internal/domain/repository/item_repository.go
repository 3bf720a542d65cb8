package repository

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia del catálogo de artículos (DIP).
type ItemRepository interface {
	List(ctx context.Context) ([]*entity.Item, error)
	GetByCode(ctx context.Context, code string) (*entity.Item, error)
	Create(ctx context.Context, item *entity.Item) error
	// UpdateInitial actualiza la línea base (cantidad y grupo inicial) de un artículo existente.
	UpdateInitial(ctx context.Context, code string, qty int64, group string) error
}
