package tabular

import (
	"context"
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre el almacén tabular.
type ItemRepo struct {
	store Store
}

// NewItemRepository construye el adaptador del catálogo.
func NewItemRepository(store Store) *ItemRepo {
	return &ItemRepo{store: store}
}

// List devuelve el catálogo completo en orden de fila.
func (r *ItemRepo) List(ctx context.Context) ([]*entity.Item, error) {
	table, err := r.store.ReadAll(ctx, TableItems)
	if err != nil {
		return nil, domain.NewStoreError("read_all", err)
	}
	items := make([]*entity.Item, 0, len(table.Rows))
	for _, row := range table.Rows {
		if row.Get("code") == "" {
			continue
		}
		items = append(items, itemFromRow(row))
	}
	return items, nil
}

// GetByCode busca un artículo por código. Devuelve nil, nil si no existe.
func (r *ItemRepo) GetByCode(ctx context.Context, code string) (*entity.Item, error) {
	table, err := r.store.ReadAll(ctx, TableItems)
	if err != nil {
		return nil, domain.NewStoreError("read_all", err)
	}
	row := table.FindRow("code", code)
	if row == nil {
		return nil, nil
	}
	return itemFromRow(*row), nil
}

// Create da de alta un artículo en el catálogo. Los artículos nunca se eliminan.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	if err := r.store.Append(ctx, TableItems, itemToRow(item)); err != nil {
		return domain.NewStoreError("append", err)
	}
	return nil
}

// UpdateInitial fija la línea base (cantidad y grupo inicial) de un artículo existente.
func (r *ItemRepo) UpdateInitial(ctx context.Context, code string, qty int64, group string) error {
	table, err := r.store.ReadAll(ctx, TableItems)
	if err != nil {
		return domain.NewStoreError("read_all", err)
	}
	row := table.FindRow("code", code)
	if row == nil {
		return domain.ErrNotFound
	}
	patch := map[string]string{
		"initial_qty":   formatInt(qty),
		"initial_group": group,
	}
	if err := r.store.Update(ctx, TableItems, row.Index, patch); err != nil {
		return domain.NewStoreError("update", err)
	}
	return nil
}

func itemToRow(it *entity.Item) map[string]string {
	return map[string]string{
		"code":          it.Code,
		"name":          it.Name,
		"category":      it.Category,
		"unit":          it.Unit,
		"new_flag":      formatBool(it.IsNew),
		"initial_group": it.InitialGroup,
		"initial_qty":   formatInt(it.InitialQty),
		"created_at":    formatTime(it.CreatedAt),
	}
}

func itemFromRow(row Row) *entity.Item {
	return &entity.Item{
		Code:         row.Get("code"),
		Name:         row.Get("name"),
		Category:     row.Get("category"),
		Unit:         row.Get("unit"),
		IsNew:        parseBool(row.Get("new_flag")),
		InitialGroup: row.Get("initial_group"),
		InitialQty:   parseInt(row.Get("initial_qty")),
		CreatedAt:    parseTime(row.Get("created_at")),
	}
}
