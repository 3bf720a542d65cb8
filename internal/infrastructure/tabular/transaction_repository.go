package tabular

import (
	"context"
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository sobre el almacén tabular.
type TransactionRepo struct {
	store Store
}

// NewTransactionRepository construye el adaptador del libro de movimientos.
func NewTransactionRepository(store Store) *TransactionRepo {
	return &TransactionRepo{store: store}
}

// Create añade el movimiento como fila nueva. El id lo asigna el repositorio
// si viene vacío (token único derivado del tiempo).
func (r *TransactionRepo) Create(ctx context.Context, m *entity.Movement) error {
	if m.ID == "" {
		m.ID = NewID("TXN")
	}
	if err := r.store.Append(ctx, TableTransactions, movementToRow(m)); err != nil {
		return domain.NewStoreError("append", err)
	}
	return nil
}

// GetByID busca el movimiento por id. Devuelve nil, nil si no existe.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	table, err := r.store.ReadAll(ctx, TableTransactions)
	if err != nil {
		return nil, domain.NewStoreError("read_all", err)
	}
	row := table.FindRow("id", id)
	if row == nil {
		return nil, nil
	}
	return movementFromRow(*row), nil
}

// List devuelve los movimientos que pasan el filtro, en orden del libro.
// Las filas corruptas (sin código y cantidad cero) se excluyen siempre.
func (r *TransactionRepo) List(ctx context.Context, f repository.TransactionFilter) ([]*entity.Movement, error) {
	table, err := r.store.ReadAll(ctx, TableTransactions)
	if err != nil {
		return nil, domain.NewStoreError("read_all", err)
	}
	var out []*entity.Movement
	for _, row := range table.Rows {
		m := movementFromRow(row)
		if m.IsPlaceholder() {
			continue
		}
		if f.Status != "" && m.Status != f.Status {
			continue
		}
		if f.Area != "" && m.Area != f.Area {
			continue
		}
		if f.ActorID != "" && m.ActorID != f.ActorID {
			continue
		}
		if f.ItemCode != "" && m.ItemCode != f.ItemCode {
			continue
		}
		if f.Month != "" && m.Date.Format("2006-01") != f.Month {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// Update reescribe la fila del movimiento por posición (leer-modificar-escribir).
// Sin versionado de fila: una escritura concurrente posterior gana completa.
func (r *TransactionRepo) Update(ctx context.Context, m *entity.Movement) error {
	table, err := r.store.ReadAll(ctx, TableTransactions)
	if err != nil {
		return domain.NewStoreError("read_all", err)
	}
	row := table.FindRow("id", m.ID)
	if row == nil {
		return domain.ErrNotFound
	}
	m.UpdatedAt = time.Now()
	if err := r.store.Update(ctx, TableTransactions, row.Index, movementToRow(m)); err != nil {
		return domain.NewStoreError("update", err)
	}
	return nil
}

func movementToRow(m *entity.Movement) map[string]string {
	return map[string]string{
		"id":             m.ID,
		"item_code":      m.ItemCode,
		"item_name":      m.ItemName,
		"direction":      m.Direction,
		"quantity":       formatInt(m.Quantity),
		"reason":         m.Reason,
		"actor_id":       m.ActorID,
		"actor_name":     m.ActorName,
		"area":           m.Area,
		"date":           formatDate(m.Date),
		"status":         m.Status,
		"approved_by":    m.ApprovedBy,
		"approved_at":    formatTimePtr(m.ApprovedAt),
		"return_comment": m.ReturnComment,
		"created_at":     formatTime(m.CreatedAt),
		"updated_at":     formatTime(m.UpdatedAt),
	}
}

func movementFromRow(row Row) *entity.Movement {
	return &entity.Movement{
		ID:            row.Get("id"),
		ItemCode:      row.Get("item_code"),
		ItemName:      row.Get("item_name"),
		Direction:     row.Get("direction"),
		Quantity:      parseInt(row.Get("quantity")),
		Reason:        row.Get("reason"),
		ActorID:       row.Get("actor_id"),
		ActorName:     row.Get("actor_name"),
		Area:          row.Get("area"),
		Date:          parseDate(row.Get("date")),
		Status:        row.Get("status"),
		ApprovedBy:    row.Get("approved_by"),
		ApprovedAt:    parseTimePtr(row.Get("approved_at")),
		ReturnComment: row.Get("return_comment"),
		CreatedAt:     parseTime(row.Get("created_at")),
		UpdatedAt:     parseTime(row.Get("updated_at")),
	}
}
