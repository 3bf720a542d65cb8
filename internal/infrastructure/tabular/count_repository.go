package tabular

import (
	"context"
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var (
	_ repository.PhysicalCountRepository = (*PhysicalCountRepo)(nil)
	_ repository.DiffLogRepository       = (*DiffLogRepo)(nil)
)

// PhysicalCountRepo implementación de PhysicalCountRepository sobre el almacén tabular.
type PhysicalCountRepo struct {
	store Store
}

// NewPhysicalCountRepository construye el adaptador de conteos físicos.
func NewPhysicalCountRepository(store Store) *PhysicalCountRepo {
	return &PhysicalCountRepo{store: store}
}

// Create añade el conteo como fila nueva (una por artículo por sesión).
func (r *PhysicalCountRepo) Create(ctx context.Context, c *entity.PhysicalCount) error {
	if c.ID == "" {
		c.ID = NewID("CNT")
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	values := map[string]string{
		"id":           c.ID,
		"date":         formatDate(c.Date),
		"item_code":    c.ItemCode,
		"expected_qty": formatInt(c.ExpectedQty),
		"actual_qty":   formatInt(c.ActualQty),
		"difference":   formatInt(c.Difference),
		"actor":        c.Actor,
		"location":     c.Location,
		"status":       c.Status,
		"created_at":   formatTime(c.CreatedAt),
	}
	if err := r.store.Append(ctx, TablePhysicalCounts, values); err != nil {
		return domain.NewStoreError("append", err)
	}
	return nil
}

// List devuelve todos los conteos registrados.
func (r *PhysicalCountRepo) List(ctx context.Context) ([]*entity.PhysicalCount, error) {
	table, err := r.store.ReadAll(ctx, TablePhysicalCounts)
	if err != nil {
		return nil, domain.NewStoreError("read_all", err)
	}
	counts := make([]*entity.PhysicalCount, 0, len(table.Rows))
	for _, row := range table.Rows {
		counts = append(counts, &entity.PhysicalCount{
			ID:          row.Get("id"),
			Date:        parseDate(row.Get("date")),
			ItemCode:    row.Get("item_code"),
			ExpectedQty: parseInt(row.Get("expected_qty")),
			ActualQty:   parseInt(row.Get("actual_qty")),
			Difference:  parseInt(row.Get("difference")),
			Actor:       row.Get("actor"),
			Location:    row.Get("location"),
			Status:      row.Get("status"),
			CreatedAt:   parseTime(row.Get("created_at")),
		})
	}
	return counts, nil
}

// DiffLogRepo implementación de DiffLogRepository sobre el almacén tabular.
type DiffLogRepo struct {
	store Store
}

// NewDiffLogRepository construye el adaptador del registro de discrepancias.
func NewDiffLogRepository(store Store) *DiffLogRepo {
	return &DiffLogRepo{store: store}
}

// Create añade una discrepancia (solo se llama cuando diff != 0).
func (r *DiffLogRepo) Create(ctx context.Context, d *entity.DiffLog) error {
	if d.ID == "" {
		d.ID = NewID("DIF")
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	values := map[string]string{
		"id":                d.ID,
		"physical_count_id": d.PhysicalCountID,
		"item_code":         d.ItemCode,
		"expected_qty":      formatInt(d.ExpectedQty),
		"actual_qty":        formatInt(d.ActualQty),
		"diff":              formatInt(d.Diff),
		"reason":            d.Reason,
		"status":            d.Status,
		"created_at":        formatTime(d.CreatedAt),
	}
	if err := r.store.Append(ctx, TableDiffLogs, values); err != nil {
		return domain.NewStoreError("append", err)
	}
	return nil
}

// List devuelve todas las discrepancias en orden del registro. El cierre
// mensual itera este orden; si hay varias para el mismo artículo, la última gana.
func (r *DiffLogRepo) List(ctx context.Context) ([]*entity.DiffLog, error) {
	table, err := r.store.ReadAll(ctx, TableDiffLogs)
	if err != nil {
		return nil, domain.NewStoreError("read_all", err)
	}
	logs := make([]*entity.DiffLog, 0, len(table.Rows))
	for _, row := range table.Rows {
		logs = append(logs, &entity.DiffLog{
			ID:              row.Get("id"),
			PhysicalCountID: row.Get("physical_count_id"),
			ItemCode:        row.Get("item_code"),
			ExpectedQty:     parseInt(row.Get("expected_qty")),
			ActualQty:       parseInt(row.Get("actual_qty")),
			Diff:            parseInt(row.Get("diff")),
			Reason:          row.Get("reason"),
			Status:          row.Get("status"),
			CreatedAt:       parseTime(row.Get("created_at")),
		})
	}
	return logs, nil
}
