package tabular

import (
	"context"
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.SupplierReportRepository = (*SupplierReportRepo)(nil)

// SupplierReportRepo implementación append-only de SupplierReportRepository.
type SupplierReportRepo struct {
	store Store
}

// NewSupplierReportRepository construye el adaptador del reporte de proveedores.
func NewSupplierReportRepository(store Store) *SupplierReportRepo {
	return &SupplierReportRepo{store: store}
}

// Append congela una instantánea por artículo. Un reporte duplicado con otra
// fecha es un efecto tolerado del reintento de finalize, no un error.
func (r *SupplierReportRepo) Append(ctx context.Context, rep *entity.SupplierReport) error {
	if rep.ID == "" {
		rep.ID = NewID("RPT")
	}
	if rep.CreatedAt.IsZero() {
		rep.CreatedAt = time.Now()
	}
	values := map[string]string{
		"id":           rep.ID,
		"report_month": rep.ReportMonth,
		"item_code":    rep.ItemCode,
		"item_name":    rep.ItemName,
		"discrepancy":  formatInt(rep.Discrepancy),
		"reason":       rep.Reason,
		"created_at":   formatTime(rep.CreatedAt),
	}
	if err := r.store.Append(ctx, TableSupplierReports, values); err != nil {
		return domain.NewStoreError("append", err)
	}
	return nil
}

// ListByMonth devuelve las instantáneas de un periodo cerrado.
func (r *SupplierReportRepo) ListByMonth(ctx context.Context, month string) ([]*entity.SupplierReport, error) {
	table, err := r.store.ReadAll(ctx, TableSupplierReports)
	if err != nil {
		return nil, domain.NewStoreError("read_all", err)
	}
	var reports []*entity.SupplierReport
	for _, row := range table.Rows {
		if row.Get("report_month") != month {
			continue
		}
		reports = append(reports, &entity.SupplierReport{
			ID:          row.Get("id"),
			ReportMonth: row.Get("report_month"),
			ItemCode:    row.Get("item_code"),
			ItemName:    row.Get("item_name"),
			Discrepancy: parseInt(row.Get("discrepancy")),
			Reason:      row.Get("reason"),
			CreatedAt:   parseTime(row.Get("created_at")),
		})
	}
	return reports, nil
}
