package repository

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// SupplierReportRepository define el puerto del reporte de proveedores.
// Append-only: solo el finalize del cierre mensual escribe aquí.
type SupplierReportRepository interface {
	Append(ctx context.Context, r *entity.SupplierReport) error
	ListByMonth(ctx context.Context, month string) ([]*entity.SupplierReport, error)
}
