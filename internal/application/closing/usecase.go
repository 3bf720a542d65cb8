// Package closing implementa el cierre mensual: congela los movimientos
// aprobados de un periodo (status → locked) y emite la instantánea del
// reporte de proveedores.
package closing

import (
	"context"
	"time"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/jhoicas/stockflow-api/internal/domain/stock"
	"github.com/jhoicas/stockflow-api/pkg/logger"
)

// Acciones del cierre mensual.
const (
	ActionPreview  = "preview"
	ActionFinalize = "finalize"
)

// ReportRenderer renderiza el reporte mensual (PDF).
type ReportRenderer interface {
	Render(month string, rows []dto.MonthlyReportRow) ([]byte, error)
}

// UseCase caso de uso del cierre mensual.
type UseCase struct {
	txRepo     repository.TransactionRepository
	itemRepo   repository.ItemRepository
	diffRepo   repository.DiffLogRepository
	reportRepo repository.SupplierReportRepository
	renderer   ReportRenderer
	log        *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRepo repository.TransactionRepository,
	itemRepo repository.ItemRepository,
	diffRepo repository.DiffLogRepository,
	reportRepo repository.SupplierReportRepository,
	renderer ReportRenderer,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRepo:     txRepo,
		itemRepo:   itemRepo,
		diffRepo:   diffRepo,
		reportRepo: reportRepo,
		renderer:   renderer,
		log:        log,
	}
}

// Run ejecuta el cierre del periodo month ("2006-01") en modo preview o finalize.
//
// Selecciona los movimientos approved/locked del periodo, agrupa la cantidad
// con signo por artículo y superpone las discrepancias del DiffLog (si hay
// varias para un artículo, gana la última en orden del registro).
//
// preview devuelve el reporte sin mutar nada. finalize NO es atómico: bloquea
// cada movimiento y añade cada instantánea de forma secuencial e
// independiente; un fallo a mitad deja parte bloqueada y parte no, y la
// operación es segura de reinvocar porque re-bloquear y duplicar una
// instantánea fechada son efectos tolerados.
func (uc *UseCase) Run(ctx context.Context, month, action string) (*dto.MonthlyClosingResponse, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, domain.NewValidationError("month", "periodo inválido, formato esperado 2006-01")
	}
	if action != ActionPreview && action != ActionFinalize {
		return nil, domain.NewValidationError("action", "acción inválida: preview | finalize")
	}

	selected, rows, err := uc.compute(ctx, month)
	if err != nil {
		return nil, err
	}
	resp := &dto.MonthlyClosingResponse{Month: month, Rows: rows}
	if action == ActionPreview {
		return resp, nil
	}

	// Bucle de bloqueo por movimiento: idempotente (re-sellar un locked es no-op).
	for _, m := range selected {
		m.Status = entity.StatusLocked
		if err := uc.txRepo.Update(ctx, m); err != nil {
			uc.log.Error().Err(err).Str("transaction_id", m.ID).Msg("bloquear movimiento falló")
			resp.FailedIDs = append(resp.FailedIDs, m.ID)
			continue
		}
		resp.LockedCount++
	}

	// Instantánea por artículo. Duplicados fechados por reintento: tolerados.
	reasonByCode := map[string]string{}
	diffs, err := uc.diffRepo.List(ctx)
	if err == nil {
		for _, d := range diffs {
			reasonByCode[d.ItemCode] = d.Reason
		}
	}
	for _, row := range rows {
		rep := &entity.SupplierReport{
			ReportMonth: month,
			ItemCode:    row.ItemCode,
			ItemName:    row.ItemName,
			Discrepancy: row.Diff,
			Reason:      reasonByCode[row.ItemCode],
		}
		if err := uc.reportRepo.Append(ctx, rep); err != nil {
			uc.log.Error().Err(err).Str("item_code", row.ItemCode).Msg("añadir instantánea falló")
			resp.FailedIDs = append(resp.FailedIDs, "report:"+row.ItemCode)
		}
	}

	resp.Message = "cierre mensual de " + month + " completado"
	uc.log.Info().
		Str("month", month).
		Int("locked", resp.LockedCount).
		Int("failed", len(resp.FailedIDs)).
		Msg("cierre mensual finalizado")
	return resp, nil
}

// RenderPDF calcula el reporte del periodo y lo entrega como PDF.
func (uc *UseCase) RenderPDF(ctx context.Context, month string) ([]byte, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, domain.NewValidationError("month", "periodo inválido, formato esperado 2006-01")
	}
	_, rows, err := uc.compute(ctx, month)
	if err != nil {
		return nil, err
	}
	return uc.renderer.Render(month, rows)
}

// compute selecciona y agrega los movimientos del periodo y superpone el DiffLog.
func (uc *UseCase) compute(ctx context.Context, month string) ([]*entity.Movement, []dto.MonthlyReportRow, error) {
	movs, err := uc.txRepo.List(ctx, repository.TransactionFilter{Month: month})
	if err != nil {
		return nil, nil, err
	}
	var selected []*entity.Movement
	for _, m := range movs {
		if m.CountsForStock() {
			selected = append(selected, m)
		}
	}

	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	nameByCode := make(map[string]string, len(items))
	newByCode := make(map[string]bool, len(items))
	for _, it := range items {
		nameByCode[it.Code] = it.Name
		newByCode[it.Code] = it.IsNew
	}

	index := map[string]int{}
	var rows []dto.MonthlyReportRow
	for _, m := range selected {
		i, ok := index[m.ItemCode]
		if !ok {
			name, known := nameByCode[m.ItemCode]
			if !known {
				name = m.ItemName
				if name == "" {
					name = stock.UnknownItemName
				}
			}
			i = len(rows)
			index[m.ItemCode] = i
			rows = append(rows, dto.MonthlyReportRow{
				ItemCode:  m.ItemCode,
				ItemName:  name,
				IsNewItem: !known || newByCode[m.ItemCode],
			})
		}
		rows[i].ExpectedQty += m.SignedQuantity()
	}

	// Sin discrepancia registrada: actual = esperado, diff = 0.
	for i := range rows {
		rows[i].ActualQty = rows[i].ExpectedQty
	}
	diffs, err := uc.diffRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	for _, d := range diffs {
		i, ok := index[d.ItemCode]
		if !ok {
			continue
		}
		rows[i].ActualQty = d.ActualQty
		rows[i].Diff = d.Diff
		rows[i].HasDiff = true
	}
	return selected, rows, nil
}
