// Package approval implementa el flujo de aprobación: transiciones
// pending → approved / returned, individuales y por lote.
package approval

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/jhoicas/stockflow-api/pkg/logger"
)

// WarningStockSyncFailed código de aviso no fatal: la aprobación quedó
// confirmada pero la sincronización secundaria del libro de stock falló.
const WarningStockSyncFailed = "stockLedgerSyncFailed"

// StockSyncer es la fase 2 (mejor-esfuerzo) del contrato de aprobación:
// refresca la vista derivada de stock tras aprobar. Un fallo aquí jamás
// revierte la transición de estado ya confirmada.
type StockSyncer interface {
	Sync(ctx context.Context, m *entity.Movement) error
}

// BatchResult resultado de una operación por lote. Cada miembro se evalúa de
// forma independiente: un id fallido no aborta el resto.
type BatchResult struct {
	SuccessCount int
	FailedIDs    []string
	Warnings     []string
}

// UseCase casos de uso del flujo de aprobación.
type UseCase struct {
	txRepo repository.TransactionRepository
	syncer StockSyncer
	log    *logger.Logger
}

// NewUseCase construye el caso de uso. syncer puede ser nil (sin vista derivada).
func NewUseCase(txRepo repository.TransactionRepository, syncer StockSyncer, log *logger.Logger) *UseCase {
	return &UseCase{txRepo: txRepo, syncer: syncer, log: log}
}

// Approve transiciona pending → approved y estampa aprobador y fecha.
//
// Fase 1 (la transición) debe confirmarse o fallar atómicamente; fase 2 (la
// sincronización derivada) es fire-and-report: si falla, la aprobación se
// mantiene y el caller recibe el warning stockLedgerSyncFailed.
func (uc *UseCase) Approve(ctx context.Context, id, actorName string) (warning string, err error) {
	m, err := uc.txRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if m == nil {
		return "", domain.ErrNotFound
	}
	// La transición se evalúa contra el estado almacenado actual: un cambio
	// de estado llegado desde otro actor gana por última escritura.
	if !entity.CanTransition(m.Status, entity.StatusApproved) {
		return "", domain.ErrConflict
	}
	now := time.Now()
	m.Status = entity.StatusApproved
	m.ApprovedBy = actorName
	m.ApprovedAt = &now
	if err := uc.txRepo.Update(ctx, m); err != nil {
		return "", err
	}

	if uc.syncer != nil {
		if syncErr := uc.syncer.Sync(ctx, m); syncErr != nil {
			uc.log.Warn().Err(syncErr).
				Str("transaction_id", m.ID).
				Str("item_code", m.ItemCode).
				Msg("sincronización del libro de stock falló; la aprobación se mantiene")
			return WarningStockSyncFailed, nil
		}
	}
	return "", nil
}

// Reject transiciona pending → returned con comentario obligatorio.
func (uc *UseCase) Reject(ctx context.Context, id, actorName, comment string) error {
	if strings.TrimSpace(comment) == "" {
		return domain.NewValidationError("comment", "comentario de devolución requerido")
	}
	m, err := uc.txRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	if !entity.CanTransition(m.Status, entity.StatusReturned) {
		return domain.ErrConflict
	}
	now := time.Now()
	m.Status = entity.StatusReturned
	m.ReturnComment = strings.TrimSpace(comment)
	m.ApprovedBy = actorName
	m.ApprovedAt = &now
	return uc.txRepo.Update(ctx, m)
}

// BatchApprove aprueba un conjunto de ids con semántica de fallo parcial:
// devuelve cuántos transicionaron y qué ids fallaron, sin abortar el lote.
// Sin garantía de orden entre miembros.
func (uc *UseCase) BatchApprove(ctx context.Context, ids []string, actorName string) BatchResult {
	var res BatchResult
	for _, id := range ids {
		warning, err := uc.Approve(ctx, id, actorName)
		if err != nil {
			res.FailedIDs = append(res.FailedIDs, id)
			continue
		}
		res.SuccessCount++
		if warning != "" {
			res.Warnings = append(res.Warnings, warning)
		}
	}
	return res
}

// BatchReturn devuelve un conjunto de ids con el mismo comentario.
// El comentario se valida una sola vez, antes de tocar el lote.
func (uc *UseCase) BatchReturn(ctx context.Context, ids []string, actorName, comment string) (BatchResult, error) {
	if strings.TrimSpace(comment) == "" {
		return BatchResult{}, domain.NewValidationError("comment", "comentario de devolución requerido")
	}
	var res BatchResult
	for _, id := range ids {
		if err := uc.Reject(ctx, id, actorName, comment); err != nil {
			res.FailedIDs = append(res.FailedIDs, id)
			continue
		}
		res.SuccessCount++
	}
	return res, nil
}

// ListPending devuelve los movimientos en pending, opcionalmente acotados a un área.
func (uc *UseCase) ListPending(ctx context.Context, area string) ([]*entity.Movement, error) {
	return uc.txRepo.List(ctx, repository.TransactionFilter{
		Status: entity.StatusPending,
		Area:   area,
	})
}
