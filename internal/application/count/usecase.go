// Package count implementa el conteo físico y la reconciliación de
// discrepancias. Observacional: jamás corrige el libro; la corrección ocurre
// recién en el cierre mensual.
package count

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

// UseCase caso de uso del conteo físico.
type UseCase struct {
	txRepo    repository.TransactionRepository
	itemRepo  repository.ItemRepository
	countRepo repository.PhysicalCountRepository
	diffRepo  repository.DiffLogRepository
	log       *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRepo repository.TransactionRepository,
	itemRepo repository.ItemRepository,
	countRepo repository.PhysicalCountRepository,
	diffRepo repository.DiffLogRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{txRepo: txRepo, itemRepo: itemRepo, countRepo: countRepo, diffRepo: diffRepo, log: log}
}

// Submit registra una sesión de conteo. Por cada línea:
//   - calcula la cantidad del sistema reproduciendo la agregación restringida
//     al artículo,
//   - persiste el PhysicalCount incondicionalmente,
//   - persiste un DiffLog (status pending) solo si la diferencia no es cero.
func (uc *UseCase) Submit(ctx context.Context, actor string, in dto.PhysicalCountRequest) (*dto.PhysicalCountResponse, error) {
	if len(in.Counts) == 0 {
		return nil, domain.NewValidationError("counts", "se requiere al menos un artículo contado")
	}
	for _, line := range in.Counts {
		if line.ItemCode == "" {
			return nil, domain.NewValidationError("counts.item_code", "código de artículo requerido")
		}
	}
	date := time.Now()
	if in.Date != "" {
		parsed, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, domain.NewValidationError("date", "fecha inválida, formato esperado 2006-01-02")
		}
		date = parsed
	}

	// Un solo snapshot del catálogo y del libro para toda la sesión.
	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	movs, err := uc.txRepo.List(ctx, repository.TransactionFilter{})
	if err != nil {
		return nil, err
	}

	resp := &dto.PhysicalCountResponse{Success: true}
	for _, line := range in.Counts {
		view := stock.AggregateItem(items, movs, line.ItemCode)
		diff := line.ActualQty - view.ClosingQty

		pc := &entity.PhysicalCount{
			Date:        date,
			ItemCode:    line.ItemCode,
			ExpectedQty: view.ClosingQty,
			ActualQty:   line.ActualQty,
			Difference:  diff,
			Actor:       actor,
			Location:    in.Location,
			Status:      entity.CountStatusRecorded,
		}
		if err := uc.countRepo.Create(ctx, pc); err != nil {
			return nil, err
		}
		resp.CountsSaved++

		if diff == 0 {
			continue
		}
		dl := &entity.DiffLog{
			PhysicalCountID: pc.ID,
			ItemCode:        line.ItemCode,
			ExpectedQty:     view.ClosingQty,
			ActualQty:       line.ActualQty,
			Diff:            diff,
			Reason:          line.Reason,
			Status:          entity.DiffStatusPending,
		}
		if err := uc.diffRepo.Create(ctx, dl); err != nil {
			return nil, err
		}
		resp.DiffsLogged++
		uc.log.Info().
			Str("item_code", line.ItemCode).
			Int64("expected", view.ClosingQty).
			Int64("actual", line.ActualQty).
			Int64("diff", diff).
			Msg("discrepancia de conteo registrada")
	}
	return resp, nil
}
