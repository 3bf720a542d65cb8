package count_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/count"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/memory"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/tabular"
	"github.com/jhoicas/stockflow-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del conteo físico: cada línea compara lo contado contra el cierre
// calculado del sistema; el conteo siempre se persiste, la discrepancia solo
// cuando la diferencia no es cero. Nunca se corrige el libro.
// ──────────────────────────────────────────────────────────────────────────────

type countFixture struct {
	uc        *count.UseCase
	txRepo    *tabular.TransactionRepo
	countRepo *tabular.PhysicalCountRepo
	diffRepo  *tabular.DiffLogRepo
}

func buildCount(t *testing.T) *countFixture {
	t.Helper()
	store := memory.NewStore()
	f := &countFixture{
		txRepo:    tabular.NewTransactionRepository(store),
		countRepo: tabular.NewPhysicalCountRepository(store),
		diffRepo:  tabular.NewDiffLogRepository(store),
	}
	f.uc = count.NewUseCase(f.txRepo, tabular.NewItemRepository(store), f.countRepo, f.diffRepo, logger.Nop())
	return f
}

// El sistema tiene 10 entradas y 3 salidas aprobadas para A100: cierre 7.
func (f *countFixture) seedA100(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.txRepo.Create(ctx, &entity.Movement{
		ID: "TXN-1", ItemCode: "A100", Direction: entity.DirectionIN, Quantity: 10, Status: entity.StatusApproved,
	}))
	require.NoError(t, f.txRepo.Create(ctx, &entity.Movement{
		ID: "TXN-2", ItemCode: "A100", Direction: entity.DirectionOUT, Quantity: 3, Status: entity.StatusApproved,
	}))
}

func TestSubmit_SinLineasRechazado(t *testing.T) {
	f := buildCount(t)
	_, err := f.uc.Submit(context.Background(), "Pedro", dto.PhysicalCountRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmit_LineaSinCodigoRechazada(t *testing.T) {
	f := buildCount(t)
	_, err := f.uc.Submit(context.Background(), "Pedro", dto.PhysicalCountRequest{
		Counts: []dto.CountLine{{ActualQty: 5}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Contado 7, sistema 7: se guarda el conteo pero no hay discrepancia.
func TestSubmit_SinDiferenciaNoRegistraDiscrepancia(t *testing.T) {
	f := buildCount(t)
	f.seedA100(t)
	ctx := context.Background()

	resp, err := f.uc.Submit(ctx, "Pedro", dto.PhysicalCountRequest{
		Counts: []dto.CountLine{{ItemCode: "A100", ActualQty: 7}},
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.CountsSaved)
	assert.Equal(t, 0, resp.DiffsLogged)

	counts, err := f.countRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, int64(7), counts[0].ExpectedQty)
	assert.Equal(t, int64(0), counts[0].Difference)
	assert.Equal(t, entity.CountStatusRecorded, counts[0].Status)

	diffs, err := f.diffRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, diffs)
}

// Contado 9 contra sistema 7: diferencia +2, queda la discrepancia pendiente.
func TestSubmit_DiferenciaRegistraDiscrepanciaPendiente(t *testing.T) {
	f := buildCount(t)
	f.seedA100(t)
	ctx := context.Background()

	resp, err := f.uc.Submit(ctx, "Pedro", dto.PhysicalCountRequest{
		Location: "bodega-norte",
		Counts:   []dto.CountLine{{ItemCode: "A100", ActualQty: 9, Reason: "caja sin registrar"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.CountsSaved)
	assert.Equal(t, 1, resp.DiffsLogged)

	diffs, err := f.diffRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	d := diffs[0]
	assert.Equal(t, "A100", d.ItemCode)
	assert.Equal(t, int64(7), d.ExpectedQty)
	assert.Equal(t, int64(9), d.ActualQty)
	assert.Equal(t, int64(2), d.Diff)
	assert.Equal(t, "caja sin registrar", d.Reason)
	assert.Equal(t, entity.DiffStatusPending, d.Status)

	counts, _ := f.countRepo.List(ctx)
	require.Len(t, counts, 1)
	assert.NotEmpty(t, counts[0].ID)
	assert.Equal(t, counts[0].ID, d.PhysicalCountID, "la discrepancia referencia su conteo")
}

// Los movimientos pendientes no cuentan en la cantidad esperada del sistema.
func TestSubmit_PendientesFueraDelEsperado(t *testing.T) {
	f := buildCount(t)
	f.seedA100(t)
	ctx := context.Background()
	require.NoError(t, f.txRepo.Create(ctx, &entity.Movement{
		ID: "TXN-3", ItemCode: "A100", Direction: entity.DirectionOUT, Quantity: 5, Status: entity.StatusPending,
	}))

	_, err := f.uc.Submit(ctx, "Pedro", dto.PhysicalCountRequest{
		Counts: []dto.CountLine{{ItemCode: "A100", ActualQty: 7}},
	})
	require.NoError(t, err)

	diffs, _ := f.diffRepo.List(ctx)
	assert.Empty(t, diffs, "el esperado sigue en 7 porque la salida pendiente no cuenta")
}

// Contar un código sin movimientos ni catálogo: esperado 0.
func TestSubmit_CodigoDesconocidoEsperadoCero(t *testing.T) {
	f := buildCount(t)
	ctx := context.Background()

	resp, err := f.uc.Submit(ctx, "Pedro", dto.PhysicalCountRequest{
		Counts: []dto.CountLine{{ItemCode: "ZZZ9", ActualQty: 4}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.DiffsLogged)

	diffs, _ := f.diffRepo.List(ctx)
	require.Len(t, diffs, 1)
	assert.Equal(t, int64(0), diffs[0].ExpectedQty)
	assert.Equal(t, int64(4), diffs[0].Diff)
}

// Varias líneas en una sesión comparten el mismo snapshot del libro.
func TestSubmit_VariasLineasUnaSesion(t *testing.T) {
	f := buildCount(t)
	f.seedA100(t)
	ctx := context.Background()
	require.NoError(t, f.txRepo.Create(ctx, &entity.Movement{
		ID: "TXN-3", ItemCode: "B200", Direction: entity.DirectionIN, Quantity: 2, Status: entity.StatusLocked,
	}))

	resp, err := f.uc.Submit(ctx, "Pedro", dto.PhysicalCountRequest{
		Date: "2026-07-31",
		Counts: []dto.CountLine{
			{ItemCode: "A100", ActualQty: 7},
			{ItemCode: "B200", ActualQty: 1, Reason: "faltante"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.CountsSaved)
	assert.Equal(t, 1, resp.DiffsLogged)
}

func TestSubmit_FechaInvalida(t *testing.T) {
	f := buildCount(t)
	_, err := f.uc.Submit(context.Background(), "Pedro", dto.PhysicalCountRequest{
		Date:   "31/07/2026",
		Counts: []dto.CountLine{{ItemCode: "A100", ActualQty: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
