package closing_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/closing"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/memory"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/tabular"
	"github.com/jhoicas/stockflow-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del cierre mensual: preview sin efectos, finalize que bloquea los
// movimientos del periodo y emite la instantánea de proveedores, superposición
// del DiffLog y reintento idempotente.
// ──────────────────────────────────────────────────────────────────────────────

type closingFixture struct {
	uc         *closing.UseCase
	txRepo     *tabular.TransactionRepo
	diffRepo   *tabular.DiffLogRepo
	reportRepo *tabular.SupplierReportRepo
}

func buildClosing(t *testing.T) *closingFixture {
	t.Helper()
	store := memory.NewStore()
	f := &closingFixture{
		txRepo:     tabular.NewTransactionRepository(store),
		diffRepo:   tabular.NewDiffLogRepository(store),
		reportRepo: tabular.NewSupplierReportRepository(store),
	}
	f.uc = closing.NewUseCase(
		f.txRepo,
		tabular.NewItemRepository(store),
		f.diffRepo,
		f.reportRepo,
		nil,
		logger.Nop(),
	)
	return f
}

func (f *closingFixture) seedMovement(t *testing.T, id, code, direction string, qty int64, status, date string) {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	require.NoError(t, f.txRepo.Create(context.Background(), &entity.Movement{
		ID:        id,
		ItemCode:  code,
		ItemName:  "Artículo " + code,
		Direction: direction,
		Quantity:  qty,
		Status:    status,
		Date:      d,
	}))
}

func TestRun_MesInvalido(t *testing.T) {
	f := buildClosing(t)
	_, err := f.uc.Run(context.Background(), "julio-2026", closing.ActionPreview)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRun_AccionInvalida(t *testing.T) {
	f := buildClosing(t)
	_, err := f.uc.Run(context.Background(), "2026-07", "commit")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// preview agrupa la cantidad con signo por artículo dentro del periodo y no
// muta ningún registro.
func TestRun_PreviewAgrupaSinEfectos(t *testing.T) {
	f := buildClosing(t)
	ctx := context.Background()
	f.seedMovement(t, "TXN-1", "A100", entity.DirectionIN, 10, entity.StatusApproved, "2026-07-05")
	f.seedMovement(t, "TXN-2", "A100", entity.DirectionOUT, 3, entity.StatusApproved, "2026-07-12")
	f.seedMovement(t, "TXN-3", "A100", entity.DirectionIN, 99, entity.StatusPending, "2026-07-20")
	f.seedMovement(t, "TXN-4", "A100", entity.DirectionIN, 50, entity.StatusApproved, "2026-06-30")

	resp, err := f.uc.Run(ctx, "2026-07", closing.ActionPreview)
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	row := resp.Rows[0]
	assert.Equal(t, int64(7), row.ExpectedQty, "10 entran - 3 salen; pending y otros meses fuera")
	assert.Equal(t, int64(7), row.ActualQty, "sin discrepancia registrada actual = esperado")
	assert.False(t, row.HasDiff)
	assert.Zero(t, resp.LockedCount)

	m, _ := f.txRepo.GetByID(ctx, "TXN-1")
	assert.Equal(t, entity.StatusApproved, m.Status, "preview no bloquea nada")
}

// Las discrepancias del DiffLog se superponen sobre el cálculo; con varias
// para el mismo artículo gana la última registrada.
func TestRun_SuperponeDiffLogUltimaGana(t *testing.T) {
	f := buildClosing(t)
	ctx := context.Background()
	f.seedMovement(t, "TXN-1", "A100", entity.DirectionIN, 10, entity.StatusApproved, "2026-07-05")

	require.NoError(t, f.diffRepo.Create(ctx, &entity.DiffLog{
		ItemCode: "A100", ExpectedQty: 10, ActualQty: 8, Diff: -2, Status: entity.DiffStatusPending,
	}))
	require.NoError(t, f.diffRepo.Create(ctx, &entity.DiffLog{
		ItemCode: "A100", ExpectedQty: 10, ActualQty: 9, Diff: -1, Reason: "rotura", Status: entity.DiffStatusPending,
	}))

	resp, err := f.uc.Run(ctx, "2026-07", closing.ActionPreview)
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, int64(9), resp.Rows[0].ActualQty)
	assert.Equal(t, int64(-1), resp.Rows[0].Diff)
	assert.True(t, resp.Rows[0].HasDiff)
}

func TestRun_FinalizeBloqueaYEmiteReporte(t *testing.T) {
	f := buildClosing(t)
	ctx := context.Background()
	f.seedMovement(t, "TXN-1", "A100", entity.DirectionIN, 10, entity.StatusApproved, "2026-07-05")
	f.seedMovement(t, "TXN-2", "B200", entity.DirectionIN, 4, entity.StatusApproved, "2026-07-06")

	require.NoError(t, f.diffRepo.Create(ctx, &entity.DiffLog{
		ItemCode: "A100", ExpectedQty: 10, ActualQty: 9, Diff: -1, Reason: "rotura", Status: entity.DiffStatusPending,
	}))

	resp, err := f.uc.Run(ctx, "2026-07", closing.ActionFinalize)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.LockedCount)
	assert.Empty(t, resp.FailedIDs)
	assert.Equal(t, "cierre mensual de 2026-07 completado", resp.Message)

	for _, id := range []string{"TXN-1", "TXN-2"} {
		m, _ := f.txRepo.GetByID(ctx, id)
		assert.Equal(t, entity.StatusLocked, m.Status)
	}

	reports, err := f.reportRepo.ListByMonth(ctx, "2026-07")
	require.NoError(t, err)
	require.Len(t, reports, 2)
	byCode := map[string]*entity.SupplierReport{}
	for _, r := range reports {
		byCode[r.ItemCode] = r
	}
	assert.Equal(t, int64(-1), byCode["A100"].Discrepancy)
	assert.Equal(t, "rotura", byCode["A100"].Reason)
	assert.Equal(t, int64(0), byCode["B200"].Discrepancy)
}

// Reinvocar finalize es seguro: re-bloquear un locked es un no-op tolerado y
// la instantánea duplicada queda fechada.
func TestRun_FinalizeReintentable(t *testing.T) {
	f := buildClosing(t)
	ctx := context.Background()
	f.seedMovement(t, "TXN-1", "A100", entity.DirectionIN, 10, entity.StatusApproved, "2026-07-05")

	first, err := f.uc.Run(ctx, "2026-07", closing.ActionFinalize)
	require.NoError(t, err)
	assert.Equal(t, 1, first.LockedCount)

	second, err := f.uc.Run(ctx, "2026-07", closing.ActionFinalize)
	require.NoError(t, err)
	assert.Equal(t, 1, second.LockedCount, "re-sellar el locked cuenta como éxito")
	assert.Empty(t, second.FailedIDs)

	m, _ := f.txRepo.GetByID(ctx, "TXN-1")
	assert.Equal(t, entity.StatusLocked, m.Status)
}

// Un artículo movido en el mes pero fuera del catálogo entra al reporte con
// nombre de respaldo y marcado como nuevo.
func TestRun_ArticuloFueraDeCatalogoEnReporte(t *testing.T) {
	f := buildClosing(t)
	ctx := context.Background()
	require.NoError(t, f.txRepo.Create(ctx, &entity.Movement{
		ID:        "TXN-1",
		ItemCode:  "ZZZ9",
		Direction: entity.DirectionIN,
		Quantity:  6,
		Status:    entity.StatusApproved,
		Date:      time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC),
	}))

	resp, err := f.uc.Run(ctx, "2026-07", closing.ActionPreview)
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "unknown", resp.Rows[0].ItemName)
	assert.True(t, resp.Rows[0].IsNewItem)
}

// renderStub captura la invocación del renderizador.
type renderStub struct {
	month string
	rows  []dto.MonthlyReportRow
}

func (r *renderStub) Render(month string, rows []dto.MonthlyReportRow) ([]byte, error) {
	r.month = month
	r.rows = rows
	return []byte("%PDF-stub"), nil
}

func TestRenderPDF_DelegateAlRenderer(t *testing.T) {
	store := memory.NewStore()
	txRepo := tabular.NewTransactionRepository(store)
	stub := &renderStub{}
	uc := closing.NewUseCase(
		txRepo,
		tabular.NewItemRepository(store),
		tabular.NewDiffLogRepository(store),
		tabular.NewSupplierReportRepository(store),
		stub,
		logger.Nop(),
	)
	ctx := context.Background()
	require.NoError(t, txRepo.Create(ctx, &entity.Movement{
		ID: "TXN-1", ItemCode: "A100", Direction: entity.DirectionIN, Quantity: 5,
		Status: entity.StatusApproved, Date: time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC),
	}))

	pdf, err := uc.RenderPDF(ctx, "2026-07")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), pdf)
	assert.Equal(t, "2026-07", stub.month)
	require.Len(t, stub.rows, 1)
	assert.Equal(t, "A100", stub.rows[0].ItemCode)
}
