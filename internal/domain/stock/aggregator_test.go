package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del motor de agregación: función pura catálogo + libro → vista.
// El invariante central es ClosingQty = OpeningQty + InQty - OutQty, y que
// solo los movimientos approved/locked afectan las cantidades.
// ──────────────────────────────────────────────────────────────────────────────

func mov(code, direction string, qty int64, status string) *entity.Movement {
	return &entity.Movement{
		ItemCode:  code,
		Direction: direction,
		Quantity:  qty,
		Status:    status,
	}
}

// Caso de referencia: artículo A100 con línea base 0, una entrada de 10
// aprobada y una salida de 3 todavía pendiente. El stock debe mostrar 10;
// al aprobarse la salida, 7.
func TestAggregate_PendienteNoAfectaStock(t *testing.T) {
	items := []*entity.Item{{Code: "A100", Name: "Tornillo M4"}}
	movs := []*entity.Movement{
		mov("A100", entity.DirectionIN, 10, entity.StatusApproved),
		mov("A100", entity.DirectionOUT, 3, entity.StatusPending),
	}

	views := stock.Aggregate(items, movs)
	require.Len(t, views, 1)
	assert.Equal(t, int64(10), views[0].InQty)
	assert.Equal(t, int64(0), views[0].OutQty, "una salida pendiente no debe restar")
	assert.Equal(t, int64(10), views[0].ClosingQty)

	// La salida se aprueba: ahora sí resta.
	movs[1].Status = entity.StatusApproved
	views = stock.Aggregate(items, movs)
	assert.Equal(t, int64(3), views[0].OutQty)
	assert.Equal(t, int64(7), views[0].ClosingQty)
}

func TestAggregate_InvarianteDeCierre(t *testing.T) {
	items := []*entity.Item{
		{Code: "A100", Name: "Tornillo M4", InitialQty: 5},
		{Code: "B200", Name: "Tuerca M4", InitialQty: 0},
	}
	movs := []*entity.Movement{
		mov("A100", entity.DirectionIN, 12, entity.StatusApproved),
		mov("A100", entity.DirectionOUT, 4, entity.StatusLocked),
		mov("B200", entity.DirectionIN, 8, entity.StatusLocked),
		mov("B200", entity.DirectionOUT, 1, entity.StatusApproved),
	}

	for _, v := range stock.Aggregate(items, movs) {
		assert.Equal(t, v.OpeningQty+v.InQty-v.OutQty, v.ClosingQty,
			"el cierre de %s debe ser apertura + entradas - salidas", v.ItemCode)
	}
}

func TestAggregate_AperturaDesdeLineaBase(t *testing.T) {
	items := []*entity.Item{{Code: "A100", Name: "Tornillo M4", InitialQty: 25}}

	views := stock.Aggregate(items, nil)
	require.Len(t, views, 1)
	assert.Equal(t, int64(25), views[0].OpeningQty)
	assert.Equal(t, int64(25), views[0].ClosingQty, "sin movimientos: cierre = apertura")
}

// draft y returned tampoco cuentan, igual que pending.
func TestAggregate_SoloAprobadosYBloqueadosCuentan(t *testing.T) {
	items := []*entity.Item{{Code: "A100"}}
	movs := []*entity.Movement{
		mov("A100", entity.DirectionIN, 100, entity.StatusDraft),
		mov("A100", entity.DirectionIN, 100, entity.StatusReturned),
		mov("A100", entity.DirectionIN, 100, entity.StatusPending),
		mov("A100", entity.DirectionIN, 7, entity.StatusApproved),
		mov("A100", entity.DirectionIN, 3, entity.StatusLocked),
	}

	views := stock.Aggregate(items, movs)
	require.Len(t, views, 1)
	assert.Equal(t, int64(10), views[0].ClosingQty)
}

// Un movimiento con código fuera del catálogo crea una vista al vuelo con
// nombre "unknown" y marcada como nueva; jamás se descarta la cantidad.
func TestAggregate_CodigoFueraDeCatalogo(t *testing.T) {
	items := []*entity.Item{{Code: "A100", Name: "Tornillo M4"}}
	movs := []*entity.Movement{
		mov("ZZZ9", entity.DirectionIN, 6, entity.StatusApproved),
	}

	views := stock.Aggregate(items, movs)
	require.Len(t, views, 2)
	assert.Equal(t, "ZZZ9", views[1].ItemCode)
	assert.Equal(t, stock.UnknownItemName, views[1].ItemName)
	assert.True(t, views[1].IsNew)
	assert.Equal(t, int64(6), views[1].ClosingQty)
}

// El orden de la vista es estable: primero el catálogo en su orden, después
// los códigos desconocidos por primera aparición en el libro.
func TestAggregate_OrdenCatalogoPrimero(t *testing.T) {
	items := []*entity.Item{{Code: "B200"}, {Code: "A100"}}
	movs := []*entity.Movement{
		mov("X001", entity.DirectionIN, 1, entity.StatusApproved),
		mov("A100", entity.DirectionIN, 1, entity.StatusApproved),
		mov("X002", entity.DirectionIN, 1, entity.StatusApproved),
	}

	views := stock.Aggregate(items, movs)
	require.Len(t, views, 4)
	assert.Equal(t, "B200", views[0].ItemCode)
	assert.Equal(t, "A100", views[1].ItemCode)
	assert.Equal(t, "X001", views[2].ItemCode)
	assert.Equal(t, "X002", views[3].ItemCode)
}

// Determinismo: el mismo snapshot produce siempre la misma vista.
func TestAggregate_Determinista(t *testing.T) {
	items := []*entity.Item{{Code: "A100", InitialQty: 2}}
	movs := []*entity.Movement{
		mov("A100", entity.DirectionIN, 9, entity.StatusApproved),
		mov("A100", entity.DirectionOUT, 4, entity.StatusApproved),
	}

	v1 := stock.Aggregate(items, movs)
	v2 := stock.Aggregate(items, movs)
	assert.Equal(t, v1, v2)
}

func TestAggregateItem_RestringeAUnCodigo(t *testing.T) {
	items := []*entity.Item{
		{Code: "A100", InitialQty: 5},
		{Code: "B200", InitialQty: 50},
	}
	movs := []*entity.Movement{
		mov("A100", entity.DirectionIN, 10, entity.StatusApproved),
		mov("B200", entity.DirectionIN, 99, entity.StatusApproved),
	}

	v := stock.AggregateItem(items, movs, "A100")
	assert.Equal(t, "A100", v.ItemCode)
	assert.Equal(t, int64(15), v.ClosingQty, "B200 no debe contaminar la vista de A100")
}

func TestAggregateItem_CodigoInexistente(t *testing.T) {
	v := stock.AggregateItem(nil, nil, "NADA")
	assert.Equal(t, "NADA", v.ItemCode)
	assert.Equal(t, stock.UnknownItemName, v.ItemName)
	assert.Equal(t, int64(0), v.ClosingQty)
}
