package tabular_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/memory"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/tabular"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del contrato tabular: direccionamiento por nombre de columna (nunca
// por posición), FindRow y el ciclo movimiento → fila → movimiento a través
// de los adaptadores reales sobre el almacén en memoria.
// ──────────────────────────────────────────────────────────────────────────────

func TestRow_GetColumnaInexistente(t *testing.T) {
	row := tabular.Row{Values: map[string]string{"id": "TXN-1"}}
	assert.Equal(t, "TXN-1", row.Get("id"))
	assert.Equal(t, "", row.Get("no_existe"), "columna ausente devuelve cadena vacía")
}

func TestTable_FindRow(t *testing.T) {
	table := &tabular.Table{
		Header: []string{"id", "status"},
		Rows: []tabular.Row{
			{Index: 0, Values: map[string]string{"id": "TXN-1", "status": "pending"}},
			{Index: 1, Values: map[string]string{"id": "TXN-2", "status": "pending"}},
		},
	}

	row := table.FindRow("id", "TXN-2")
	require.NotNil(t, row)
	assert.Equal(t, 1, row.Index)

	assert.Nil(t, table.FindRow("id", "TXN-9"))
	// Primera coincidencia cuando hay varias.
	first := table.FindRow("status", "pending")
	require.NotNil(t, first)
	assert.Equal(t, 0, first.Index)
}

// El orden de las columnas del encabezado es irrelevante: los consumidores
// resuelven por nombre. Reordenar el esquema no debe romper ningún adaptador.
func TestRepositorios_ToleranOrdenDeColumnas(t *testing.T) {
	headers := tabular.Schemas[tabular.TableTransactions]
	reversed := make([]string, len(headers))
	for i, h := range headers {
		reversed[len(headers)-1-i] = h
	}
	store := memory.NewStoreWithTables(map[string][]string{
		tabular.TableTransactions: reversed,
	})
	repo := tabular.NewTransactionRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Movement{
		ID:        "TXN-1",
		ItemCode:  "A100",
		Direction: entity.DirectionIN,
		Quantity:  10,
		Status:    entity.StatusPending,
	}))

	m, err := repo.GetByID(ctx, "TXN-1")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "A100", m.ItemCode)
	assert.Equal(t, int64(10), m.Quantity)
}

func TestTransactionRepo_CicloCompleto(t *testing.T) {
	store := memory.NewStore()
	repo := tabular.NewTransactionRepository(store)
	ctx := context.Background()

	m := &entity.Movement{
		ItemCode:  "A100",
		ItemName:  "Tornillo M4",
		Direction: entity.DirectionOUT,
		Quantity:  3,
		Reason:    "Salida|central",
		ActorID:   "u-worker",
		Status:    entity.StatusPending,
	}
	require.NoError(t, repo.Create(ctx, m))
	require.NotEmpty(t, m.ID, "el repositorio asigna el id si viene vacío")

	got, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, m.ItemCode, got.ItemCode)
	assert.Equal(t, m.Direction, got.Direction)
	assert.Equal(t, m.Quantity, got.Quantity)
	assert.Equal(t, m.Reason, got.Reason)

	got.Status = entity.StatusApproved
	require.NoError(t, repo.Update(ctx, got))

	again, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, again.Status)
	assert.False(t, again.UpdatedAt.IsZero(), "update estampa updated_at")
}

func TestTransactionRepo_GetByIDInexistente(t *testing.T) {
	repo := tabular.NewTransactionRepository(memory.NewStore())
	m, err := repo.GetByID(context.Background(), "TXN-nope")
	require.NoError(t, err, "no encontrado no es un error de I/O")
	assert.Nil(t, m)
}

func TestTransactionRepo_FiltroPorMes(t *testing.T) {
	repo := tabular.NewTransactionRepository(memory.NewStore())
	ctx := context.Background()
	seed := func(id, date string) {
		d, err := time.Parse("2006-01-02", date)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, &entity.Movement{
			ID: id, ItemCode: "A100", Direction: entity.DirectionIN, Quantity: 1,
			Status: entity.StatusApproved, Date: d,
		}))
	}
	seed("TXN-1", "2026-07-05")
	seed("TXN-2", "2026-07-31")
	seed("TXN-3", "2026-08-01")

	julio, err := repo.List(ctx, repository.TransactionFilter{Month: "2026-07"})
	require.NoError(t, err)
	assert.Len(t, julio, 2)
}
