package tabular

import (
	"context"
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/jhoicas/stockflow-api/internal/domain/stock"
)

// StockLedgerSyncer mantiene la tabla StockLedger: una vista derivada por
// artículo que se refresca como efecto secundario de cada aprobación.
//
// Es la fase 2 del contrato de aprobación: mejor-esfuerzo. Si falla, la
// aprobación ya confirmada NO se revierte; el caso de uso lo degrada a warning.
// La vista canónica sigue siendo la agregación recalculada en cada lectura.
type StockLedgerSyncer struct {
	store    Store
	itemRepo repository.ItemRepository
	txRepo   repository.TransactionRepository
}

// NewStockLedgerSyncer construye el sincronizador.
func NewStockLedgerSyncer(store Store, itemRepo repository.ItemRepository, txRepo repository.TransactionRepository) *StockLedgerSyncer {
	return &StockLedgerSyncer{store: store, itemRepo: itemRepo, txRepo: txRepo}
}

// Sync recalcula la vista del artículo del movimiento y reescribe (o añade)
// su fila en StockLedger. Una sola fila: atomicidad a nivel de fila del colaborador.
func (s *StockLedgerSyncer) Sync(ctx context.Context, m *entity.Movement) error {
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		return err
	}
	movs, err := s.txRepo.List(ctx, repository.TransactionFilter{ItemCode: m.ItemCode})
	if err != nil {
		return err
	}
	view := stock.AggregateItem(items, movs, m.ItemCode)

	values := map[string]string{
		"item_code":   view.ItemCode,
		"item_name":   view.ItemName,
		"opening_qty": formatInt(view.OpeningQty),
		"in_qty":      formatInt(view.InQty),
		"out_qty":     formatInt(view.OutQty),
		"closing_qty": formatInt(view.ClosingQty),
		"synced_at":   formatTime(time.Now()),
	}

	table, err := s.store.ReadAll(ctx, TableStockLedger)
	if err != nil {
		return domain.NewStoreError("read_all", err)
	}
	if row := table.FindRow("item_code", m.ItemCode); row != nil {
		if err := s.store.Update(ctx, TableStockLedger, row.Index, values); err != nil {
			return domain.NewStoreError("update", err)
		}
		return nil
	}
	if err := s.store.Append(ctx, TableStockLedger, values); err != nil {
		return domain.NewStoreError("append", err)
	}
	return nil
}
