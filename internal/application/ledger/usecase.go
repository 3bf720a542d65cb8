// Package ledger implementa el libro de movimientos: alta, edición y listado
// de registros bajo la máquina de estados
// draft → pending → {approved, returned}; returned → pending; approved → locked.
package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// Etiquetas de dirección usadas al componer el motivo sintético.
const (
	labelIn  = "Entrada"
	labelOut = "Salida"
)

// Actor identifica al solicitante de una operación.
type Actor struct {
	ID   string
	Name string
	Role string
	Area string
}

// CanViewAll indica si el actor puede ver registros ajenos.
func (a Actor) CanViewAll() bool {
	return a.Role == entity.RoleAdmin || a.Role == entity.RoleManager
}

// UseCase casos de uso del libro de movimientos.
type UseCase struct {
	txRepo   repository.TransactionRepository
	itemRepo repository.ItemRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRepo repository.TransactionRepository, itemRepo repository.ItemRepository) *UseCase {
	return &UseCase{txRepo: txRepo, itemRepo: itemRepo}
}

// Create registra un movimiento nuevo en pending (o draft si AsDraft).
//
// La cantidad llega con signo desde la UI y se normaliza a la representación
// canónica: magnitud positiva + dirección (positivo → IN, negativo → OUT).
// Si IsNewItem y el código no está en el catálogo, se inserta el artículo
// antes de añadir el movimiento.
func (uc *UseCase) Create(ctx context.Context, actor Actor, in dto.CreateTransactionRequest) (*entity.Movement, error) {
	if strings.TrimSpace(in.ItemCode) == "" {
		return nil, domain.NewValidationError("item_code", "código de artículo requerido")
	}
	if in.IsNewItem && strings.TrimSpace(in.ItemName) == "" {
		return nil, domain.NewValidationError("item_name", "nombre requerido para artículo nuevo")
	}
	if in.Quantity == 0 {
		return nil, domain.NewValidationError("quantity", "la cantidad no puede ser cero")
	}

	direction := entity.DirectionIN
	quantity := in.Quantity
	if quantity < 0 {
		direction = entity.DirectionOUT
		quantity = -quantity
	}

	date, err := parseDate(in.Date)
	if err != nil {
		return nil, domain.NewValidationError("date", "fecha inválida, formato esperado 2006-01-02")
	}

	itemName := in.ItemName
	if in.IsNewItem {
		existing, err := uc.itemRepo.GetByCode(ctx, in.ItemCode)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			item := &entity.Item{
				Code:  in.ItemCode,
				Name:  in.ItemName,
				IsNew: true,
			}
			if err := uc.itemRepo.Create(ctx, item); err != nil {
				return nil, err
			}
		} else if itemName == "" {
			itemName = existing.Name
		}
	} else if itemName == "" {
		if existing, err := uc.itemRepo.GetByCode(ctx, in.ItemCode); err == nil && existing != nil {
			itemName = existing.Name
		}
	}

	status := entity.StatusPending
	if in.AsDraft {
		status = entity.StatusDraft
	}
	now := time.Now()
	m := &entity.Movement{
		ItemCode:  in.ItemCode,
		ItemName:  itemName,
		Direction: direction,
		Quantity:  quantity,
		Reason:    in.Reason,
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Area:      firstNonEmpty(in.Area, actor.Area),
		Date:      date,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if m.Reason == "" {
		m.Reason = syntheticReason(direction, in.Base, in.Location, in.Memo)
	}
	if err := uc.txRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Update modifica un movimiento. Solo el dueño puede editar, y nunca en
// approved/locked. Un registro returned editado vuelve a pending (reenvío).
func (uc *UseCase) Update(ctx context.Context, actor Actor, id string, in dto.UpdateTransactionRequest) (*entity.Movement, error) {
	m, err := uc.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if !m.EditableBy(actor.ID) {
		return nil, domain.ErrForbidden
	}

	if in.Quantity != 0 {
		m.Direction = entity.DirectionIN
		m.Quantity = in.Quantity
		if in.Quantity < 0 {
			m.Direction = entity.DirectionOUT
			m.Quantity = -in.Quantity
		}
	}
	if in.ItemName != "" {
		m.ItemName = in.ItemName
	}
	if in.Area != "" {
		m.Area = in.Area
	}
	if in.Date != "" {
		date, err := parseDate(in.Date)
		if err != nil {
			return nil, domain.NewValidationError("date", "fecha inválida, formato esperado 2006-01-02")
		}
		m.Date = date
	}

	// Código sintético base+ubicación cuando no llega código explícito.
	switch {
	case in.ItemCode != "":
		m.ItemCode = in.ItemCode
	case in.Base != "" || in.Location != "":
		m.ItemCode = syntheticCode(in.Base, in.Location)
	}
	m.Reason = syntheticReason(m.Direction, in.Base, in.Location, in.Memo)

	switch m.Status {
	case entity.StatusReturned:
		// editar un registro devuelto lo reenvía
		m.Status = entity.StatusPending
		m.ReturnComment = ""
	case entity.StatusDraft:
		if in.Submit {
			m.Status = entity.StatusPending
		}
	}

	if err := uc.txRepo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// GetByID devuelve un movimiento. Un worker solo puede ver los suyos.
func (uc *UseCase) GetByID(ctx context.Context, actor Actor, id string) (*entity.Movement, error) {
	m, err := uc.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.CanViewAll() && m.ActorID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return m, nil
}

// List devuelve los movimientos visibles para el actor. Los workers quedan
// restringidos a sus propios registros; managers y admins ven todo.
func (uc *UseCase) List(ctx context.Context, actor Actor, f repository.TransactionFilter) ([]*entity.Movement, error) {
	if !actor.CanViewAll() {
		f.ActorID = actor.ID
	}
	return uc.txRepo.List(ctx, f)
}

// syntheticReason compone el motivo: etiqueta de dirección, base, ubicación y
// memo, separados por "|", omitiendo campos vacíos.
func syntheticReason(direction, base, location, memo string) string {
	label := labelIn
	if direction == entity.DirectionOUT {
		label = labelOut
	}
	parts := make([]string, 0, 4)
	for _, p := range []string{label, base, location, memo} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "|")
}

// syntheticCode compone un código base-ubicación cuando no hay código explícito.
func syntheticCode(base, location string) string {
	switch {
	case base == "":
		return location
	case location == "":
		return base
	}
	return base + "-" + location
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", s)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
