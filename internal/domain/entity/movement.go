package entity

import "time"

// Direcciones de un movimiento de inventario.
const (
	DirectionIN  = "IN"  // entrada
	DirectionOUT = "OUT" // salida
)

// Estados del ciclo de vida de un movimiento.
//
//	draft → pending → {approved, returned}
//	returned → pending (al reenviar)
//	approved → locked (solo el cierre mensual)
//
// locked es terminal; approved es terminal para el creador.
const (
	StatusDraft    = "draft"
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusReturned = "returned"
	StatusLocked   = "locked"
)

// Movement representa un movimiento de inventario (entrada o salida) en el libro.
// Quantity siempre es magnitud positiva; el signo lo lleva Direction.
type Movement struct {
	ID            string
	ItemCode      string
	ItemName      string
	Direction     string // IN | OUT
	Quantity      int64
	Reason        string
	ActorID       string
	ActorName     string
	Area          string
	Date          time.Time
	Status        string
	ApprovedBy    string
	ApprovedAt    *time.Time
	ReturnComment string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SignedQuantity devuelve la cantidad con signo: positiva para IN, negativa para OUT.
func (m *Movement) SignedQuantity() int64 {
	if m.Direction == DirectionOUT {
		return -m.Quantity
	}
	return m.Quantity
}

// CountsForStock indica si el movimiento afecta la agregación de stock.
// Solo approved y locked cuentan; pending/draft/returned nunca.
func (m *Movement) CountsForStock() bool {
	return m.Status == StatusApproved || m.Status == StatusLocked
}

// IsPlaceholder detecta filas corruptas: sin código de artículo y con cantidad cero.
// Se excluyen de todos los listados.
func (m *Movement) IsPlaceholder() bool {
	return m.ItemCode == "" && m.Quantity == 0
}

// EditableBy indica si el actor puede modificar el registro: debe ser el dueño
// y el estado no puede ser approved ni locked.
func (m *Movement) EditableBy(actorID string) bool {
	if m.ActorID != actorID {
		return false
	}
	return m.Status != StatusApproved && m.Status != StatusLocked
}

// CanTransition valida una transición de la máquina de estados.
func CanTransition(from, to string) bool {
	switch from {
	case StatusDraft:
		return to == StatusPending
	case StatusPending:
		return to == StatusApproved || to == StatusReturned
	case StatusReturned:
		return to == StatusPending
	case StatusApproved:
		return to == StatusLocked
	case StatusLocked:
		// re-sellar un registro ya bloqueado es un no-op tolerado del cierre mensual
		return to == StatusLocked
	}
	return false
}
