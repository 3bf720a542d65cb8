package entity

import "time"

// Estados de PhysicalCount y DiffLog.
const (
	CountStatusRecorded  = "recorded"
	CountStatusConfirmed = "confirmed"

	DiffStatusPending  = "pending"
	DiffStatusResolved = "resolved"
)

// PhysicalCount es el resultado de contar físicamente un artículo en una sesión
// de inventario. Una fila por artículo por sesión; inmutable salvo confirmación
// de estado.
type PhysicalCount struct {
	ID          string
	Date        time.Time
	ItemCode    string
	ExpectedQty int64 // calculado por el sistema al momento del conteo
	ActualQty   int64 // contado a mano
	Difference  int64 // ActualQty - ExpectedQty
	Actor       string
	Location    string
	Status      string
	CreatedAt   time.Time
}

// DiffLog registra una discrepancia no nula detectada por un conteo físico.
// Se crea 1:1 con el PhysicalCount cuya diferencia != 0; el cierre mensual
// lo consume en modo solo lectura.
type DiffLog struct {
	ID              string
	PhysicalCountID string
	ItemCode        string
	ExpectedQty     int64
	ActualQty       int64
	Diff            int64
	Reason          string
	Status          string
	CreatedAt       time.Time
}
