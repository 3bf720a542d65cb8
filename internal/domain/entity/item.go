package entity

import "time"

// Item representa un artículo del catálogo. Nunca se elimina.
// IsNew marca artículos ausentes de la línea base del periodo anterior
// (dados de alta implícitamente al aprobar un movimiento de artículo nuevo).
type Item struct {
	Code         string
	Name         string
	Category     string
	Unit         string
	IsNew        bool
	InitialGroup string
	InitialQty   int64 // línea base sembrada por la importación inicial; se lee como opening_qty
	CreatedAt    time.Time
}
