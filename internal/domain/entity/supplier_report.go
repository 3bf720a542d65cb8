package entity

import "time"

// SupplierReport es la instantánea por artículo que el cierre mensual congela
// al finalizar un periodo. Append-only: nunca se actualiza ni se borra.
type SupplierReport struct {
	ID          string
	ReportMonth string // periodo cerrado, formato "2006-01"
	ItemCode    string
	ItemName    string
	Discrepancy int64
	Reason      string
	CreatedAt   time.Time
}
