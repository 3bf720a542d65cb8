// Package tabular abstrae el almacén de registros: un servicio de
// persistencia orientado a filas, direccionado por nombre de tabla y por
// encabezado de columna (el modelo hoja-de-cálculo-como-base-de-datos).
//
// El colaborador no ofrece garantías transaccionales entre filas: la única
// primitiva de mutación es leer-todo, modificar en memoria y reescribir la
// fila por posición. Dos actualizaciones concurrentes a la misma fila pueden
// pisarse (la última escritura gana). Esa limitación se documenta y se
// conserva; no se añade bloqueo por debajo de esta interfaz.
package tabular

import "context"

// Row es una fila de datos. Index es la posición 0-based dentro de los datos
// de la tabla (sin contar el encabezado); Values se indexa por nombre de columna.
type Row struct {
	Index  int
	Values map[string]string
}

// Get devuelve el valor de una columna, o "" si la columna no existe.
func (r Row) Get(column string) string {
	return r.Values[column]
}

// Table es el contenido completo de una tabla: encabezado + filas.
// Los consumidores deben tolerar cualquier orden de columnas; jamás se
// direcciona por posición.
type Table struct {
	Name   string
	Header []string
	Rows   []Row
}

// FindRow devuelve la primera fila cuyo valor en column coincide, o nil.
func (t *Table) FindRow(column, value string) *Row {
	for i := range t.Rows {
		if t.Rows[i].Get(column) == value {
			return &t.Rows[i]
		}
	}
	return nil
}

// Store es el puerto mínimo del almacén de registros.
// Implementaciones: Google Sheets, PostgreSQL (layout genérico jsonb) y
// memoria (tests / modo demo).
type Store interface {
	// ReadAll lee la tabla completa (encabezado + todas las filas).
	ReadAll(ctx context.Context, table string) (*Table, error)
	// Append añade una fila al final. Atomicidad a nivel de fila.
	Append(ctx context.Context, table string, values map[string]string) error
	// Update aplica un patch (columna → valor) a la fila rowIndex.
	// Reescritura completa de las celdas indicadas; sin compare-and-swap.
	Update(ctx context.Context, table string, rowIndex int, patch map[string]string) error
}
