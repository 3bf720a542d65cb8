// Package memory implementa el almacén tabular en memoria, protegido por
// mutex. Se usa en tests y en modo demo (sin hoja de cálculo ni PostgreSQL
// configurados). Mismo contrato que los almacenes reales: direccionamiento
// por encabezado, append y update por posición de fila.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/stockflow-api/internal/infrastructure/tabular"
)

// Store almacén tabular en memoria.
type Store struct {
	mu     sync.RWMutex
	tables map[string]*memTable
}

type memTable struct {
	header []string
	rows   []map[string]string
}

// NewStore crea el almacén con las tablas del esquema estándar.
func NewStore() *Store {
	return NewStoreWithTables(tabular.Schemas)
}

// NewStoreWithTables crea el almacén con tablas y encabezados arbitrarios.
func NewStoreWithTables(schemas map[string][]string) *Store {
	s := &Store{tables: make(map[string]*memTable, len(schemas))}
	for name, header := range schemas {
		h := make([]string, len(header))
		copy(h, header)
		s.tables[name] = &memTable{header: h}
	}
	return s
}

// ReadAll devuelve una copia de la tabla completa.
func (s *Store) ReadAll(_ context.Context, table string) (*tabular.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tables[table]
	if !ok {
		return nil, fmt.Errorf("tabla %q no existe", table)
	}
	out := &tabular.Table{Name: table, Header: append([]string(nil), t.header...)}
	out.Rows = make([]tabular.Row, len(t.rows))
	for i, r := range t.rows {
		values := make(map[string]string, len(r))
		for k, v := range r {
			values[k] = v
		}
		out.Rows[i] = tabular.Row{Index: i, Values: values}
	}
	return out, nil
}

// Append añade una fila al final de la tabla.
func (s *Store) Append(_ context.Context, table string, values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[table]
	if !ok {
		return fmt.Errorf("tabla %q no existe", table)
	}
	row := make(map[string]string, len(values))
	for k, v := range values {
		row[k] = v
	}
	t.rows = append(t.rows, row)
	return nil
}

// Update aplica el patch a la fila indicada. La fila completa queda como
// unidad atómica bajo el mutex, igual que el colaborador real.
func (s *Store) Update(_ context.Context, table string, rowIndex int, patch map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[table]
	if !ok {
		return fmt.Errorf("tabla %q no existe", table)
	}
	if rowIndex < 0 || rowIndex >= len(t.rows) {
		return fmt.Errorf("tabla %q: fila %d fuera de rango", table, rowIndex)
	}
	for k, v := range patch {
		t.rows[rowIndex][k] = v
	}
	return nil
}
