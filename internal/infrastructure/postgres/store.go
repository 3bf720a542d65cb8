// Package postgres implementa el almacén tabular sobre PostgreSQL con un
// layout genérico: una fila jsonb por registro, direccionada por nombre de
// tabla lógica y posición de fila. Así se conserva el contrato del
// colaborador (columnas por nombre de encabezado, atomicidad solo a nivel de
// fila, sin transacciones entre filas) al migrar los datos de la hoja de
// cálculo a una base de datos.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stockflow-api/internal/infrastructure/tabular"
)

var _ tabular.Store = (*Store)(nil)

// Store almacén tabular respaldado por PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore construye el almacén sobre el pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema crea las tablas físicas si no existen y registra los
// encabezados lógicos del esquema estándar.
func (s *Store) EnsureSchema(ctx context.Context) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS store_tables (
			name    text PRIMARY KEY,
			headers jsonb NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS store_rows (
			table_name text   NOT NULL REFERENCES store_tables(name),
			row_index  bigint NOT NULL,
			data       jsonb  NOT NULL,
			PRIMARY KEY (table_name, row_index)
		)`,
	}
	for _, q := range ddl {
		if _, err := s.pool.Exec(ctx, q); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	for name, header := range tabular.Schemas {
		raw, err := json.Marshal(header)
		if err != nil {
			return err
		}
		_, err = s.pool.Exec(ctx, `
			INSERT INTO store_tables (name, headers) VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING`, name, raw)
		if err != nil {
			return fmt.Errorf("registrar tabla %s: %w", name, err)
		}
	}
	return nil
}

// ReadAll lee la tabla lógica completa en orden de fila.
func (s *Store) ReadAll(ctx context.Context, table string) (*tabular.Table, error) {
	var rawHeader []byte
	err := s.pool.QueryRow(ctx,
		`SELECT headers FROM store_tables WHERE name = $1`, table).Scan(&rawHeader)
	if err != nil {
		return nil, fmt.Errorf("leer encabezado de %s: %w", table, err)
	}
	out := &tabular.Table{Name: table}
	if err := json.Unmarshal(rawHeader, &out.Header); err != nil {
		return nil, fmt.Errorf("decodificar encabezado de %s: %w", table, err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT data FROM store_rows
		WHERE table_name = $1 ORDER BY row_index`, table)
	if err != nil {
		return nil, fmt.Errorf("leer filas de %s: %w", table, err)
	}
	defer rows.Close()

	index := 0
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("escanear fila de %s: %w", table, err)
		}
		values := map[string]string{}
		if err := json.Unmarshal(raw, &values); err != nil {
			return nil, fmt.Errorf("decodificar fila de %s: %w", table, err)
		}
		out.Rows = append(out.Rows, tabular.Row{Index: index, Values: values})
		index++
	}
	return out, rows.Err()
}

// Append inserta una fila nueva al final de la tabla lógica. row_index se
// asigna en la misma sentencia; la inserción es atómica por fila.
func (s *Store) Append(ctx context.Context, table string, values map[string]string) error {
	raw, err := json.Marshal(values)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO store_rows (table_name, row_index, data)
		SELECT $1, COALESCE(MAX(row_index), -1) + 1, $2
		FROM store_rows WHERE table_name = $1`, table, raw)
	if err != nil {
		return fmt.Errorf("append en %s: %w", table, err)
	}
	return nil
}

// Update fusiona el patch en el jsonb de la fila: un solo UPDATE, atómico a
// nivel de fila. Sin compare-and-swap: la última escritura gana.
func (s *Store) Update(ctx context.Context, table string, rowIndex int, patch map[string]string) error {
	raw, err := json.Marshal(patch)
	if err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx, `
		UPDATE store_rows SET data = data || $3::jsonb
		WHERE table_name = $1 AND row_index = $2`, table, rowIndex, raw)
	if err != nil {
		return fmt.Errorf("update en %s fila %d: %w", table, rowIndex, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update en %s: fila %d no existe", table, rowIndex)
	}
	return nil
}
