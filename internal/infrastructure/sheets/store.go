// Package sheets implementa el almacén tabular sobre Google Sheets: una
// pestaña por tabla, fila 1 como encabezado, resolución de columnas por
// nombre. Autenticación por cuenta de servicio (JWT).
package sheets

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/jhoicas/stockflow-api/internal/infrastructure/tabular"
)

var _ tabular.Store = (*Store)(nil)

// Store almacén tabular respaldado por una hoja de cálculo de Google.
type Store struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

// Config parámetros de conexión.
type Config struct {
	SpreadsheetID   string // ID o URL completa de la hoja
	CredentialsPath string // JSON de cuenta de servicio; vacío = GOOGLE_CREDENTIALS
}

// NewStore crea el cliente de Sheets con credenciales de cuenta de servicio.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	spreadsheetID, err := extractSpreadsheetID(cfg.SpreadsheetID)
	if err != nil {
		return nil, err
	}

	var creds []byte
	if cfg.CredentialsPath != "" {
		creds, err = os.ReadFile(cfg.CredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("leer credenciales: %w", err)
		}
	} else if raw := os.Getenv("GOOGLE_CREDENTIALS"); raw != "" {
		creds = []byte(raw)
	} else {
		return nil, fmt.Errorf("sin credenciales: configure SHEETS_CREDENTIALS_PATH o GOOGLE_CREDENTIALS")
	}

	jwtCfg, err := google.JWTConfigFromJSON(creds, sheetsapi.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parsear credenciales: %w", err)
	}
	svc, err := sheetsapi.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("crear servicio sheets: %w", err)
	}
	return &Store{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// extractSpreadsheetID acepta un ID pelado o una URL completa de Google Sheets.
func extractSpreadsheetID(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("spreadsheet ID vacío")
	}
	re := regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)
	if m := re.FindStringSubmatch(raw); len(m) == 2 {
		return m[1], nil
	}
	return raw, nil
}

// ReadAll lee la pestaña completa. La fila 1 es el encabezado; las filas de
// datos se indexan desde 0.
func (s *Store) ReadAll(ctx context.Context, table string) (*tabular.Table, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, table).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("leer tabla %s: %w", table, err)
	}
	out := &tabular.Table{Name: table}
	if len(resp.Values) == 0 {
		return out, nil
	}
	for _, cell := range resp.Values[0] {
		out.Header = append(out.Header, fmt.Sprint(cell))
	}
	for i, raw := range resp.Values[1:] {
		values := make(map[string]string, len(out.Header))
		for j, col := range out.Header {
			if j < len(raw) {
				values[col] = fmt.Sprint(raw[j])
			} else {
				values[col] = ""
			}
		}
		out.Rows = append(out.Rows, tabular.Row{Index: i, Values: values})
	}
	return out, nil
}

// Append añade una fila al final de la pestaña, alineada al encabezado actual.
func (s *Store) Append(ctx context.Context, table string, values map[string]string) error {
	header, err := s.readHeader(ctx, table)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(header))
	for i, col := range header {
		row[i] = values[col]
	}
	vr := &sheetsapi.ValueRange{Values: [][]interface{}{row}}
	_, err = s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, table, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append en %s: %w", table, err)
	}
	return nil
}

// Update escribe las celdas del patch en la fila rowIndex (fila rowIndex+2 de
// la hoja: +1 por el encabezado, +1 por el índice 1-based de A1).
func (s *Store) Update(ctx context.Context, table string, rowIndex int, patch map[string]string) error {
	header, err := s.readHeader(ctx, table)
	if err != nil {
		return err
	}
	var data []*sheetsapi.ValueRange
	for i, col := range header {
		v, ok := patch[col]
		if !ok {
			continue
		}
		data = append(data, &sheetsapi.ValueRange{
			Range:  fmt.Sprintf("%s!%s%d", table, columnLetter(i), rowIndex+2),
			Values: [][]interface{}{{v}},
		})
	}
	if len(data) == 0 {
		return nil
	}
	req := &sheetsapi.BatchUpdateValuesRequest{
		ValueInputOption: "RAW",
		Data:             data,
	}
	_, err = s.svc.Spreadsheets.Values.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update en %s fila %d: %w", table, rowIndex, err)
	}
	return nil
}

func (s *Store) readHeader(ctx context.Context, table string) ([]string, error) {
	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, fmt.Sprintf("%s!1:1", table)).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("leer encabezado de %s: %w", table, err)
	}
	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("tabla %s sin encabezado", table)
	}
	header := make([]string, 0, len(resp.Values[0]))
	for _, cell := range resp.Values[0] {
		header = append(header, fmt.Sprint(cell))
	}
	return header, nil
}

// columnLetter convierte un índice 0-based a letra de columna A1 (A, B, …, Z, AA, …).
func columnLetter(index int) string {
	letter := ""
	for index >= 0 {
		letter = string(rune('A'+index%26)) + letter
		index = index/26 - 1
	}
	return letter
}
