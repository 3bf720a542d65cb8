// Package importer implementa la carga inicial de stock: un cargador de un
// solo uso que siembra la línea base del catálogo desde el CSV del fabricante.
package importer

import (
	"context"
	"encoding/csv"
	"math"
	"strconv"
	"strings"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/jhoicas/stockflow-api/pkg/logger"
)

// DefaultGroup grupo inicial asignado cuando la fila no trae uno.
const DefaultGroup = "initial"

// UseCase caso de uso de la importación inicial.
//
// No es idempotente entre ejecuciones con datos distintos: pensado para un
// único uso al inicio del periodo.
type UseCase struct {
	itemRepo repository.ItemRepository
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(itemRepo repository.ItemRepository, log *logger.Logger) *UseCase {
	return &UseCase{itemRepo: itemRepo, log: log}
}

// Run importa desde CSV crudo o desde filas ya estructuradas.
func (uc *UseCase) Run(ctx context.Context, in dto.ImportRequest) (*dto.ImportResponse, error) {
	items := in.Items
	if in.CSVText != "" {
		parsed, skipped, err := parseCSV(in.CSVText)
		if err != nil {
			return nil, err
		}
		items = append(items, parsed...)
		resp, err := uc.apply(ctx, items)
		if err != nil {
			return nil, err
		}
		resp.Skipped += skipped
		return resp, nil
	}
	if len(items) == 0 {
		return nil, domain.NewValidationError("items", "se requiere csv_text o items")
	}
	return uc.apply(ctx, items)
}

// apply actualiza la línea base de artículos existentes y da de alta los nuevos.
func (uc *UseCase) apply(ctx context.Context, items []dto.ImportItem) (*dto.ImportResponse, error) {
	resp := &dto.ImportResponse{}
	for _, row := range items {
		code := NormalizeCode(row.Code)
		if code == "" {
			resp.Skipped++
			continue
		}
		group := row.Group
		if group == "" {
			group = DefaultGroup
		}
		existing, err := uc.itemRepo.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			if err := uc.itemRepo.UpdateInitial(ctx, code, row.Qty, group); err != nil {
				return nil, err
			}
			resp.Updated++
			continue
		}
		item := &entity.Item{
			Code:         code,
			Name:         strings.TrimSpace(row.Name),
			InitialGroup: group,
			InitialQty:   row.Qty,
		}
		if err := uc.itemRepo.Create(ctx, item); err != nil {
			return nil, err
		}
		resp.Appended++
	}
	uc.log.Info().
		Int("updated", resp.Updated).
		Int("appended", resp.Appended).
		Int("skipped", resp.Skipped).
		Msg("importación inicial aplicada")
	return resp, nil
}

// parseCSV interpreta el formato del fabricante: cantidad, código, nombre
// [, grupo]. Filas con cantidad no finita o código vacío se descartan.
func parseCSV(text string) (items []dto.ImportItem, skipped int, err error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1 // el fabricante no es consistente en columnas
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, 0, domain.NewValidationError("csv_text", "CSV malformado: "+err.Error())
	}
	for _, rec := range records {
		if len(rec) < 2 {
			skipped++
			continue
		}
		qty, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil || math.IsNaN(qty) || math.IsInf(qty, 0) {
			skipped++
			continue
		}
		code := NormalizeCode(rec[1])
		if code == "" {
			skipped++
			continue
		}
		item := dto.ImportItem{Code: code, Qty: int64(qty)}
		if len(rec) > 2 {
			item.Name = strings.TrimSpace(rec[2])
		}
		if len(rec) > 3 {
			item.Group = strings.TrimSpace(rec[3])
		}
		items = append(items, item)
	}
	return items, skipped, nil
}
