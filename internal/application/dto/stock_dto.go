package dto

import "github.com/jhoicas/stockflow-api/internal/domain/stock"

// StockViewRow vista de stock por artículo en GET /api/stock.
type StockViewRow struct {
	ItemCode     string `json:"item_code"`
	ItemName     string `json:"item_name"`
	OpeningQty   int64  `json:"opening_qty"`
	InQty        int64  `json:"in_qty"`
	OutQty       int64  `json:"out_qty"`
	ClosingQty   int64  `json:"closing_qty"`
	IsNew        bool   `json:"is_new"`
	InitialGroup string `json:"initial_group,omitempty"`
}

// ToStockViewRows convierte las vistas del motor de agregación.
func ToStockViewRows(views []stock.View) []StockViewRow {
	out := make([]StockViewRow, 0, len(views))
	for _, v := range views {
		out = append(out, StockViewRow{
			ItemCode:     v.ItemCode,
			ItemName:     v.ItemName,
			OpeningQty:   v.OpeningQty,
			InQty:        v.InQty,
			OutQty:       v.OutQty,
			ClosingQty:   v.ClosingQty,
			IsNew:        v.IsNew,
			InitialGroup: v.InitialGroup,
		})
	}
	return out
}

// ImportRequest body para POST /api/import/initial-stock.
// CSVText: formato del fabricante "cantidad,código,nombre[,grupo]".
// Items: alternativa ya estructurada.
type ImportRequest struct {
	CSVText string       `json:"csv_text,omitempty"`
	Items   []ImportItem `json:"items,omitempty"`
}

// ImportItem fila estructurada de importación inicial.
type ImportItem struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Qty   int64  `json:"qty"`
	Group string `json:"group,omitempty"`
}

// ImportResponse contadores del cargador inicial.
type ImportResponse struct {
	Updated  int `json:"updated"`
	Appended int `json:"appended"`
	Skipped  int `json:"skipped"`
}
