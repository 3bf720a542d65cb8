package dto

// MonthlyClosingRequest body para POST /api/closing/monthly.
type MonthlyClosingRequest struct {
	Month  string `json:"month"`  // "2006-01"
	Action string `json:"action"` // preview | finalize
}

// MonthlyReportRow fila por artículo del reporte mensual.
type MonthlyReportRow struct {
	ItemCode    string `json:"item_code"`
	ItemName    string `json:"item_name"`
	ExpectedQty int64  `json:"expected_qty"`
	ActualQty   int64  `json:"actual_qty"`
	Diff        int64  `json:"diff"`
	HasDiff     bool   `json:"has_diff"`
	IsNewItem   bool   `json:"is_new_item"`
}

// MonthlyClosingResponse resultado de preview o finalize.
type MonthlyClosingResponse struct {
	Month       string             `json:"month"`
	Rows        []MonthlyReportRow `json:"rows"`
	LockedCount int                `json:"locked_count,omitempty"`
	FailedIDs   []string           `json:"failed_ids,omitempty"`
	Message     string             `json:"message,omitempty"`
}
