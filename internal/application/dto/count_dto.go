package dto

// CountLine un artículo contado dentro de una sesión de conteo físico.
type CountLine struct {
	ItemCode  string `json:"item_code"`
	ActualQty int64  `json:"actual_qty"`
	Reason    string `json:"reason,omitempty"`
}

// PhysicalCountRequest body para POST /api/physical-counts.
type PhysicalCountRequest struct {
	Date     string      `json:"date"` // "2006-01-02"; vacío = hoy
	Location string      `json:"location"`
	Counts   []CountLine `json:"counts"`
}

// PhysicalCountResponse resultado de la sesión.
type PhysicalCountResponse struct {
	Success      bool `json:"success"`
	CountsSaved  int  `json:"counts_saved"`
	DiffsLogged  int  `json:"diffs_logged"`
}
