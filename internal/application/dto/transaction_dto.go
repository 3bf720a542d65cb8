package dto

import (
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// CreateTransactionRequest body para POST /api/transactions.
// Quantity llega con signo desde la UI: positivo = entrada, negativo = salida.
// El caso de uso normaliza a magnitud + dirección canónica.
type CreateTransactionRequest struct {
	ItemCode  string `json:"item_code"`
	ItemName  string `json:"item_name,omitempty"`
	IsNewItem bool   `json:"is_new_item,omitempty"`
	Quantity  int64  `json:"quantity"`
	Reason    string `json:"reason,omitempty"`
	Base      string `json:"base,omitempty"`
	Location  string `json:"location,omitempty"`
	Memo      string `json:"memo,omitempty"`
	Area      string `json:"area,omitempty"`
	Date      string `json:"date,omitempty"` // "2006-01-02"; vacío = hoy
	AsDraft   bool   `json:"as_draft,omitempty"`
}

// UpdateTransactionRequest body para PUT /api/transactions/:id.
type UpdateTransactionRequest struct {
	ItemCode string `json:"item_code,omitempty"`
	ItemName string `json:"item_name,omitempty"`
	Quantity int64  `json:"quantity"`
	Base     string `json:"base,omitempty"`
	Location string `json:"location,omitempty"`
	Memo     string `json:"memo,omitempty"`
	Area     string `json:"area,omitempty"`
	Date     string `json:"date,omitempty"`
	Submit   bool   `json:"submit,omitempty"` // true = pasar de draft a pending
}

// TransactionResponse representación de un movimiento en respuestas.
type TransactionResponse struct {
	ID            string     `json:"id"`
	ItemCode      string     `json:"item_code"`
	ItemName      string     `json:"item_name"`
	Direction     string     `json:"direction"`
	Quantity      int64      `json:"quantity"`
	Reason        string     `json:"reason,omitempty"`
	ActorID       string     `json:"actor_id"`
	ActorName     string     `json:"actor_name"`
	Area          string     `json:"area,omitempty"`
	Date          string     `json:"date"`
	Status        string     `json:"status"`
	ApprovedBy    string     `json:"approved_by,omitempty"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	ReturnComment string     `json:"return_comment,omitempty"`
}

// ToTransactionResponse convierte la entidad al DTO de respuesta.
func ToTransactionResponse(m *entity.Movement) TransactionResponse {
	return TransactionResponse{
		ID:            m.ID,
		ItemCode:      m.ItemCode,
		ItemName:      m.ItemName,
		Direction:     m.Direction,
		Quantity:      m.Quantity,
		Reason:        m.Reason,
		ActorID:       m.ActorID,
		ActorName:     m.ActorName,
		Area:          m.Area,
		Date:          m.Date.Format("2006-01-02"),
		Status:        m.Status,
		ApprovedBy:    m.ApprovedBy,
		ApprovedAt:    m.ApprovedAt,
		ReturnComment: m.ReturnComment,
	}
}

// ToTransactionResponses convierte una lista de movimientos.
func ToTransactionResponses(ms []*entity.Movement) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToTransactionResponse(m))
	}
	return out
}
