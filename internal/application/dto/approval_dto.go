package dto

// DecisionRequest body para POST /api/approvals/decision.
type DecisionRequest struct {
	TransactionID string `json:"transaction_id"`
	Action        string `json:"action"` // approve | reject
	Comment       string `json:"comment,omitempty"`
}

// DecisionResponse resultado de una decisión individual.
// Warning lleva "stockLedgerSyncFailed" cuando la sincronización secundaria
// del libro de stock falló sin revertir la aprobación.
type DecisionResponse struct {
	Success bool   `json:"success"`
	Warning string `json:"warning,omitempty"`
	Message string `json:"message"`
}

// BatchDecisionRequest body para POST /api/approvals/batch.
type BatchDecisionRequest struct {
	IDs     []string `json:"ids"`
	Action  string   `json:"action"` // approve | reject
	Comment string   `json:"comment,omitempty"`
}

// BatchDecisionResponse resultado de un lote: cada miembro es independiente.
// FailedIDs permite a la UI retener solo el subconjunto fallido para reintentar.
type BatchDecisionResponse struct {
	SuccessCount int      `json:"success_count"`
	FailedIDs    []string `json:"failed_ids"`
	Warnings     []string `json:"warnings,omitempty"`
}
