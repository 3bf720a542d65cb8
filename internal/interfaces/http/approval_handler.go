package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/approval"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
)

// ApprovalHandler maneja las peticiones del flujo de aprobación (manager|admin).
type ApprovalHandler struct {
	uc *approval.UseCase
}

// NewApprovalHandler construye el handler.
func NewApprovalHandler(uc *approval.UseCase) *ApprovalHandler {
	return &ApprovalHandler{uc: uc}
}

// ListPending godoc
// @Summary      Movimientos pendientes de aprobación
// @Tags         approvals
// @Security     Bearer
// @Produce      json
// @Param        area  query  string  false  "acotar a una sede/área"
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/approvals/pending [get]
func (h *ApprovalHandler) ListPending(c *fiber.Ctx) error {
	movs, err := h.uc.ListPending(c.Context(), c.Query("area"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":        len(movs),
		"transactions": dto.ToTransactionResponses(movs),
	})
}

// Decide godoc
// @Summary      Aprobar o devolver un movimiento
// @Description  Si la sincronización secundaria del libro de stock falla, la
// @Description  aprobación se mantiene y se devuelve el warning stockLedgerSyncFailed.
// @Tags         approvals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DecisionRequest  true  "transaction_id, action (approve|reject), comment (obligatorio al devolver)"
// @Success      200   {object}  dto.DecisionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/approvals/decision [post]
func (h *ApprovalHandler) Decide(c *fiber.Ctx) error {
	var in dto.DecisionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	actorName := GetUserName(c)
	switch in.Action {
	case "approve":
		warning, err := h.uc.Approve(c.Context(), in.TransactionID, actorName)
		if err != nil {
			return respondError(c, err)
		}
		resp := dto.DecisionResponse{Success: true, Warning: warning, Message: "movimiento aprobado"}
		if warning != "" {
			resp.Message = "movimiento aprobado; la vista de stock no pudo refrescarse"
		}
		return c.JSON(resp)
	case "reject":
		if err := h.uc.Reject(c.Context(), in.TransactionID, actorName, in.Comment); err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.DecisionResponse{Success: true, Message: "movimiento devuelto al solicitante"})
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "VALIDATION", Message: "acción inválida: approve | reject", Field: "action",
	})
}

// Batch godoc
// @Summary      Aprobar o devolver un lote de movimientos
// @Description  Semántica de fallo parcial: cada id es independiente; la UI
// @Description  retiene solo failed_ids para reintentar.
// @Tags         approvals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchDecisionRequest  true  "ids, action, comment (al devolver)"
// @Success      200   {object}  dto.BatchDecisionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/approvals/batch [post]
func (h *ApprovalHandler) Batch(c *fiber.Ctx) error {
	var in dto.BatchDecisionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.IDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "se requiere al menos un id", Field: "ids",
		})
	}
	actorName := GetUserName(c)
	var res approval.BatchResult
	switch in.Action {
	case "approve":
		res = h.uc.BatchApprove(c.Context(), in.IDs, actorName)
	case "reject":
		var err error
		res, err = h.uc.BatchReturn(c.Context(), in.IDs, actorName, in.Comment)
		if err != nil {
			return respondError(c, err)
		}
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "acción inválida: approve | reject", Field: "action",
		})
	}
	return c.JSON(dto.BatchDecisionResponse{
		SuccessCount: res.SuccessCount,
		FailedIDs:    res.FailedIDs,
		Warnings:     res.Warnings,
	})
}
