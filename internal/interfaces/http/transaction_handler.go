package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/ledger"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// TransactionHandler maneja las peticiones HTTP del libro de movimientos (protegido).
type TransactionHandler struct {
	uc *ledger.UseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *ledger.UseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar movimiento de inventario
// @Description  La cantidad llega con signo: positivo entrada, negativo salida.
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "item_code, quantity (con signo), is_new_item, area, date"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	m, err := h.uc.Create(c.Context(), CurrentActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToTransactionResponse(m))
}

// Update godoc
// @Summary      Editar movimiento propio (no approved/locked)
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.UpdateTransactionRequest  true  "campos a modificar"
// @Success      200   {object}  dto.TransactionResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [put]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	m, err := h.uc.Update(c.Context(), CurrentActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToTransactionResponse(m))
}

// GetByID godoc
// @Summary      Obtener movimiento por id
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	m, err := h.uc.GetByID(c.Context(), CurrentActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToTransactionResponse(m))
}

// List godoc
// @Summary      Listar movimientos
// @Description  Workers solo ven sus propios registros; managers y admins ven todo.
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        status     query  string  false  "draft|pending|approved|returned|locked"
// @Param        area       query  string  false  "sede/área"
// @Param        item_code  query  string  false  "código de artículo"
// @Param        month      query  string  false  "periodo 2006-01"
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	f := repository.TransactionFilter{
		Status:   c.Query("status"),
		Area:     c.Query("area"),
		ItemCode: c.Query("item_code"),
		Month:    c.Query("month"),
	}
	movs, err := h.uc.List(c.Context(), CurrentActor(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":        len(movs),
		"transactions": dto.ToTransactionResponses(movs),
	})
}
