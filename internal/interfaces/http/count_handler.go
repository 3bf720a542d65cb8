package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/count"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
)

// CountHandler maneja las sesiones de conteo físico.
type CountHandler struct {
	uc *count.UseCase
}

// NewCountHandler construye el handler.
func NewCountHandler(uc *count.UseCase) *CountHandler {
	return &CountHandler{uc: uc}
}

// Submit godoc
// @Summary      Registrar una sesión de conteo físico
// @Description  Persiste un PhysicalCount por artículo; si la diferencia contra
// @Description  el stock calculado no es cero, registra además un DiffLog en pending.
// @Tags         counts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PhysicalCountRequest  true  "date, location, counts"
// @Success      200   {object}  dto.PhysicalCountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/physical-counts [post]
func (h *CountHandler) Submit(c *fiber.Ctx) error {
	var in dto.PhysicalCountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Submit(c.Context(), GetUserName(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
