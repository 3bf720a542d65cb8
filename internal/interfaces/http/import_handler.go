package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/importer"
)

// ImportHandler maneja la importación inicial de stock (solo admin).
type ImportHandler struct {
	uc *importer.UseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *importer.UseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Import godoc
// @Summary      Importación inicial de stock (un solo uso)
// @Description  Siembra la línea base desde el CSV del fabricante (cantidad,
// @Description  código, nombre). Devuelve contadores updated/appended.
// @Tags         import
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportRequest  true  "csv_text o items"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/import/initial-stock [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Run(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
