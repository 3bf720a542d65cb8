package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/closing"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
)

// ClosingHandler maneja el cierre mensual (manager|admin).
type ClosingHandler struct {
	uc *closing.UseCase
}

// NewClosingHandler construye el handler.
func NewClosingHandler(uc *closing.UseCase) *ClosingHandler {
	return &ClosingHandler{uc: uc}
}

// Run godoc
// @Summary      Cierre mensual: preview o finalize
// @Description  finalize bloquea los movimientos del periodo y congela la
// @Description  instantánea del reporte de proveedores. No atómico; seguro de reintentar.
// @Tags         closing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MonthlyClosingRequest  true  "month (2006-01), action (preview|finalize)"
// @Success      200   {object}  dto.MonthlyClosingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/closing/monthly [post]
func (h *ClosingHandler) Run(c *fiber.Ctx) error {
	var in dto.MonthlyClosingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Run(c.Context(), in.Month, in.Action)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ReportPDF godoc
// @Summary      Descargar el reporte mensual en PDF
// @Tags         closing
// @Security     Bearer
// @Produce      application/pdf
// @Param        month  query  string  true  "periodo 2006-01"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/closing/monthly/report.pdf [get]
func (h *ClosingHandler) ReportPDF(c *fiber.Ctx) error {
	month := c.Query("month")
	pdfBytes, err := h.uc.RenderPDF(c.Context(), month)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-`+month+`.pdf"`)
	return c.Send(pdfBytes)
}
