package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/jhoicas/stockflow-api/internal/domain/stock"
)

// StockHandler expone la vista de stock y el catálogo. La vista es una
// proyección pura sobre el libro, recalculada en cada lectura: no se cachea
// porque otros actores pueden mutar el origen entre peticiones.
type StockHandler struct {
	itemRepo repository.ItemRepository
	txRepo   repository.TransactionRepository
}

// NewStockHandler construye el handler.
func NewStockHandler(itemRepo repository.ItemRepository, txRepo repository.TransactionRepository) *StockHandler {
	return &StockHandler{itemRepo: itemRepo, txRepo: txRepo}
}

// StockView godoc
// @Summary      Vista de stock por artículo
// @Description  opening/in/out/closing derivados del libro; solo movimientos approved/locked.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        item_code  query  string  false  "acotar a un artículo"
// @Success      200  {array}  dto.StockViewRow
// @Router       /api/stock [get]
func (h *StockHandler) StockView(c *fiber.Ctx) error {
	items, err := h.itemRepo.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	movs, err := h.txRepo.List(c.Context(), repository.TransactionFilter{ItemCode: c.Query("item_code")})
	if err != nil {
		return respondError(c, err)
	}
	if code := c.Query("item_code"); code != "" {
		view := stock.AggregateItem(items, movs, code)
		return c.JSON(fiber.Map{"total": 1, "stock": dto.ToStockViewRows([]stock.View{view})})
	}
	views := stock.Aggregate(items, movs)
	return c.JSON(fiber.Map{"total": len(views), "stock": dto.ToStockViewRows(views)})
}

// ListItems godoc
// @Summary      Catálogo de artículos
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  map[string]interface{}
// @Router       /api/items [get]
func (h *StockHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.itemRepo.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]fiber.Map, 0, len(items))
	for _, it := range items {
		out = append(out, fiber.Map{
			"code":          it.Code,
			"name":          it.Name,
			"category":      it.Category,
			"unit":          it.Unit,
			"new_flag":      it.IsNew,
			"initial_group": it.InitialGroup,
		})
	}
	return c.JSON(fiber.Map{"total": len(out), "items": out})
}
