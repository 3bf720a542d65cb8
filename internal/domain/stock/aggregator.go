// Package stock implementa el motor de agregación: una función pura que
// deriva las cantidades por artículo (apertura/entradas/salidas/cierre) a
// partir del catálogo y del libro de movimientos. Determinista e idempotente:
// el mismo snapshot del libro produce siempre la misma vista.
package stock

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// UnknownItemName nombre de respaldo para movimientos cuyo artículo no está
// en el catálogo.
const UnknownItemName = "unknown"

// View es la vista derivada de stock para un artículo.
// Invariante: ClosingQty = OpeningQty + InQty - OutQty.
type View struct {
	ItemCode     string
	ItemName     string
	OpeningQty   int64
	InQty        int64
	OutQty       int64
	ClosingQty   int64
	IsNew        bool
	InitialGroup string
}

// Aggregate calcula la vista de stock de todos los artículos.
// Inicializa una vista en cero por cada artículo del catálogo; acumula solo
// movimientos approved/locked (pending/draft/returned jamás afectan); crea
// vistas al vuelo para códigos fuera del catálogo, con nombre "unknown".
func Aggregate(items []*entity.Item, movements []*entity.Movement) []View {
	index := make(map[string]int, len(items))
	views := make([]View, 0, len(items))

	for _, it := range items {
		index[it.Code] = len(views)
		views = append(views, View{
			ItemCode:     it.Code,
			ItemName:     it.Name,
			OpeningQty:   it.InitialQty,
			IsNew:        it.IsNew,
			InitialGroup: it.InitialGroup,
		})
	}

	for _, m := range movements {
		if !m.CountsForStock() {
			continue
		}
		i, ok := index[m.ItemCode]
		if !ok {
			name := m.ItemName
			if name == "" {
				name = UnknownItemName
			}
			i = len(views)
			index[m.ItemCode] = i
			views = append(views, View{ItemCode: m.ItemCode, ItemName: name, IsNew: true})
		}
		switch m.Direction {
		case entity.DirectionIN:
			views[i].InQty += m.Quantity
		case entity.DirectionOUT:
			views[i].OutQty += m.Quantity
		}
	}

	for i := range views {
		views[i].ClosingQty = views[i].OpeningQty + views[i].InQty - views[i].OutQty
	}
	return views
}

// AggregateItem reproduce la agregación restringida a un solo código.
// Lo usa el conteo físico para calcular la cantidad esperada del sistema.
func AggregateItem(items []*entity.Item, movements []*entity.Movement, code string) View {
	var scopedItems []*entity.Item
	for _, it := range items {
		if it.Code == code {
			scopedItems = append(scopedItems, it)
			break
		}
	}
	var scopedMovs []*entity.Movement
	for _, m := range movements {
		if m.ItemCode == code {
			scopedMovs = append(scopedMovs, m)
		}
	}
	views := Aggregate(scopedItems, scopedMovs)
	if len(views) == 0 {
		return View{ItemCode: code, ItemName: UnknownItemName}
	}
	return views[0]
}
