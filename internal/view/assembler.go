// Package view assembles the render-ready snapshot out of the query engine,
// cart store, and layout policy outputs.
package view

import (
	"github.com/mdanwarhossen/emajohn/internal/cart"
	"github.com/mdanwarhossen/emajohn/internal/domain"
	"github.com/mdanwarhossen/emajohn/internal/layout"
	"github.com/mdanwarhossen/emajohn/internal/query"
)

// Assemble recomputes one consistent ViewModel from the current state. It is
// called with every input under the engine's lock, so the snapshot is always
// internally consistent: the badge count equals the number of cart rows and
// the totals match the rows exactly. Updates are all-or-nothing per event.
func Assemble(
	catalog []domain.Product,
	queryState domain.QueryState,
	viewport domain.ViewportState,
	store *cart.Store,
	notice string,
) domain.ViewModel {
	displayed := query.Apply(catalog, queryState)

	cards := make([]domain.ProductCard, 0, len(displayed))
	for _, p := range displayed {
		cards = append(cards, domain.ProductCard{
			Product:    p,
			PriceLabel: FormatEUR(p.Price),
			Stars:      Stars(p.Rating),
		})
	}

	entries := store.Entries()
	rows := make([]domain.CartRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, domain.CartRow{
			ProductID:   entry.Product.ID,
			Name:        entry.Product.Name,
			DisplayName: TruncateName(entry.Product.Name),
			ImageURL:    entry.Product.ImageURL,
			UnitPrice:   entry.Product.Price,
			Quantity:    entry.Quantity,
			LineTotal:   entry.Product.Price * float64(entry.Quantity),
		})
	}

	return domain.ViewModel{
		DisplayedProducts: cards,
		CartRows:          rows,
		Totals:            store.Totals(),
		Layout:            layout.LayoutFor(viewport.WidthPx),
		CartBadgeCount:    store.Size(),
		CatalogCount:      len(catalog),
		Query:             queryState,
		Notice:            notice,
	}
}
