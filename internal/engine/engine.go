// Package engine owns the session state: the read-only catalog, the cart
// store, and the transient query/viewport state. Every renderer event passes
// through Apply, which mutates state and returns the freshly assembled
// snapshot in one step.
package engine

import (
	"log/slog"
	"sync"

	"github.com/mdanwarhossen/emajohn/internal/cart"
	"github.com/mdanwarhossen/emajohn/internal/domain"
	"github.com/mdanwarhossen/emajohn/internal/view"
)

// StockLimitNotice is the advisory surfaced when a quantity clamp occurs.
// Informational only, never an error.
const StockLimitNotice = "Reached available stock limit"

// DefaultViewportWidth seeds the viewport before the first resize event.
const DefaultViewportWidth = 1000

// Engine serializes all state mutations behind one mutex, preserving the
// one-event-at-a-time model even though HTTP handlers run concurrently.
type Engine struct {
	mu       sync.Mutex
	catalog  []domain.Product
	byID     map[string]domain.Product
	cart     *cart.Store
	query    domain.QueryState
	viewport domain.ViewportState
	logger   *slog.Logger
}

// New creates an Engine over a loaded catalog. The catalog is read-only for
// the session; the cart starts empty.
func New(catalog []domain.Product, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}

	byID := make(map[string]domain.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	return &Engine{
		catalog:  catalog,
		byID:     byID,
		cart:     cart.NewStore(),
		query:    domain.DefaultQueryState(),
		viewport: domain.ViewportState{WidthPx: DefaultViewportWidth},
		logger:   logger,
	}
}

// SetViewportWidth overrides the initial viewport width, for configs that
// know their renderer's default window size.
func (e *Engine) SetViewportWidth(widthPx int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if widthPx > 0 {
		e.viewport.WidthPx = widthPx
	}
}

// Apply processes one event to completion and returns the resulting
// snapshot. Unknown product references are no-ops; the snapshot's Notice
// field carries the one-shot stock-limit advisory when a clamp happened.
func (e *Engine) Apply(ev Event) domain.ViewModel {
	e.mu.Lock()
	defer e.mu.Unlock()

	var notice string

	switch ev.Type {
	case EventSearch:
		e.query.SearchText = ev.Text

	case EventSetSort:
		e.query.Sort = ev.Sort

	case EventAddToCart:
		p, ok := e.byID[ev.ProductID]
		if !ok {
			e.logger.Debug("add_to_cart for unknown product id, ignoring", "product_id", ev.ProductID)
			break
		}
		if e.cart.AddOne(p) {
			notice = StockLimitNotice
		}

	case EventAdjustQty:
		if e.cart.AdjustQuantity(ev.ProductID, ev.Delta) {
			notice = StockLimitNotice
		}

	case EventResize:
		if ev.WidthPx > 0 {
			e.viewport.WidthPx = ev.WidthPx
		}

	default:
		e.logger.Debug("unknown event type, ignoring", "type", string(ev.Type))
	}

	return e.assemble(notice)
}

// Snapshot returns the current view model without applying an event.
func (e *Engine) Snapshot() domain.ViewModel {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.assemble("")
}

func (e *Engine) assemble(notice string) domain.ViewModel {
	return view.Assemble(e.catalog, e.query, e.viewport, e.cart, notice)
}
