package storefront

import (
	"net/http"

	"github.com/mdanwarhossen/emajohn/internal/domain"
	"github.com/mdanwarhossen/emajohn/internal/engine"
)

// Every event endpoint applies one event and responds with the resulting
// snapshot, so the renderer can redraw from a single round trip.

// SearchHandler handles search-text changes.
type SearchHandler struct {
	engine Dispatcher
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(engine Dispatcher) *SearchHandler {
	return &SearchHandler{engine: engine}
}

// ServeHTTP handles POST /api/events/search
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.engine.Apply(engine.Search(req.Text)))
}

// SortHandler handles sort-mode changes.
type SortHandler struct {
	engine Dispatcher
}

// NewSortHandler creates a new sort handler.
func NewSortHandler(engine Dispatcher) *SortHandler {
	return &SortHandler{engine: engine}
}

// ServeHTTP handles POST /api/events/sort
func (h *SortHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mode string `json:"mode"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	mode, err := domain.ParseSortMode(req.Mode)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.engine.Apply(engine.SetSort(mode)))
}

// AddToCartHandler handles add-to-cart clicks.
type AddToCartHandler struct {
	engine Dispatcher
}

// NewAddToCartHandler creates a new add-to-cart handler.
func NewAddToCartHandler(engine Dispatcher) *AddToCartHandler {
	return &AddToCartHandler{engine: engine}
}

// ServeHTTP handles POST /api/events/cart/add
func (h *AddToCartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.ProductID == "" {
		respondError(w, domain.Invalid("events.cart_add", "productId is required"))
		return
	}

	respondJSON(w, http.StatusOK, h.engine.Apply(engine.AddToCart(req.ProductID)))
}

// AdjustQtyHandler handles the cart row +/- controls.
type AdjustQtyHandler struct {
	engine Dispatcher
}

// NewAdjustQtyHandler creates a new quantity adjustment handler.
func NewAdjustQtyHandler(engine Dispatcher) *AdjustQtyHandler {
	return &AdjustQtyHandler{engine: engine}
}

// ServeHTTP handles POST /api/events/cart/adjust
func (h *AdjustQtyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
		Delta     int    `json:"delta"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.ProductID == "" {
		respondError(w, domain.Invalid("events.cart_adjust", "productId is required"))
		return
	}
	if req.Delta == 0 {
		respondError(w, domain.Invalid("events.cart_adjust", "delta must be non-zero"))
		return
	}

	respondJSON(w, http.StatusOK, h.engine.Apply(engine.AdjustQty(req.ProductID, req.Delta)))
}

// ResizeHandler handles viewport resize reports.
type ResizeHandler struct {
	engine Dispatcher
}

// NewResizeHandler creates a new resize handler.
func NewResizeHandler(engine Dispatcher) *ResizeHandler {
	return &ResizeHandler{engine: engine}
}

// ServeHTTP handles POST /api/events/resize
func (h *ResizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WidthPx int `json:"widthPx"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.WidthPx <= 0 {
		respondError(w, domain.Invalid("events.resize", "widthPx must be positive"))
		return
	}

	respondJSON(w, http.StatusOK, h.engine.Apply(engine.Resize(req.WidthPx)))
}
