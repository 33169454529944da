package storefront

import "net/http"

// ViewHandler serves the current view-model snapshot.
type ViewHandler struct {
	engine Dispatcher
}

// NewViewHandler creates a new view handler.
func NewViewHandler(engine Dispatcher) *ViewHandler {
	return &ViewHandler{engine: engine}
}

// ServeHTTP handles GET /api/view
func (h *ViewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.engine.Snapshot())
}
