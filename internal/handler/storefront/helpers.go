package storefront

import (
	"encoding/json"
	"net/http"

	"github.com/mdanwarhossen/emajohn/internal/domain"
	"github.com/mdanwarhossen/emajohn/internal/engine"
)

// Dispatcher is the engine surface handlers depend on.
type Dispatcher interface {
	Apply(ev engine.Event) domain.ViewModel
	Snapshot() domain.ViewModel
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// respondJSON writes v as a JSON response.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError maps a domain error code to an HTTP status and writes the
// user-facing message.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch domain.ErrorCode(err) {
	case domain.EINVALID:
		status = http.StatusBadRequest
	case domain.ENOTFOUND:
		status = http.StatusNotFound
	}

	respondJSON(w, status, errorResponse{
		Error: domain.ErrorMessage(err),
		Code:  domain.ErrorCode(err),
	})
}

// decodeJSON decodes a request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.Invalid("events.decode", "invalid request body")
	}
	return nil
}
