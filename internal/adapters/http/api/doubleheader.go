// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// DoubleHeaderHandler handles viewing recommendation requests.
type DoubleHeaderHandler struct {
	deps Dependencies
}

// NewDoubleHeaderHandler creates a new double header handler.
func NewDoubleHeaderHandler(deps Dependencies) *DoubleHeaderHandler {
	return &DoubleHeaderHandler{deps: deps}
}

// HandleGetDoubleHeader handles GET /api/v1/doubleheader requests.
// Windows with no in-window game report an absent pick explicitly.
func (h *DoubleHeaderHandler) HandleGetDoubleHeader(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_doubleheader"

	result, err := h.deps.DoubleHeader(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, toDoubleHeaderResponse(result))
}
