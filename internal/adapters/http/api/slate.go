// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// SlateHandler handles ranked slate requests.
type SlateHandler struct {
	deps Dependencies
}

// NewSlateHandler creates a new slate handler.
func NewSlateHandler(deps Dependencies) *SlateHandler {
	return &SlateHandler{deps: deps}
}

// HandleGetSlate handles GET /api/v1/slate requests. The response is
// the full ranking report: ranked games plus the explicit skipped-game
// and warning lists, never a silent omission.
func (h *SlateHandler) HandleGetSlate(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_slate"

	report, err := h.deps.BuildSlate(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, toSlateResponse(report))
}
