// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	ingest "github.com/okian/tipoff/internal/adapters/ingest"
)

// UploadsHandler handles snapshot section uploads.
type UploadsHandler struct {
	deps Dependencies
}

// NewUploadsHandler creates a new uploads handler.
func NewUploadsHandler(deps Dependencies) *UploadsHandler {
	return &UploadsHandler{deps: deps}
}

// HandleUpload handles POST /api/v1/snapshots/{kind} requests. The body
// is one CSV document; the section it names is replaced wholesale.
func (h *UploadsHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	const op = "api.upload_snapshot"

	kind, ok := ingest.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown_kind", NewKind(op, ErrUnknownKind))
		return
	}

	body := http.MaxBytesReader(w, r.Body, maxUploadBytes)
	summary, err := h.deps.Ingest(r.Context(), kind, body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{
		Kind:     string(summary.Kind),
		Rows:     summary.Rows,
		Warnings: toWarningPayloads(summary.Warnings),
	})
}
