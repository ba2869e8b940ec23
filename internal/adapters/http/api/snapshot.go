// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"time"
)

// SnapshotHandler handles snapshot summary requests.
type SnapshotHandler struct {
	deps Dependencies
}

// NewSnapshotHandler creates a new snapshot handler.
func NewSnapshotHandler(deps Dependencies) *SnapshotHandler {
	return &SnapshotHandler{deps: deps}
}

// HandleGetSnapshot handles GET /api/v1/snapshot requests, returning
// section row counts and upload times for the working snapshot.
func (h *SnapshotHandler) HandleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_snapshot"

	snap, err := h.deps.Snapshot(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	writeJSON(w, http.StatusOK, snapshotResponse{
		SnapshotID: snap.ID.String(),
		Players:    sectionPayload{Rows: len(snap.Players), UploadedAt: uploadTime(snap.PlayersUploadedAt)},
		Teams:      sectionPayload{Rows: len(snap.Teams), UploadedAt: uploadTime(snap.TeamsUploadedAt)},
		Injuries:   sectionPayload{Rows: len(snap.Injuries), UploadedAt: uploadTime(snap.InjuriesUploadedAt)},
		Schedule:   sectionPayload{Rows: len(snap.Games), UploadedAt: uploadTime(snap.ScheduleUploadedAt)},
	})
}

// uploadTime maps the zero time (section never uploaded) to an omitted
// JSON field.
func uploadTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
