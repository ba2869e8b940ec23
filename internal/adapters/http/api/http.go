// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	ingest "github.com/okian/tipoff/internal/adapters/ingest"
	model "github.com/okian/tipoff/internal/domain/model"
	score "github.com/okian/tipoff/internal/domain/score"
	slate "github.com/okian/tipoff/internal/domain/slate"
)

// Router configuration constants.
const (
	requestTimeout = 30 * time.Second
	corsMaxAge     = 300
	maxUploadBytes = 8 << 20 // a full day's CSV uploads are a few KB
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Ingest parses one upload document and replaces the matching
	// snapshot section (latest upload wins).
	Ingest(ctx context.Context, kind ingest.Kind, r io.Reader) (ingest.Summary, error)

	// Read operations run the ranking pipeline over the current snapshot.
	BuildSlate(ctx context.Context) (slate.Report, error)
	DoubleHeader(ctx context.Context) (slate.DoubleHeaderResult, error)
	Snapshot(ctx context.Context) (model.Snapshot, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler       *HealthHandler
	statsHandler        *StatsHandler
	uploadsHandler      *UploadsHandler
	slateHandler        *SlateHandler
	doubleHeaderHandler *DoubleHeaderHandler
	snapshotHandler     *SnapshotHandler
	dashboardHandler    *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:       NewHealthHandler(),
		statsHandler:        NewStatsHandler(statsProvider),
		uploadsHandler:      NewUploadsHandler(deps),
		slateHandler:        NewSlateHandler(deps),
		doubleHeaderHandler: NewDoubleHeaderHandler(deps),
		snapshotHandler:     NewSnapshotHandler(deps),
		dashboardHandler:    newdashboardHandler(),
	}
}

// Router builds the chi router with middleware and all routes attached.
func (s *Server) Router(_ context.Context) chi.Router {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(requestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         corsMaxAge,
	}))

	r.Get("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	r.Get("/metrics", MetricsMiddleware(s.healthHandler.HandleHealth, "metrics"))
	r.Get("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	r.Get("/dashboard", s.dashboardHandler.HandleDashboard)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusTemporaryRedirect)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/snapshots/{kind}", MetricsMiddleware(s.uploadsHandler.HandleUpload, "upload"))
		r.Get("/slate", MetricsMiddleware(s.slateHandler.HandleGetSlate, "slate"))
		r.Get("/doubleheader", MetricsMiddleware(s.doubleHeaderHandler.HandleGetDoubleHeader, "doubleheader"))
		r.Get("/snapshot", MetricsMiddleware(s.snapshotHandler.HandleGetSnapshot, "snapshot"))
	})

	return r
}

// Response payloads. Domain values are mapped to explicit JSON shapes
// at the boundary so handler output stays stable across refactors.

type warningPayload struct {
	Kind    string `json:"kind"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type uploadResponse struct {
	Kind     string           `json:"kind"`
	Rows     int              `json:"rows"`
	Warnings []warningPayload `json:"warnings"`
}

type gamePayload struct {
	Code   string    `json:"code"`
	Home   string    `json:"home"`
	Away   string    `json:"away"`
	Tipoff time.Time `json:"tipoff"`
	Spread *float64  `json:"spread,omitempty"`
}

type subScoresPayload struct {
	Star      float64 `json:"star"`
	Quality   float64 `json:"quality"`
	Pace      float64 `json:"pace"`
	Closeness float64 `json:"closeness"`
}

type teamFactorsPayload struct {
	Team    string  `json:"team"`
	Star    float64 `json:"star"`
	Quality float64 `json:"quality"`
	Pace    float64 `json:"pace"`
	RawStar float64 `json:"raw_star"`
}

type gameScorePayload struct {
	Game      gamePayload        `json:"game"`
	Score     float64            `json:"score"`
	MustWatch bool               `json:"must_watch"`
	SubScores subScoresPayload   `json:"sub_scores"`
	Home      teamFactorsPayload `json:"home"`
	Away      teamFactorsPayload `json:"away"`
}

type skippedGamePayload struct {
	Game         gamePayload `json:"game"`
	MissingTeams []string    `json:"missing_teams"`
	Reason       string      `json:"reason"`
}

type teamErrorPayload struct {
	Team    string `json:"team"`
	Message string `json:"message"`
}

type slateResponse struct {
	SnapshotID string               `json:"snapshot_id"`
	BuiltAt    time.Time            `json:"built_at"`
	Ranked     []gameScorePayload   `json:"ranked"`
	Skipped    []skippedGamePayload `json:"skipped"`
	Errors     []teamErrorPayload   `json:"errors"`
	Warnings   []warningPayload     `json:"warnings"`
}

type windowPayload struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type pickPayload struct {
	Window windowPayload     `json:"window"`
	Game   *gameScorePayload `json:"game,omitempty"`
}

type doubleHeaderResponse struct {
	Picks []pickPayload `json:"picks"`
}

type sectionPayload struct {
	Rows       int        `json:"rows"`
	UploadedAt *time.Time `json:"uploaded_at,omitempty"`
}

type snapshotResponse struct {
	SnapshotID string         `json:"snapshot_id"`
	Players    sectionPayload `json:"players"`
	Teams      sectionPayload `json:"teams"`
	Injuries   sectionPayload `json:"injuries"`
	Schedule   sectionPayload `json:"schedule"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func toWarningPayloads(warnings []model.Warning) []warningPayload {
	out := make([]warningPayload, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, warningPayload{Kind: string(w.Kind), Subject: w.Subject, Message: w.Message})
	}
	return out
}

func toGamePayload(g model.ScheduledGame) gamePayload {
	return gamePayload{Code: g.Code(), Home: g.Home, Away: g.Away, Tipoff: g.Tipoff, Spread: g.Spread}
}

func toGameScorePayload(gs score.GameScore) gameScorePayload {
	return gameScorePayload{
		Game:      toGamePayload(gs.Game),
		Score:     gs.Score,
		MustWatch: gs.MustWatch,
		SubScores: subScoresPayload{
			Star:      gs.Sub.Star,
			Quality:   gs.Sub.Quality,
			Pace:      gs.Sub.Pace,
			Closeness: gs.Sub.Closeness,
		},
		Home: teamFactorsPayload{Team: gs.Home.Team, Star: gs.Home.Star, Quality: gs.Home.Quality, Pace: gs.Home.Pace, RawStar: gs.Home.RawStar},
		Away: teamFactorsPayload{Team: gs.Away.Team, Star: gs.Away.Star, Quality: gs.Away.Quality, Pace: gs.Away.Pace, RawStar: gs.Away.RawStar},
	}
}

func toSlateResponse(report slate.Report) slateResponse {
	resp := slateResponse{
		SnapshotID: report.SnapshotID.String(),
		BuiltAt:    report.BuiltAt,
		Ranked:     make([]gameScorePayload, 0, len(report.Ranked)),
		Skipped:    make([]skippedGamePayload, 0, len(report.Skipped)),
		Errors:     make([]teamErrorPayload, 0, len(report.Errors)),
		Warnings:   toWarningPayloads(report.Warnings),
	}
	for _, gs := range report.Ranked {
		resp.Ranked = append(resp.Ranked, toGameScorePayload(gs))
	}
	for _, sk := range report.Skipped {
		resp.Skipped = append(resp.Skipped, skippedGamePayload{
			Game:         toGamePayload(sk.Game),
			MissingTeams: sk.MissingTeams,
			Reason:       sk.Reason,
		})
	}
	for _, te := range report.Errors {
		resp.Errors = append(resp.Errors, teamErrorPayload{Team: te.Team, Message: te.Message})
	}
	return resp
}

func toDoubleHeaderResponse(result slate.DoubleHeaderResult) doubleHeaderResponse {
	resp := doubleHeaderResponse{Picks: make([]pickPayload, 0, len(result.Picks))}
	for _, p := range result.Picks {
		pick := pickPayload{
			Window: windowPayload{Name: p.Window.Name, Start: p.Window.Start.String(), End: p.Window.End.String()},
		}
		if p.Game != nil {
			gs := toGameScorePayload(*p.Game)
			pick.Game = &gs
		}
		resp.Picks = append(resp.Picks, pick)
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
