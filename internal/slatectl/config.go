// Package slatectl implements the operator CLI: it uploads the day's
// snapshot documents to a running service and renders the ranked slate.
package slatectl

import "time"

// Config holds configuration for one slatectl run.
type Config struct {
	BaseURL      string        // Base URL of the service
	PlayersFile  string        // Player stats CSV path (empty = skip)
	TeamsFile    string        // Team advanced stats CSV path (empty = skip)
	InjuriesFile string        // Injury report CSV path (empty = skip)
	ScheduleFile string        // Schedule CSV path (empty = skip)
	Top          int           // Ranked games to print
	Timeout      time.Duration // HTTP request timeout
	Verbose      bool          // Enable verbose logging
}

// Client-side mirrors of the service's JSON responses.

// UploadResult is the response to one snapshot upload.
type UploadResult struct {
	Kind     string    `json:"kind"`
	Rows     int       `json:"rows"`
	Warnings []Warning `json:"warnings"`
}

// Warning is one data quality finding surfaced by the service.
type Warning struct {
	Kind    string `json:"kind"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Game identifies one scheduled game.
type Game struct {
	Code   string    `json:"code"`
	Home   string    `json:"home"`
	Away   string    `json:"away"`
	Tipoff time.Time `json:"tipoff"`
	Spread *float64  `json:"spread"`
}

// SubScores are the factor contributions behind a game's score.
type SubScores struct {
	Star      float64 `json:"star"`
	Quality   float64 `json:"quality"`
	Pace      float64 `json:"pace"`
	Closeness float64 `json:"closeness"`
}

// GameScore is one ranked game.
type GameScore struct {
	Game      Game      `json:"game"`
	Score     float64   `json:"score"`
	MustWatch bool      `json:"must_watch"`
	SubScores SubScores `json:"sub_scores"`
}

// SkippedGame reports a game excluded from the slate.
type SkippedGame struct {
	Game         Game     `json:"game"`
	MissingTeams []string `json:"missing_teams"`
	Reason       string   `json:"reason"`
}

// TeamError reports a scheduled team with no stat record.
type TeamError struct {
	Team    string `json:"team"`
	Message string `json:"message"`
}

// Slate is the full ranking report.
type Slate struct {
	SnapshotID string        `json:"snapshot_id"`
	BuiltAt    time.Time     `json:"built_at"`
	Ranked     []GameScore   `json:"ranked"`
	Skipped    []SkippedGame `json:"skipped"`
	Errors     []TeamError   `json:"errors"`
	Warnings   []Warning     `json:"warnings"`
}

// Window is one viewing window.
type Window struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Pick is one window's recommendation; Game is nil for an absent slot.
type Pick struct {
	Window Window     `json:"window"`
	Game   *GameScore `json:"game"`
}

// DoubleHeader holds the window recommendations in priority order.
type DoubleHeader struct {
	Picks []Pick `json:"picks"`
}
