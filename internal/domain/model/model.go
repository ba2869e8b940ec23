// Package model contains domain models passed between layers.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PlayerRecord is one row of the day's player stat upload.
// FP is the per-game fantasy-point composite already reduced to a
// single production number at the ingestion boundary.
type PlayerRecord struct {
	Name        string  // player display name
	Team        string  // 3-letter team code
	FP          float64 // per-game production composite
	GamesPlayed int
}

// TeamRecord is one row of the day's team advanced-stat upload.
// At most one record exists per team code within a snapshot.
type TeamRecord struct {
	Code      string  // 3-letter team code
	NetRating float64 // offensive rating minus defensive rating
	Pace      float64 // possessions per 48 minutes
}

// InjuryEntry is one row of the day's injury report. Status holds the
// normalized status token; RawStatus preserves the upload's original
// wording for reporting.
type InjuryEntry struct {
	Player    string
	Team      string
	Status    InjuryStatus
	RawStatus string
}

// ScheduledGame is one game on the day's schedule. Tipoff is the
// viewer-local wall-clock start time. Spread is the signed favored-team
// margin from the betting market; nil means the market had no line.
type ScheduledGame struct {
	Home   string
	Away   string
	Tipoff time.Time
	Spread *float64
}

// Code returns the game's unique key for the day, "AWAY@HOME".
func (g ScheduledGame) Code() string {
	return g.Away + "@" + g.Home
}

// Snapshot is the immutable input for one ranking run: the four record
// collections uploaded for the current date. Sections are replaced
// wholesale on upload (latest upload wins); the ID changes whenever any
// section does.
type Snapshot struct {
	ID       uuid.UUID
	Players  []PlayerRecord
	Teams    []TeamRecord
	Injuries []InjuryEntry
	Games    []ScheduledGame

	PlayersUploadedAt  time.Time
	TeamsUploadedAt    time.Time
	InjuriesUploadedAt time.Time
	ScheduleUploadedAt time.Time
}

// TeamsByCode indexes the snapshot's team records by team code.
// Later duplicates win, mirroring upload overwrite semantics.
func (s Snapshot) TeamsByCode() map[string]TeamRecord {
	idx := make(map[string]TeamRecord, len(s.Teams))
	for _, t := range s.Teams {
		idx[t.Code] = t
	}
	return idx
}

// NormalizeName canonicalizes a player name for map keying: lowercased
// with runs of whitespace collapsed to single spaces.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
