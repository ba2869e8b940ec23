// Package store persists the current-day snapshot across uploads and
// restarts.
package store

import (
	"context"

	model "github.com/okian/tipoff/internal/domain/model"
)

// Store provides read/write access to the day's snapshot. Each Replace
// swaps one section wholesale: the latest upload wins, nothing merges.
type Store interface {
	// ReplacePlayers swaps the player stat section.
	ReplacePlayers(ctx context.Context, records []model.PlayerRecord) error
	// ReplaceTeams swaps the team advanced-stat section.
	ReplaceTeams(ctx context.Context, records []model.TeamRecord) error
	// ReplaceInjuries swaps the injury report section.
	ReplaceInjuries(ctx context.Context, entries []model.InjuryEntry) error
	// ReplaceSchedule swaps the day's schedule section.
	ReplaceSchedule(ctx context.Context, games []model.ScheduledGame) error

	// Snapshot returns a deep copy of the current snapshot. Callers may
	// hold and mutate it freely without racing later uploads.
	Snapshot(ctx context.Context) (model.Snapshot, error)
}
