// Package slate assembles, orders and windows the day's ranked games.
package slate

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	injury "github.com/okian/tipoff/internal/domain/injury"
	model "github.com/okian/tipoff/internal/domain/model"
	normalize "github.com/okian/tipoff/internal/domain/normalize"
	score "github.com/okian/tipoff/internal/domain/score"
)

// SkippedGame reports a game excluded from the ranked slate and why.
type SkippedGame struct {
	Game         model.ScheduledGame
	MissingTeams []string
	Reason       string
}

// TeamError reports a scheduled team with no TeamRecord in the
// snapshot. Exactly one entry exists per missing team per run, no
// matter how many games reference it.
type TeamError struct {
	Team    string
	Message string
}

// Report is the outcome of one ranking run. Ranked is a materialized
// ordered sequence: callers may re-iterate it freely without
// recomputation. Skipped games are listed explicitly, never silently
// omitted.
type Report struct {
	SnapshotID uuid.UUID
	BuiltAt    time.Time
	Ranked     []score.GameScore
	Skipped    []SkippedGame
	Errors     []TeamError
	Warnings   []model.Warning
}

// Option applies a configuration option to the Builder.
type Option func(*Builder)

// WithNormalizer sets the stat normalizer.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(b *Builder) {
		if n != nil {
			b.normalizer = n
		}
	}
}

// WithScorer sets the game scorer.
func WithScorer(s *score.Scorer) Option {
	return func(b *Builder) {
		if s != nil {
			b.scorer = s
		}
	}
}

// WithDiscounts sets the injury discount table handed to each run's
// adjuster.
func WithDiscounts(discounts map[model.InjuryStatus]float64) Option {
	return func(b *Builder) {
		if len(discounts) > 0 {
			b.discounts = discounts
		}
	}
}

// Builder runs the scoring pipeline over one snapshot: adjuster from
// the injury report, factors from the normalizer, one score per game,
// then the deterministic ordering.
type Builder struct {
	normalizer *normalize.Normalizer
	scorer     *score.Scorer
	discounts  map[model.InjuryStatus]float64
}

// NewBuilder creates a builder with configuration options.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		normalizer: normalize.New(),
		scorer:     score.New(),
		discounts:  injury.DefaultDiscounts(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build ranks one snapshot. Failures are scoped to the games they
// affect: a game referencing a team with no TeamRecord is skipped and
// reported while the rest of the slate proceeds.
func (b *Builder) Build(_ context.Context, snap model.Snapshot) Report {
	report := Report{
		SnapshotID: snap.ID,
		BuiltAt:    time.Now().UTC(),
	}

	adj := injury.NewAdjuster(snap.Injuries, injury.WithDiscounts(b.discounts))
	report.Warnings = append(report.Warnings, adj.Warnings()...)

	metrics, warnings := b.normalizer.TeamMetrics(snap.Players, snap.Teams, adj)
	report.Warnings = append(report.Warnings, warnings...)

	missingSeen := make(map[string]bool)
	scored := make([]score.GameScore, 0, len(snap.Games))

	for _, game := range snap.Games {
		var missing []string
		for _, team := range []string{game.Away, game.Home} {
			m, ok := metrics[team]
			if !ok || !m.HasRecord {
				missing = append(missing, team)
				if !missingSeen[team] {
					missingSeen[team] = true
					report.Errors = append(report.Errors, TeamError{
						Team:    team,
						Message: fmt.Errorf("%w: scheduled team %s has no team record", normalize.ErrMissingTeamRecord, team).Error(),
					})
				}
			}
		}
		if len(missing) > 0 {
			report.Skipped = append(report.Skipped, SkippedGame{
				Game:         game,
				MissingTeams: missing,
				Reason:       fmt.Sprintf("no team record for %v", missing),
			})
			continue
		}

		if game.Spread == nil {
			report.Warnings = append(report.Warnings, model.Warning{
				Kind:    model.WarnMissingSpread,
				Subject: game.Code(),
				Message: fmt.Sprintf("no betting line for %s; closeness held at the neutral midpoint", game.Code()),
			})
		}

		scored = append(scored, b.scorer.Score(game, metrics[game.Home], metrics[game.Away]))
	}

	report.Ranked = Rank(scored)
	return report
}

// Rank orders game scores descending with the deterministic tie-break
// chain: score, then star sub-score, then earlier tipoff, then game
// code. The input is left untouched.
func Rank(games []score.GameScore) []score.GameScore {
	out := make([]score.GameScore, len(games))
	copy(out, games)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Sub.Star != b.Sub.Star {
			return a.Sub.Star > b.Sub.Star
		}
		if !a.Game.Tipoff.Equal(b.Game.Tipoff) {
			return a.Game.Tipoff.Before(b.Game.Tipoff)
		}
		return a.Game.Code() < b.Game.Code()
	})

	return out
}
