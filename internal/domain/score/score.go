// Package score computes the scalar watchability score for one game.
package score

import (
	"math"

	model "github.com/okian/tipoff/internal/domain/model"
	normalize "github.com/okian/tipoff/internal/domain/normalize"
)

// Default scoring configuration constants. Weights are unnormalized
// relative weights; watchability privileges star power and competitive
// closeness over raw team quality.
const (
	defaultStarWeight         = 0.35
	defaultQualityWeight      = 0.15
	defaultPaceWeight         = 0.15
	defaultClosenessWeight    = 0.35
	defaultMustWatchThreshold = 80.0

	// neutralCloseness stands in when the market has no line for a
	// game. Not zero and not an error.
	neutralCloseness = 0.5

	maxScoreValue = 100.0
)

// StarCombine selects how the two teams' star factors merge into the
// game's star sub-score.
type StarCombine string

const (
	// StarCombineSum adds both teams' star factors (range [0, 2]).
	StarCombineSum StarCombine = "sum"
	// StarCombineMax takes the brighter side only (range [0, 1]).
	StarCombineMax StarCombine = "max"
)

// ParseStarCombine validates a configured combine mode.
func ParseStarCombine(raw string) (StarCombine, bool) {
	switch StarCombine(raw) {
	case StarCombineSum:
		return StarCombineSum, true
	case StarCombineMax:
		return StarCombineMax, true
	default:
		return "", false
	}
}

// Weights are the relative weights of the four sub-scores.
type Weights struct {
	Star      float64
	Quality   float64
	Pace      float64
	Closeness float64
}

// DefaultWeights returns the documented default weighting.
func DefaultWeights() Weights {
	return Weights{
		Star:      defaultStarWeight,
		Quality:   defaultQualityWeight,
		Pace:      defaultPaceWeight,
		Closeness: defaultClosenessWeight,
	}
}

// SubScores are the factor contributions retained for explainability.
// Star spans [0, 2] under sum combining and [0, 1] under max; the
// other three span [0, 1].
type SubScores struct {
	Star      float64
	Quality   float64
	Pace      float64
	Closeness float64
}

// GameScore is the scored game: a value object created fresh each run
// and never mutated.
type GameScore struct {
	Game      model.ScheduledGame
	Score     float64
	Sub       SubScores
	Home      normalize.TeamMetrics
	Away      normalize.TeamMetrics
	MustWatch bool
}

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithWeights sets the sub-score weights. Callers validate tables with
// Weights.Validate before configuring a scorer.
func WithWeights(w Weights) Option {
	return func(s *Scorer) {
		s.weights = w
	}
}

// WithStarCombine sets the star pair combine mode.
func WithStarCombine(mode StarCombine) Option {
	return func(s *Scorer) {
		if mode == StarCombineSum || mode == StarCombineMax {
			s.combine = mode
		}
	}
}

// WithMustWatchThreshold sets the presented-score cutoff above which a
// game is flagged must-watch.
func WithMustWatchThreshold(threshold float64) Option {
	return func(s *Scorer) {
		if threshold >= 0 && threshold <= maxScoreValue {
			s.mustWatch = threshold
		}
	}
}

// Scorer combines team factors and the betting spread into one scalar
// per game. Score is a pure function of its inputs.
type Scorer struct {
	weights   Weights
	combine   StarCombine
	mustWatch float64
}

// New creates a scorer with configuration options.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		weights:   DefaultWeights(),
		combine:   StarCombineSum,
		mustWatch: defaultMustWatchThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score computes the watchability score for one game from its two
// teams' factors. The presented score is rescaled to 0–100 against the
// maximum attainable weighted sum and rounded to one decimal.
func (s *Scorer) Score(game model.ScheduledGame, home, away normalize.TeamMetrics) GameScore {
	sub := SubScores{
		Quality:   (home.Quality + away.Quality) / 2,
		Pace:      (home.Pace + away.Pace) / 2,
		Closeness: closeness(game.Spread),
	}

	starMax := 1.0
	switch s.combine {
	case StarCombineMax:
		sub.Star = math.Max(home.Star, away.Star)
	default:
		sub.Star = home.Star + away.Star
		starMax = 2.0
	}

	raw := s.weights.Star*sub.Star +
		s.weights.Quality*sub.Quality +
		s.weights.Pace*sub.Pace +
		s.weights.Closeness*sub.Closeness

	ceiling := s.weights.Star*starMax + s.weights.Quality + s.weights.Pace + s.weights.Closeness

	var scaled float64
	if ceiling > 0 {
		scaled = maxScoreValue * raw / ceiling
	}
	scaled = math.Round(scaled*10) / 10

	return GameScore{
		Game:      game,
		Score:     scaled,
		Sub:       sub,
		Home:      home,
		Away:      away,
		MustWatch: scaled >= s.mustWatch,
	}
}

// closeness transforms the spread into (0, 1]: a pick'em line scores
// 1, widening spreads decay toward 0. A missing line sits at the
// neutral midpoint.
func closeness(spread *float64) float64 {
	if spread == nil {
		return neutralCloseness
	}
	return 1 / (1 + math.Abs(*spread))
}
