// Package normalize maps raw player and team records into comparable
// per-team factors for scoring.
package normalize

import (
	"fmt"
	"math"
	"sort"

	model "github.com/okian/tipoff/internal/domain/model"
)

// Default normalization constants.
const (
	defaultTopN = 3
	// neutralMidpoint is used when a factor's observed range is
	// degenerate (every team identical) and no ordering exists.
	neutralMidpoint = 0.5
)

// Option applies a configuration option to the Normalizer.
type Option func(*Normalizer)

// WithTopN sets how many of a team's best available players feed its
// star factor.
func WithTopN(n int) Option {
	return func(nr *Normalizer) {
		if n >= 1 {
			nr.topN = n
		}
	}
}

// Adjuster supplies availability multipliers for player contributions.
// The injury package provides the production implementation.
type Adjuster interface {
	Multiplier(player string) float64
}

// TeamMetrics carries one team's factors for a single run. Star,
// Quality and Pace are min-max rescaled to [0, 1] across the day's
// league-wide team set; the raw inputs are retained for explainability.
type TeamMetrics struct {
	Team    string
	Star    float64
	Quality float64
	Pace    float64

	RawStar   float64 // injury-adjusted top-N production sum
	RawNet    float64
	RawPace   float64
	Rostered  int  // players present in the upload for this team
	HasRecord bool // a TeamRecord exists for this team
}

// Normalizer computes per-team factors from the day's snapshot
// collections.
type Normalizer struct {
	topN int
}

// New creates a normalizer with configuration options.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{topN: defaultTopN}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// TopN reports the configured star-factor roster depth.
func (n *Normalizer) TopN() int {
	return n.topN
}

// TeamMetrics builds the factor table for every team known to the run,
// the union of teams appearing in the player upload and the team
// upload. Teams with fewer than top-N available players fall back to
// whatever players exist and surface a short-roster warning; a missing
// TeamRecord is left for the caller to reject per game.
func (n *Normalizer) TeamMetrics(players []model.PlayerRecord, teams []model.TeamRecord, adj Adjuster) (map[string]TeamMetrics, []model.Warning) {
	rosters := make(map[string][]model.PlayerRecord)
	for _, p := range players {
		rosters[p.Team] = append(rosters[p.Team], p)
	}

	records := make(map[string]model.TeamRecord, len(teams))
	for _, t := range teams {
		records[t.Code] = t
	}

	codes := make(map[string]bool, len(rosters)+len(records))
	for code := range rosters {
		codes[code] = true
	}
	for code := range records {
		codes[code] = true
	}

	metrics := make(map[string]TeamMetrics, len(codes))
	var warnings []model.Warning

	sorted := make([]string, 0, len(codes))
	for code := range codes {
		sorted = append(sorted, code)
	}
	sort.Strings(sorted)

	for _, code := range sorted {
		m := TeamMetrics{Team: code}

		roster := rosters[code]
		m.Rostered = len(roster)
		m.RawStar = n.starAggregate(roster, adj)
		if len(roster) < n.topN {
			warnings = append(warnings, model.Warning{
				Kind:    model.WarnShortRoster,
				Subject: code,
				Message: fmt.Sprintf("%s has %d qualifying players for a top-%d star factor", code, len(roster), n.topN),
			})
		}

		if rec, ok := records[code]; ok {
			m.HasRecord = true
			m.RawNet = rec.NetRating
			m.RawPace = rec.Pace
		}

		metrics[code] = m
	}

	// Quality and pace rescale across teams with records; star across
	// teams with at least one rostered player. Teams outside a set
	// clamp to the bottom of its range.
	netLo, netHi := rawRange(metrics, func(m TeamMetrics) (float64, bool) { return m.RawNet, m.HasRecord })
	paceLo, paceHi := rawRange(metrics, func(m TeamMetrics) (float64, bool) { return m.RawPace, m.HasRecord })
	starLo, starHi := rawRange(metrics, func(m TeamMetrics) (float64, bool) { return m.RawStar, m.Rostered > 0 })

	for code, m := range metrics {
		m.Quality = rescale(m.RawNet, netLo, netHi)
		m.Pace = rescale(m.RawPace, paceLo, paceHi)
		m.Star = rescale(m.RawStar, starLo, starHi)
		metrics[code] = m
	}

	return metrics, warnings
}

// starAggregate sums a roster's top-N injury-adjusted per-game
// production. Ordering is by adjusted contribution so that unavailable
// players yield their slots to the remaining roster.
func (n *Normalizer) starAggregate(roster []model.PlayerRecord, adj Adjuster) float64 {
	type contribution struct {
		name     string
		raw      float64
		adjusted float64
	}

	contribs := make([]contribution, 0, len(roster))
	for _, p := range roster {
		mult := 1.0
		if adj != nil {
			mult = adj.Multiplier(p.Name)
		}
		contribs = append(contribs, contribution{
			name:     p.Name,
			raw:      p.FP,
			adjusted: p.FP * mult,
		})
	}

	sort.SliceStable(contribs, func(i, j int) bool {
		if contribs[i].adjusted != contribs[j].adjusted {
			return contribs[i].adjusted > contribs[j].adjusted
		}
		if contribs[i].raw != contribs[j].raw {
			return contribs[i].raw > contribs[j].raw
		}
		return contribs[i].name < contribs[j].name
	})

	limit := n.topN
	if limit > len(contribs) {
		limit = len(contribs)
	}

	var sum float64
	for _, c := range contribs[:limit] {
		sum += c.adjusted
	}
	return sum
}

// rawRange scans the metric table for the min and max of one raw field
// over the teams the pick function admits.
func rawRange(metrics map[string]TeamMetrics, pick func(TeamMetrics) (float64, bool)) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, m := range metrics {
		v, ok := pick(m)
		if !ok {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// rescale maps value into [0, 1] by min-max over the observed range.
// A degenerate or empty range yields the neutral midpoint; values
// outside the range clamp to its edges.
func rescale(value, lo, hi float64) float64 {
	if math.IsInf(lo, 1) || hi <= lo {
		return neutralMidpoint
	}
	r := (value - lo) / (hi - lo)
	return math.Max(0, math.Min(1, r))
}
