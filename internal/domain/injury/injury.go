// Package injury applies availability discounts from the day's injury report.
package injury

import (
	"fmt"

	model "github.com/okian/tipoff/internal/domain/model"
)

// Default discount multipliers per status. A player with no report
// entry contributes in full.
const (
	defaultOutDiscount          = 0.0
	defaultDoubtfulDiscount     = 0.25
	defaultQuestionableDiscount = 0.5
	defaultProbableDiscount     = 0.9
	fullContribution            = 1.0
)

// DefaultDiscounts returns a fresh copy of the default status discount
// table.
func DefaultDiscounts() map[model.InjuryStatus]float64 {
	return map[model.InjuryStatus]float64{
		model.StatusOut:          defaultOutDiscount,
		model.StatusDoubtful:     defaultDoubtfulDiscount,
		model.StatusQuestionable: defaultQuestionableDiscount,
		model.StatusProbable:     defaultProbableDiscount,
	}
}

// Option applies a configuration option to the Adjuster.
type Option func(*Adjuster)

// WithDiscounts sets the status discount table. The map is copied to
// avoid external modifications; invalid tables should be rejected with
// ValidateDiscounts before they reach here.
func WithDiscounts(discounts map[model.InjuryStatus]float64) Option {
	return func(a *Adjuster) {
		if len(discounts) == 0 {
			return
		}
		a.discounts = make(map[model.InjuryStatus]float64, len(discounts))
		for status, mult := range discounts {
			a.discounts[status] = mult
		}
	}
}

// Adjuster resolves per-player availability multipliers from the day's
// injury report. Entries are held as a keyed map (normalized player
// name → entry) so that the latest upload wins; there is no merging of
// stale entries.
type Adjuster struct {
	discounts map[model.InjuryStatus]float64
	entries   map[string]model.InjuryEntry
	warnings  []model.Warning
}

// NewAdjuster builds an adjuster from injury entries in upload order.
// Later entries for the same player overwrite earlier ones. Entries
// whose status is outside the discount table keep full contribution
// and surface a data quality warning, never an error.
func NewAdjuster(entries []model.InjuryEntry, opts ...Option) *Adjuster {
	a := &Adjuster{
		discounts: DefaultDiscounts(),
		entries:   make(map[string]model.InjuryEntry, len(entries)),
	}

	for _, opt := range opts {
		opt(a)
	}

	warned := make(map[string]bool)
	for _, e := range entries {
		key := model.NormalizeName(e.Player)
		if key == "" {
			continue
		}
		a.entries[key] = e
		if _, known := a.discounts[e.Status]; !known {
			warnKey := key + "|" + e.RawStatus
			if !warned[warnKey] {
				warned[warnKey] = true
				a.warnings = append(a.warnings, model.Warning{
					Kind:    model.WarnUnknownStatus,
					Subject: e.Player,
					Message: fmt.Sprintf("unrecognized injury status %q for %s; no adjustment applied", e.RawStatus, e.Player),
				})
			}
		}
	}

	return a
}

// Multiplier returns the contribution multiplier for a player. Players
// with no effective entry, or with an unrecognized status, contribute
// in full.
func (a *Adjuster) Multiplier(player string) float64 {
	e, ok := a.entries[model.NormalizeName(player)]
	if !ok {
		return fullContribution
	}
	mult, known := a.discounts[e.Status]
	if !known {
		return fullContribution
	}
	return mult
}

// Status returns the effective injury entry for a player, if any.
func (a *Adjuster) Status(player string) (model.InjuryEntry, bool) {
	e, ok := a.entries[model.NormalizeName(player)]
	return e, ok
}

// Warnings returns the data quality warnings collected while building
// the adjuster, in encounter order.
func (a *Adjuster) Warnings() []model.Warning {
	return a.warnings
}

// Len reports the number of effective entries after overwrites.
func (a *Adjuster) Len() int {
	return len(a.entries)
}
