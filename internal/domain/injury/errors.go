package injury

import (
	"errors"
	"fmt"
	"sort"

	model "github.com/okian/tipoff/internal/domain/model"
)

// Sentinel kinds for discount table validation failures.
var (
	ErrUnknownStatusKey   = errors.New("unknown status in discount table")
	ErrDiscountOutOfRange = errors.New("discount outside [0, 1]")
	ErrDiscountOrder      = errors.New("discounts not monotone by severity")
	ErrMissingStatusKey   = errors.New("discount table missing status")
)

// ValidateDiscounts rejects discount tables that would scramble the
// severity ordering: every recognized status must be present, every
// multiplier must sit in [0, 1], and multipliers must not decrease as
// severity drops (out ≤ doubtful ≤ questionable ≤ probable ≤ 1).
func ValidateDiscounts(discounts map[model.InjuryStatus]float64) error {
	known := make(map[model.InjuryStatus]bool, len(model.Statuses()))
	for _, s := range model.Statuses() {
		known[s] = true
		if _, ok := discounts[s]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingStatusKey, s)
		}
	}

	keys := make([]string, 0, len(discounts))
	for s := range discounts {
		keys = append(keys, string(s))
	}
	sort.Strings(keys)
	for _, k := range keys {
		s := model.InjuryStatus(k)
		if !known[s] {
			return fmt.Errorf("%w: %s", ErrUnknownStatusKey, s)
		}
		if mult := discounts[s]; mult < 0 || mult > 1 {
			return fmt.Errorf("%w: %s=%v", ErrDiscountOutOfRange, s, mult)
		}
	}

	// Statuses() runs most severe first, so multipliers must not
	// decrease along it, and the least severe must not exceed full
	// contribution.
	order := model.Statuses()
	for i := 1; i < len(order); i++ {
		if discounts[order[i-1]] > discounts[order[i]] {
			return fmt.Errorf("%w: %s=%v > %s=%v",
				ErrDiscountOrder, order[i-1], discounts[order[i-1]], order[i], discounts[order[i]])
		}
	}
	if discounts[order[len(order)-1]] > fullContribution {
		return fmt.Errorf("%w: %s=%v exceeds full contribution",
			ErrDiscountOrder, order[len(order)-1], discounts[order[len(order)-1]])
	}

	return nil
}
