package score

import (
	"errors"
	"fmt"
)

// Sentinel kinds for weight validation failures.
var (
	ErrNegativeWeight = errors.New("negative weight")
	ErrZeroWeights    = errors.New("weights sum to zero")
)

// Validate rejects weight tables the engine refuses to run with:
// negative weights and all-zero tables would both produce misleading
// rankings.
func (w Weights) Validate() error {
	for _, part := range []struct {
		name  string
		value float64
	}{
		{"star", w.Star},
		{"quality", w.Quality},
		{"pace", w.Pace},
		{"closeness", w.Closeness},
	} {
		if part.value < 0 {
			return fmt.Errorf("%w: %s=%v", ErrNegativeWeight, part.name, part.value)
		}
	}
	if w.Star+w.Quality+w.Pace+w.Closeness <= 0 {
		return ErrZeroWeights
	}
	return nil
}
