package normalize

import (
	"errors"
)

// Sentinel kinds for normalization errors.
var (
	// ErrMissingTeamRecord marks a scheduled team with no TeamRecord in
	// the snapshot. The game referencing it is skipped, never scored
	// with silent zeros.
	ErrMissingTeamRecord = errors.New("missing team record")
)
