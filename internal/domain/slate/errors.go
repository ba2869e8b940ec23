package slate

import (
	"errors"
)

// Sentinel kinds for window configuration failures.
var (
	ErrBadTimeOfDay   = errors.New("malformed time of day")
	ErrWindowInverted = errors.New("window start after end")
	ErrWindowsOverlap = errors.New("windows overlap")
	ErrNoWindows      = errors.New("no viewing windows configured")
)
