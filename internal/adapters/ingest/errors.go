package ingest

import (
	"errors"
)

// Sentinel kinds for upload parsing errors.
var (
	ErrEmptyDocument = errors.New("empty upload document")
	ErrMissingColumn = errors.New("missing required column")
	ErrBadTimestamp  = errors.New("unparseable timestamp")
)
