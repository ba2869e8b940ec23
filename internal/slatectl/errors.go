package slatectl

import (
	"errors"
)

// Sentinel kinds for CLI failures.
var (
	ErrServiceUnhealthy = errors.New("service unhealthy")
	ErrUploadRejected   = errors.New("upload rejected")
	ErrQueryFailed      = errors.New("query failed")
)
