package store

import "errors"

// Sentinel kinds for snapshot persistence errors.
var (
	ErrCorruptSnapshot = errors.New("corrupt snapshot document")
)
