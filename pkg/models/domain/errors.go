package domain

import "errors"

// ErrStaleLoad marks a load cycle that finished after a newer one had
// already been issued; its response was discarded instead of applied.
var ErrStaleLoad = errors.New("stale load superseded by a newer one")

// ErrNotFound marks a lookup or mutation that touched no record.
var ErrNotFound = errors.New("not found")
