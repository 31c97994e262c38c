package engine

import "errors"

// ErrInvalidTimeWindow is returned for free-time strings that are not "HH:MM-HH:MM"
// with start < end. Use errors.Is to check.
var ErrInvalidTimeWindow = errors.New("engine: invalid time window")
