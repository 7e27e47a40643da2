package stats

import "errors"

// ErrInvalidArgument indicates a non-positive grid size, trial count or
// worker count, or a nil random source.
var ErrInvalidArgument = errors.New("stats: invalid argument")
