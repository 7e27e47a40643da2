package unionfind

import "errors"

var (
	// ErrInvalidArgument indicates a non-positive element count.
	ErrInvalidArgument = errors.New("unionfind: element count must be > 0")
	// ErrIndexOutOfRange indicates an element outside [0, n).
	ErrIndexOutOfRange = errors.New("unionfind: index out of range")
)
