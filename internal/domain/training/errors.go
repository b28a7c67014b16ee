package training

import "errors"

var (
	ErrNotFound = errors.New("training request not found")
	// ErrNotPending guards every transition: PENDING is the only state a
	// decision or cancellation may start from.
	ErrNotPending = errors.New("training request is not pending")
)
