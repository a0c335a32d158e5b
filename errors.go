package waypoint

import "errors"

// Error kinds shared by every package in the module. Specific errors wrap
// exactly one kind, so callers can test either:
//
//	errors.Is(err, router.ErrStackFull) // the specific condition
//	errors.Is(err, waypoint.ErrOverflow) // any capacity problem
var (
	// ErrInvalidArgument reports malformed input such as an illegal route
	// pattern or a missing factory.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound reports a missing route, history entry or key.
	ErrNotFound = errors.New("not found")

	// ErrOverflow reports a fixed capacity or length limit being exceeded.
	ErrOverflow = errors.New("overflow")

	// ErrRange reports an argument outside its permitted range.
	ErrRange = errors.New("out of range")
)
