package game

import "errors"

var (
	// ErrNotFound marks an unknown team code or post id. No state changed.
	ErrNotFound = errors.New("not found")

	// ErrLocked marks a failed phase gate or once-only precondition:
	// clock not running, post already solved, hint tier already purchased,
	// reward already claimed. No state changed.
	ErrLocked = errors.New("locked")
)
