package carousel

import "errors"

var (
	// ErrInvalidArgument is returned when a carousel is configured with an
	// empty item list, a non-positive window size, or a non-positive
	// auto-advance interval.
	ErrInvalidArgument = errors.New("carousel: invalid argument")
	// ErrLoopNotStarted is returned by Loop requests issued before Start.
	ErrLoopNotStarted = errors.New("carousel: loop not started")
	// ErrLoopStopped is returned by Loop requests issued after the loop exited.
	ErrLoopStopped = errors.New("carousel: loop stopped")
)
