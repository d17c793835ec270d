package track

import "errors"

var (
	// ErrNoSegment is returned by queries made before the pool is populated.
	// It indicates an initialization-order bug in the caller.
	ErrNoSegment = errors.New("track: no segment (pool not initialized)")

	// ErrInvalidLane is returned for lane indexes outside [0, lanes).
	// Input-driven paths use ClampLane instead.
	ErrInvalidLane = errors.New("track: invalid lane")

	// ErrEmptySchedule is returned when a difficulty schedule has no steps.
	ErrEmptySchedule = errors.New("track: schedule needs at least one tier")

	// ErrUnsortedSchedule is returned when schedule steps are not ordered by start time.
	ErrUnsortedSchedule = errors.New("track: schedule steps must be sorted by start time")

	// ErrBadGeometry is returned for a pool that cannot form a ring.
	ErrBadGeometry = errors.New("track: need rows >= 2, lanes >= 1, a positive tile width and a non-negative recycle boundary")
)
