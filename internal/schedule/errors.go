package schedule

import "errors"

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	// ErrInvalidTimeRange flags end <= start. Rejected at creation so the
	// time axis only ever sees well-ordered intervals.
	ErrInvalidTimeRange = errors.New("end time must be after start time")
	// ErrIncompleteTimeRange flags a start without an end or vice versa.
	ErrIncompleteTimeRange = errors.New("start and end time must be given together")
)
