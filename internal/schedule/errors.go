package schedule

import "errors"

var (
	// ErrHoursNotConfigured returned when a therapist has no operating window
	// configured for a weekday. Callers treat this the same as a closed day,
	// never as a hard failure.
	ErrHoursNotConfigured = errors.New("schedule: operating hours not configured for weekday")

	// ErrInvalidDuration returned when the requested service duration is not positive
	ErrInvalidDuration = errors.New("schedule: service duration must be positive")

	// ErrInvalidStep returned when the grid step is not positive
	ErrInvalidStep = errors.New("schedule: step must be positive")

	// ErrInvalidLeadTime returned when the lead time is negative
	ErrInvalidLeadTime = errors.New("schedule: lead time must not be negative")

	// ErrInvalidWindow returned when an open operating window cannot be interpreted
	// (unparseable times or opensAt >= closesAt)
	ErrInvalidWindow = errors.New("schedule: invalid operating window")
)
