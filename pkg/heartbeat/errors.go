package heartbeat

import "errors"

var (
	// ErrNilJob is returned by New when no job is given.
	ErrNilJob = errors.New("heartbeat job is nil")
	// ErrInvalidInterval is returned by New for a non-positive interval.
	ErrInvalidInterval = errors.New("heartbeat interval must be greater than zero")
	// ErrJobPanicked wraps a recovered panic from a job run.
	ErrJobPanicked = errors.New("heartbeat job panicked")
)
