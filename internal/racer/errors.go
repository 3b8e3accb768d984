package racer

import "errors"

var (
	// ErrEngineNotFound means the configured racer binary could not be
	// located or executed. Callers surface this to the user through their
	// own channel; it is never folded into an empty result.
	ErrEngineNotFound = errors.New("racer executable not found")

	// ErrTimeout means the racer process outlived the invocation deadline
	// and was killed.
	ErrTimeout = errors.New("racer invocation timed out")
)
