package ai

import "errors"

var (
	// ErrUnavailable indicates the completion service could not be reached
	// or answered with a server error.
	ErrUnavailable = errors.New("completion service unavailable")

	// ErrRateLimited indicates the service answered 429. The caller may
	// retry with backoff; the client itself never retries.
	ErrRateLimited = errors.New("completion service rate limited")

	// ErrUnauthorized indicates the API key was rejected.
	ErrUnauthorized = errors.New("completion service rejected credentials")

	// ErrInvalidOutput indicates the response text could not be parsed
	// into a usable study plan.
	ErrInvalidOutput = errors.New("invalid completion output")
)
