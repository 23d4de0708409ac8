package graphql

import "time"

// OutcomeKind classifies the result of exactly one HTTP attempt.
type OutcomeKind uint8

const (
	// OutcomeSuccess carries a 2xx response body ready for envelope decoding.
	OutcomeSuccess OutcomeKind = iota + 1
	// OutcomeRateLimited carries the wait advertised by an HTTP 429 response.
	OutcomeRateLimited
	// OutcomeTransient carries a failure plausibly resolved by retrying (network errors, 5xx).
	OutcomeTransient
	// OutcomeFatal carries a failure that retrying cannot resolve (4xx other than 429).
	OutcomeFatal
)

// Outcome is the classified result of a single attempt, produced by a
// Transport and consumed immediately by the Executor.
type Outcome struct {
	Kind       OutcomeKind
	Status     int
	Body       []byte
	RetryAfter time.Duration
	Cause      error
}

// Success wraps a parseable 2xx response.
func Success(status int, body []byte) Outcome {
	return Outcome{Kind: OutcomeSuccess, Status: status, Body: body}
}

// RateLimited wraps an HTTP 429 with the wait to honor before the next attempt.
func RateLimited(retryAfter time.Duration) Outcome {
	return Outcome{Kind: OutcomeRateLimited, RetryAfter: retryAfter}
}

// Transient wraps a recoverable failure.
func Transient(cause error) Outcome {
	return Outcome{Kind: OutcomeTransient, Cause: cause}
}

// Fatal wraps a non-retryable HTTP response.
func Fatal(status int, body []byte) Outcome {
	return Outcome{Kind: OutcomeFatal, Status: status, Body: body}
}

// FatalCause wraps a non-retryable local failure, such as an unserializable request.
func FatalCause(cause error) Outcome {
	return Outcome{Kind: OutcomeFatal, Cause: cause}
}
