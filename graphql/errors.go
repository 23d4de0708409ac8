package graphql

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrorKind tags every failure the client can produce. Callers branch on the
// kind instead of matching error strings.
type ErrorKind uint8

const (
	// KindValidation marks input that failed a local constraint; nothing was sent over the wire.
	KindValidation ErrorKind = iota + 1
	// KindRateLimit marks rate limiting that persisted past the engine's wait cap.
	KindRateLimit
	// KindTransient marks exhaustion of the retry budget on recoverable failures.
	KindTransient
	// KindFatal marks a non-retryable HTTP response.
	KindFatal
	// KindGraphQL marks structured errors returned by the remote service.
	KindGraphQL
	// KindDecode marks a response body that did not match the expected envelope or entity shape.
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindRateLimit:
		return "rate limit"
	case KindTransient:
		return "transient"
	case KindFatal:
		return "fatal"
	case KindGraphQL:
		return "graphql"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is the single tagged error type shared by every layer of the client.
// Only the fields relevant to the Kind are populated.
type Error struct {
	Kind ErrorKind

	// Field names the offending search parameter for validation failures.
	Field string
	// Reason describes validation and decode failures in human terms.
	Reason string
	// RetryAfter is the last advertised rate-limit wait.
	RetryAfter time.Duration
	// Attempts is the number of HTTP attempts performed before the call resolved.
	Attempts int
	// Status is the HTTP status code of a fatal response.
	Status int
	// Body is a snippet of the offending response body.
	Body string
	// Messages is the ordered list of GraphQL error messages, verbatim.
	Messages []string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindValidation:
		if e.Field != "" {
			return fmt.Sprintf("validation error: %s: %s", e.Field, e.Reason)
		}
		return fmt.Sprintf("validation error: %s", e.Reason)
	case KindRateLimit:
		return fmt.Sprintf("rate limit exceeded after %d waits (last retry-after %s)", e.Attempts, e.RetryAfter)
	case KindTransient:
		return fmt.Sprintf("request failed after %d attempts: %v", e.Attempts, e.Err)
	case KindFatal:
		if e.Err != nil {
			return fmt.Sprintf("request failed: %v", e.Err)
		}
		return fmt.Sprintf("API error (status %d): %s", e.Status, e.Body)
	case KindGraphQL:
		return fmt.Sprintf("GraphQL error: %s", strings.Join(e.Messages, "; "))
	case KindDecode:
		if e.Err != nil {
			return fmt.Sprintf("decode error: %s: %v", e.Reason, e.Err)
		}
		return fmt.Sprintf("decode error: %s", e.Reason)
	default:
		return fmt.Sprintf("unknown error: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError reports that the named parameter violated a local constraint.
func NewValidationError(field, reason string) *Error {
	return &Error{Kind: KindValidation, Field: field, Reason: reason}
}

// AsError unwraps err into the client's tagged error type.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err carries the given kind tag.
func IsKind(err error, kind ErrorKind) bool {
	if e, ok := AsError(err); ok {
		return e.Kind == kind
	}
	return false
}
