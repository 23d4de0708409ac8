package graphql

import (
	"context"
	"time"

	"github.com/shikigo-cli/shikigo/log"
)

// Engine defaults, matching the documented client behavior: up to 3 retries
// after the initial attempt, 1s→2s→4s backoff capped at 30s, and rate-limit
// waits honored unconditionally but individually capped at 60s with at most
// 5 consecutive waits before the call resolves to a rate-limit error.
const (
	DefaultMaxRetries        = 3
	DefaultBaseBackoff       = time.Second
	DefaultMaxBackoff        = 30 * time.Second
	DefaultMaxRateLimitWait  = time.Minute
	DefaultMaxRateLimitWaits = 5
)

// engineState enumerates the phases of one call through the engine.
// Succeeded and Exhausted are expressed as returns, so only the states with
// outgoing transitions are represented.
type engineState uint8

const (
	stateAttempting engineState = iota
	stateWaitingBackoff
	stateWaitingRateLimit
)

// ExecutorConfig tunes the retry policy. Durations and counts at their zero
// value take the package defaults; MaxRetries counts additional attempts
// after the first, so 0 disables retrying (use a negative value for the
// default).
type ExecutorConfig struct {
	MaxRetries        int
	BaseBackoff       time.Duration
	MaxBackoff        time.Duration
	MaxRateLimitWait  time.Duration
	MaxRateLimitWaits int
}

// Executor drives repeated Transport attempts for one logical call under the
// retry/backoff/rate-limit policy. It holds no per-call state; concurrent
// calls through one Executor are fully independent.
type Executor struct {
	transport         Transport
	maxRetries        int
	baseBackoff       time.Duration
	maxBackoff        time.Duration
	maxRateLimitWait  time.Duration
	maxRateLimitWaits int
}

// retryState is scoped to a single call: created at call start, mutated
// between attempts, gone when the call resolves.
type retryState struct {
	attempt        int
	rateLimitWaits int
	lastRetryAfter time.Duration
}

// NewExecutor builds an engine over the given transport.
func NewExecutor(transport Transport, cfg ExecutorConfig) *Executor {
	e := &Executor{
		transport:         transport,
		maxRetries:        cfg.MaxRetries,
		baseBackoff:       cfg.BaseBackoff,
		maxBackoff:        cfg.MaxBackoff,
		maxRateLimitWait:  cfg.MaxRateLimitWait,
		maxRateLimitWaits: cfg.MaxRateLimitWaits,
	}
	if e.maxRetries < 0 {
		e.maxRetries = DefaultMaxRetries
	}
	if e.baseBackoff <= 0 {
		e.baseBackoff = DefaultBaseBackoff
	}
	if e.maxBackoff <= 0 {
		e.maxBackoff = DefaultMaxBackoff
	}
	if e.maxRateLimitWait <= 0 {
		e.maxRateLimitWait = DefaultMaxRateLimitWait
	}
	if e.maxRateLimitWaits <= 0 {
		e.maxRateLimitWaits = DefaultMaxRateLimitWaits
	}
	return e
}

// Execute resolves one logical call: it performs strictly sequential
// Transport attempts, suspending between them according to the state
// machine, and returns the first successful raw body. Rate-limit waits do
// not consume the transient-retry budget. Cancelling ctx during any wait
// stops the timer immediately and prevents further attempts.
func (e *Executor) Execute(ctx context.Context, req Request) ([]byte, error) {
	var (
		st   retryState
		cur  = stateAttempting
		wait time.Duration
	)

	for {
		switch cur {
		case stateAttempting:
			if err := ctx.Err(); err != nil {
				return nil, &Error{Kind: KindTransient, Attempts: st.attempt, Err: err}
			}

			out := e.transport.Do(ctx, req)
			switch out.Kind {
			case OutcomeSuccess:
				return out.Body, nil

			case OutcomeRateLimited:
				st.lastRetryAfter = out.RetryAfter
				st.rateLimitWaits++
				if st.rateLimitWaits > e.maxRateLimitWaits {
					return nil, &Error{
						Kind:       KindRateLimit,
						Attempts:   st.rateLimitWaits - 1,
						RetryAfter: st.lastRetryAfter,
					}
				}
				wait = minDuration(out.RetryAfter, e.maxRateLimitWait)
				log.Debugf("rate limited, waiting %s (wait %d/%d)", wait, st.rateLimitWaits, e.maxRateLimitWaits)
				cur = stateWaitingRateLimit

			case OutcomeTransient:
				st.rateLimitWaits = 0
				if st.attempt >= e.maxRetries {
					log.Errorf("giving up after %d attempts: %v", st.attempt+1, out.Cause)
					return nil, &Error{Kind: KindTransient, Attempts: st.attempt + 1, Err: out.Cause}
				}
				st.attempt++
				wait = e.backoff(st.attempt)
				log.Debugf("transient failure (%v), retrying in %s (attempt %d/%d)", out.Cause, wait, st.attempt, e.maxRetries)
				cur = stateWaitingBackoff

			case OutcomeFatal:
				if out.Cause != nil {
					return nil, &Error{Kind: KindFatal, Err: out.Cause}
				}
				return nil, &Error{Kind: KindFatal, Status: out.Status, Body: snippet(out.Body)}
			}

		case stateWaitingBackoff, stateWaitingRateLimit:
			if err := e.sleep(ctx, wait); err != nil {
				return nil, &Error{Kind: KindTransient, Attempts: st.attempt, Err: err}
			}
			cur = stateAttempting
		}
	}
}

// backoff computes base * 2^(attempt-1), capped.
func (e *Executor) backoff(attempt int) time.Duration {
	shift := attempt - 1
	if shift > 30 {
		return e.maxBackoff
	}
	d := e.baseBackoff << shift
	if d > e.maxBackoff {
		return e.maxBackoff
	}
	return d
}

// sleep suspends for d, releasing the timer on every exit path.
func (e *Executor) sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// snippet truncates a response body for error reporting.
func snippet(body []byte) string {
	const max = 256
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
