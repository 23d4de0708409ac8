package graphql

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

// scriptedTransport replays a fixed sequence of outcomes, repeating the last
// one forever, and records how many attempts the executor performed.
type scriptedTransport struct {
	outcomes []Outcome
	calls    int
}

func (s *scriptedTransport) Do(_ context.Context, _ Request) Outcome {
	i := s.calls
	if i >= len(s.outcomes) {
		i = len(s.outcomes) - 1
	}
	s.calls++
	return s.outcomes[i]
}

func fastConfig() ExecutorConfig {
	return ExecutorConfig{
		MaxRetries:  3,
		BaseBackoff: time.Millisecond,
		MaxBackoff:  10 * time.Millisecond,
	}
}

func TestExecute(t *testing.T) {
	Convey("Execute", t, func() {
		req := NewRequest("{ animes { id } }", nil)

		Convey("Should return the body after a single successful attempt", func() {
			transport := &scriptedTransport{outcomes: []Outcome{
				Success(200, []byte(`{"data":{}}`)),
			}}
			body, err := NewExecutor(transport, fastConfig()).Execute(context.Background(), req)

			So(err, ShouldBeNil)
			So(string(body), ShouldEqual, `{"data":{}}`)
			So(transport.calls, ShouldEqual, 1)
		})

		Convey("Should wait out a rate limit and then succeed", func() {
			transport := &scriptedTransport{outcomes: []Outcome{
				RateLimited(time.Millisecond),
				Success(200, []byte(`{"data":{}}`)),
			}}
			body, err := NewExecutor(transport, fastConfig()).Execute(context.Background(), req)

			So(err, ShouldBeNil)
			So(string(body), ShouldEqual, `{"data":{}}`)
			So(transport.calls, ShouldEqual, 2)
		})

		Convey("Should not spend the retry budget on rate-limit waits", func() {
			transport := &scriptedTransport{outcomes: []Outcome{
				Transient(errors.New("boom")),
				RateLimited(time.Millisecond),
				Transient(errors.New("boom")),
				RateLimited(time.Millisecond),
				Transient(errors.New("boom")),
				Success(200, []byte(`{"data":{}}`)),
			}}
			body, err := NewExecutor(transport, fastConfig()).Execute(context.Background(), req)

			So(err, ShouldBeNil)
			So(string(body), ShouldEqual, `{"data":{}}`)
			So(transport.calls, ShouldEqual, 6)
		})

		Convey("Should exhaust the retry budget on persistent transient failures", func() {
			cause := errors.New("connection reset")
			transport := &scriptedTransport{outcomes: []Outcome{Transient(cause)}}
			cfg := fastConfig()
			cfg.MaxRetries = 2

			_, err := NewExecutor(transport, cfg).Execute(context.Background(), req)

			So(err, ShouldNotBeNil)
			So(transport.calls, ShouldEqual, 3)

			tagged, ok := AsError(err)
			So(ok, ShouldBeTrue)
			So(tagged.Kind, ShouldEqual, KindTransient)
			So(tagged.Attempts, ShouldEqual, 3)
			So(errors.Is(err, cause), ShouldBeTrue)
		})

		Convey("Should give up after too many consecutive rate limits", func() {
			transport := &scriptedTransport{outcomes: []Outcome{
				RateLimited(time.Millisecond),
			}}
			cfg := fastConfig()
			cfg.MaxRateLimitWaits = 2

			_, err := NewExecutor(transport, cfg).Execute(context.Background(), req)

			So(err, ShouldNotBeNil)
			So(transport.calls, ShouldEqual, 3)

			tagged, ok := AsError(err)
			So(ok, ShouldBeTrue)
			So(tagged.Kind, ShouldEqual, KindRateLimit)
			So(tagged.Attempts, ShouldEqual, 2)
			So(tagged.RetryAfter, ShouldEqual, time.Millisecond)
		})

		Convey("Should clamp an oversized advertised wait to the per-wait cap", func() {
			transport := &scriptedTransport{outcomes: []Outcome{
				RateLimited(time.Hour),
				Success(200, []byte(`{"data":{}}`)),
			}}
			cfg := fastConfig()
			cfg.MaxRateLimitWait = 5 * time.Millisecond

			start := time.Now()
			body, err := NewExecutor(transport, cfg).Execute(context.Background(), req)

			So(err, ShouldBeNil)
			So(string(body), ShouldEqual, `{"data":{}}`)
			So(transport.calls, ShouldEqual, 2)
			So(time.Since(start), ShouldBeLessThan, time.Second)
		})

		Convey("Should reset the consecutive rate-limit counter on other outcomes", func() {
			transport := &scriptedTransport{outcomes: []Outcome{
				RateLimited(time.Millisecond),
				Transient(errors.New("boom")),
				RateLimited(time.Millisecond),
				Transient(errors.New("boom")),
				RateLimited(time.Millisecond),
				Success(200, []byte(`{"data":{}}`)),
			}}
			cfg := fastConfig()
			cfg.MaxRateLimitWaits = 1

			_, err := NewExecutor(transport, cfg).Execute(context.Background(), req)

			So(err, ShouldBeNil)
			So(transport.calls, ShouldEqual, 6)
		})

		Convey("Should never retry a fatal response", func() {
			transport := &scriptedTransport{outcomes: []Outcome{
				Fatal(422, []byte(`{"error":"unprocessable"}`)),
			}}
			_, err := NewExecutor(transport, fastConfig()).Execute(context.Background(), req)

			So(err, ShouldNotBeNil)
			So(transport.calls, ShouldEqual, 1)

			tagged, ok := AsError(err)
			So(ok, ShouldBeTrue)
			So(tagged.Kind, ShouldEqual, KindFatal)
			So(tagged.Status, ShouldEqual, 422)
			So(tagged.Body, ShouldContainSubstring, "unprocessable")
		})

		Convey("Should stop waiting when the context is cancelled", func() {
			transport := &scriptedTransport{outcomes: []Outcome{
				Transient(errors.New("boom")),
			}}
			cfg := fastConfig()
			cfg.BaseBackoff = time.Hour
			cfg.MaxBackoff = time.Hour

			ctx, cancel := context.WithCancel(context.Background())
			go func() {
				time.Sleep(20 * time.Millisecond)
				cancel()
			}()

			start := time.Now()
			_, err := NewExecutor(transport, cfg).Execute(ctx, req)

			So(err, ShouldNotBeNil)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
			So(time.Since(start), ShouldBeLessThan, time.Second)
			So(transport.calls, ShouldEqual, 1)
		})

		Convey("Should not attempt at all when the context is already cancelled", func() {
			transport := &scriptedTransport{outcomes: []Outcome{
				Success(200, []byte(`{"data":{}}`)),
			}}
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := NewExecutor(transport, fastConfig()).Execute(ctx, req)

			So(err, ShouldNotBeNil)
			So(transport.calls, ShouldEqual, 0)
		})
	})
}

func TestBackoff(t *testing.T) {
	Convey("backoff", t, func() {
		e := NewExecutor(nil, ExecutorConfig{
			BaseBackoff: time.Second,
			MaxBackoff:  30 * time.Second,
		})

		Convey("Should double per attempt", func() {
			So(e.backoff(1), ShouldEqual, time.Second)
			So(e.backoff(2), ShouldEqual, 2*time.Second)
			So(e.backoff(3), ShouldEqual, 4*time.Second)
		})

		Convey("Should cap at the maximum", func() {
			So(e.backoff(6), ShouldEqual, 30*time.Second)
			So(e.backoff(40), ShouldEqual, 30*time.Second)
		})
	})
}

func TestNewExecutorDefaults(t *testing.T) {
	Convey("NewExecutor", t, func() {
		Convey("Should fall back to package defaults", func() {
			e := NewExecutor(nil, ExecutorConfig{MaxRetries: -1})
			So(e.maxRetries, ShouldEqual, DefaultMaxRetries)
			So(e.baseBackoff, ShouldEqual, DefaultBaseBackoff)
			So(e.maxBackoff, ShouldEqual, DefaultMaxBackoff)
			So(e.maxRateLimitWait, ShouldEqual, DefaultMaxRateLimitWait)
			So(e.maxRateLimitWaits, ShouldEqual, DefaultMaxRateLimitWaits)
		})

		Convey("Should allow disabling retries entirely", func() {
			transport := &scriptedTransport{outcomes: []Outcome{
				Transient(errors.New("boom")),
			}}
			e := NewExecutor(transport, ExecutorConfig{MaxRetries: 0, BaseBackoff: time.Millisecond})

			_, err := e.Execute(context.Background(), NewRequest("{}", nil))
			So(err, ShouldNotBeNil)
			So(transport.calls, ShouldEqual, 1)
		})
	})
}
