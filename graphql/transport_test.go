package graphql

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestHTTPTransportDo(t *testing.T) {
	Convey("HTTPTransport.Do", t, func() {
		req := NewRequest("{ animes { id } }", map[string]any{"limit": 1})

		Convey("Should classify a 2xx response as success", func() {
			var got *http.Request
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.Clone(context.Background())
				_, _ = w.Write([]byte(`{"data":{"animes":[]}}`))
			}))
			defer srv.Close()

			transport := NewHTTPTransport(HTTPTransportConfig{
				URL:     srv.URL,
				Headers: map[string]string{"Origin": "https://shikimori.one"},
			})
			out := transport.Do(context.Background(), req)

			So(out.Kind, ShouldEqual, OutcomeSuccess)
			So(out.Status, ShouldEqual, 200)
			So(string(out.Body), ShouldEqual, `{"data":{"animes":[]}}`)

			So(got.Method, ShouldEqual, http.MethodPost)
			So(got.Header.Get("Content-Type"), ShouldEqual, "application/json")
			So(got.Header.Get("Origin"), ShouldEqual, "https://shikimori.one")
		})

		Convey("Should classify 429 as rate limited", func() {
			Convey("With delay seconds in Retry-After", func() {
				srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.Header().Set("Retry-After", "7")
					w.WriteHeader(http.StatusTooManyRequests)
				}))
				defer srv.Close()

				out := NewHTTPTransport(HTTPTransportConfig{URL: srv.URL}).Do(context.Background(), req)
				So(out.Kind, ShouldEqual, OutcomeRateLimited)
				So(out.RetryAfter, ShouldEqual, 7*time.Second)
			})

			Convey("With the fallback wait when the header is absent", func() {
				srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusTooManyRequests)
				}))
				defer srv.Close()

				transport := NewHTTPTransport(HTTPTransportConfig{
					URL:               srv.URL,
					RetryAfterDefault: 3 * time.Second,
				})
				out := transport.Do(context.Background(), req)
				So(out.Kind, ShouldEqual, OutcomeRateLimited)
				So(out.RetryAfter, ShouldEqual, 3*time.Second)
			})
		})

		Convey("Should classify 5xx as transient", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			}))
			defer srv.Close()

			out := NewHTTPTransport(HTTPTransportConfig{URL: srv.URL}).Do(context.Background(), req)
			So(out.Kind, ShouldEqual, OutcomeTransient)
			So(out.Cause, ShouldNotBeNil)
		})

		Convey("Should classify a connection failure as transient", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
			srv.Close()

			out := NewHTTPTransport(HTTPTransportConfig{URL: srv.URL}).Do(context.Background(), req)
			So(out.Kind, ShouldEqual, OutcomeTransient)
			So(out.Cause, ShouldNotBeNil)
		})

		Convey("Should classify other 4xx as fatal", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
			}))
			defer srv.Close()

			out := NewHTTPTransport(HTTPTransportConfig{URL: srv.URL}).Do(context.Background(), req)
			So(out.Kind, ShouldEqual, OutcomeFatal)
			So(out.Status, ShouldEqual, 401)
			So(string(out.Body), ShouldContainSubstring, "unauthorized")
		})

		Convey("Should time out a hanging attempt", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				// Drain the body so the server resumes its background read
				// and can observe the client disconnect; otherwise the
				// request context is never canceled and srv.Close hangs.
				_, _ = io.Copy(io.Discard, r.Body)
				<-r.Context().Done()
			}))
			defer srv.Close()

			transport := NewHTTPTransport(HTTPTransportConfig{
				URL:     srv.URL,
				Timeout: 50 * time.Millisecond,
			})
			out := transport.Do(context.Background(), req)
			So(out.Kind, ShouldEqual, OutcomeTransient)
		})
	})
}

func TestRetryAfter(t *testing.T) {
	Convey("retryAfter", t, func() {
		fallback := 5 * time.Second

		Convey("Should parse delay seconds", func() {
			h := http.Header{}
			h.Set("Retry-After", "12")
			So(retryAfter(h, fallback), ShouldEqual, 12*time.Second)
		})

		Convey("Should parse an HTTP date", func() {
			h := http.Header{}
			h.Set("Retry-After", time.Now().Add(10*time.Second).UTC().Format(http.TimeFormat))
			wait := retryAfter(h, fallback)
			So(wait, ShouldBeGreaterThan, 5*time.Second)
			So(wait, ShouldBeLessThanOrEqualTo, 10*time.Second)
		})

		Convey("Should fall back on a date in the past", func() {
			h := http.Header{}
			h.Set("Retry-After", time.Now().Add(-time.Minute).UTC().Format(http.TimeFormat))
			So(retryAfter(h, fallback), ShouldEqual, fallback)
		})

		Convey("Should fall back on garbage", func() {
			h := http.Header{}
			h.Set("Retry-After", "soon")
			So(retryAfter(h, fallback), ShouldEqual, fallback)
		})

		Convey("Should fall back when absent", func() {
			So(retryAfter(http.Header{}, fallback), ShouldEqual, fallback)
		})
	})
}
