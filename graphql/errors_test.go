package graphql

import (
	"errors"
	"fmt"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestErrorMessages(t *testing.T) {
	Convey("Error", t, func() {
		Convey("Validation errors name the field", func() {
			err := NewValidationError("limit", "must be between 1 and 50")
			So(err.Error(), ShouldEqual, "validation error: limit: must be between 1 and 50")
		})

		Convey("Rate-limit errors report the waits and last advertised delay", func() {
			err := &Error{Kind: KindRateLimit, Attempts: 5, RetryAfter: 30 * time.Second}
			So(err.Error(), ShouldContainSubstring, "5 waits")
			So(err.Error(), ShouldContainSubstring, "30s")
		})

		Convey("Transient errors report attempts and the cause", func() {
			err := &Error{Kind: KindTransient, Attempts: 4, Err: errors.New("connection reset")}
			So(err.Error(), ShouldContainSubstring, "4 attempts")
			So(err.Error(), ShouldContainSubstring, "connection reset")
		})

		Convey("Fatal errors report status and body", func() {
			err := &Error{Kind: KindFatal, Status: 403, Body: "forbidden"}
			So(err.Error(), ShouldContainSubstring, "403")
			So(err.Error(), ShouldContainSubstring, "forbidden")
		})

		Convey("GraphQL errors join messages", func() {
			err := &Error{Kind: KindGraphQL, Messages: []string{"a", "b"}}
			So(err.Error(), ShouldEqual, "GraphQL error: a; b")
		})
	})
}

func TestErrorIdentification(t *testing.T) {
	Convey("AsError / IsKind", t, func() {
		Convey("Should find the tagged error through wrapping", func() {
			inner := NewValidationError("page", "must be positive")
			wrapped := fmt.Errorf("search anime: %w", inner)

			tagged, ok := AsError(wrapped)
			So(ok, ShouldBeTrue)
			So(tagged.Kind, ShouldEqual, KindValidation)
			So(tagged.Field, ShouldEqual, "page")

			So(IsKind(wrapped, KindValidation), ShouldBeTrue)
			So(IsKind(wrapped, KindFatal), ShouldBeFalse)
		})

		Convey("Should expose the underlying cause via errors.Is", func() {
			cause := errors.New("dial tcp: timeout")
			err := &Error{Kind: KindTransient, Err: cause}
			So(errors.Is(err, cause), ShouldBeTrue)
		})

		Convey("Should report false for foreign errors", func() {
			So(IsKind(errors.New("plain"), KindTransient), ShouldBeFalse)
			_, ok := AsError(errors.New("plain"))
			So(ok, ShouldBeFalse)
		})
	})
}

func TestErrorKindString(t *testing.T) {
	Convey("ErrorKind.String", t, func() {
		So(KindValidation.String(), ShouldEqual, "validation")
		So(KindRateLimit.String(), ShouldEqual, "rate limit")
		So(KindTransient.String(), ShouldEqual, "transient")
		So(KindFatal.String(), ShouldEqual, "fatal")
		So(KindGraphQL.String(), ShouldEqual, "graphql")
		So(KindDecode.String(), ShouldEqual, "decode")
		So(ErrorKind(0).String(), ShouldEqual, "unknown")
	})
}
