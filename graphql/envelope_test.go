package graphql

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDecodeEnvelope(t *testing.T) {
	Convey("DecodeEnvelope", t, func() {
		Convey("Should return the raw data payload", func() {
			data, err := DecodeEnvelope([]byte(`{"data":{"animes":[{"id":"1"}]}}`))
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{"animes":[{"id":"1"}]}`)
		})

		Convey("Should surface GraphQL errors in order", func() {
			body := []byte(`{"data":null,"errors":[{"message":"first"},{"message":"second"}]}`)
			_, err := DecodeEnvelope(body)

			tagged, ok := AsError(err)
			So(ok, ShouldBeTrue)
			So(tagged.Kind, ShouldEqual, KindGraphQL)
			So(tagged.Messages, ShouldResemble, []string{"first", "second"})
		})

		Convey("Should discard partial data when errors are present", func() {
			body := []byte(`{"data":{"animes":[]},"errors":[{"message":"field deprecated"}]}`)
			data, err := DecodeEnvelope(body)

			So(data, ShouldBeNil)
			So(IsKind(err, KindGraphQL), ShouldBeTrue)
		})

		Convey("Should reject a body that is not JSON", func() {
			_, err := DecodeEnvelope([]byte(`<html>502 Bad Gateway</html>`))
			So(IsKind(err, KindDecode), ShouldBeTrue)
		})

		Convey("Should reject null data without errors", func() {
			_, err := DecodeEnvelope([]byte(`{"data":null}`))
			So(IsKind(err, KindDecode), ShouldBeTrue)
		})

		Convey("Should reject an empty object", func() {
			_, err := DecodeEnvelope([]byte(`{}`))
			So(IsKind(err, KindDecode), ShouldBeTrue)
		})
	})
}

func TestRequestBody(t *testing.T) {
	Convey("Request.Body", t, func() {
		Convey("Should render query and variables", func() {
			req := NewRequest("query { animes }", map[string]any{"limit": 5})
			body, err := req.Body()
			So(err, ShouldBeNil)
			So(string(body), ShouldEqual, `{"query":"query { animes }","variables":{"limit":5}}`)
		})

		Convey("Should omit the variables key when empty", func() {
			body, err := NewRequest("query { animes }", nil).Body()
			So(err, ShouldBeNil)
			So(string(body), ShouldEqual, `{"query":"query { animes }"}`)
		})
	})
}
