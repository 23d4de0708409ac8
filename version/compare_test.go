package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		Convey("Should order semantic versions", func() {
			result, err := Compare("1.2.3", "1.2.2")
			So(err, ShouldBeNil)
			So(result, ShouldEqual, 1)

			result, err = Compare("1.2.3", "1.3.0")
			So(err, ShouldBeNil)
			So(result, ShouldEqual, -1)

			result, err = Compare("2.0.0", "2.0.0")
			So(err, ShouldBeNil)
			So(result, ShouldEqual, 0)
		})

		Convey("Should tolerate a v prefix", func() {
			result, err := Compare("v1.0.1", "1.0.0")
			So(err, ShouldBeNil)
			So(result, ShouldEqual, 1)
		})

		Convey("Should reject malformed versions", func() {
			_, err := Compare("not-a-version", "1.0.0")
			So(err, ShouldNotBeNil)
		})
	})
}
