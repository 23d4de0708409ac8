package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestHelpers(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "result", "results"), ShouldEqual, "1 result")
		So(Quantify(0, "result", "results"), ShouldEqual, "0 results")
		So(Quantify(42, "result", "results"), ShouldEqual, "42 results")
	})

	Convey("Capitalize", t, func() {
		So(Capitalize(""), ShouldEqual, "")
		So(Capitalize("anime"), ShouldEqual, "Anime")
		So(Capitalize("Anime"), ShouldEqual, "Anime")
	})

	Convey("Max and Min", t, func() {
		So(Max(1, 3, 2), ShouldEqual, 3)
		So(Min(4, 3, 9), ShouldEqual, 3)
		So(Max[int](), ShouldEqual, 0)
	})
}
