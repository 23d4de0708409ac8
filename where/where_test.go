package where

import (
	"os"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/shikigo-cli/shikigo/constant"
	"github.com/shikigo-cli/shikigo/filesystem"
)

func TestPaths(t *testing.T) {
	filesystem.SetMemMapFs()
	defer filesystem.SetOsFs()

	Convey("Path resolution", t, func() {
		Convey("Config honors the override variable", func() {
			So(os.Setenv(EnvConfigPath, "/custom/shikigo"), ShouldBeNil)
			defer func() { So(os.Unsetenv(EnvConfigPath), ShouldBeNil) }()

			So(Config(), ShouldEqual, "/custom/shikigo")
		})

		Convey("Config falls back to the user config directory", func() {
			So(os.Unsetenv(EnvConfigPath), ShouldBeNil)
			So(strings.HasSuffix(Config(), constant.Shikigo), ShouldBeTrue)
		})

		Convey("Logs nests under Config", func() {
			So(os.Setenv(EnvConfigPath, "/custom/shikigo"), ShouldBeNil)
			defer func() { So(os.Unsetenv(EnvConfigPath), ShouldBeNil) }()

			So(Logs(), ShouldEqual, "/custom/shikigo/logs")
		})

		Convey("Temp nests under the system temp directory", func() {
			So(strings.Contains(Temp(), constant.Shikigo), ShouldBeTrue)
		})
	})
}
