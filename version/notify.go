package version

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/shikigo-cli/shikigo/color"
	"github.com/shikigo-cli/shikigo/constant"
	"github.com/shikigo-cli/shikigo/key"
	"github.com/shikigo-cli/shikigo/style"
	"github.com/shikigo-cli/shikigo/util"
)

// Notify prints an update notice when a newer release has been published.
// Failures stay silent; an unreachable release registry should never get in
// the way of the command that ran.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable("Checking for a newer release...")
	latest, err := Latest()
	erase()
	if err != nil {
		return
	}
	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/shikigo-cli/shikigo/releases/tag/v"+latest),
	)
}
