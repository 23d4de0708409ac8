// Package main is the entry point for the shikigo application.
package main

import (
	"github.com/samber/lo"

	"github.com/shikigo-cli/shikigo/cmd"
	"github.com/shikigo-cli/shikigo/config"
	"github.com/shikigo-cli/shikigo/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
