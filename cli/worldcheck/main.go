// Package main is the worldcheck command itself.
package main

import (
	"os"

	"github.com/robo-bootcamp/gobotic/cli"
	"github.com/robo-bootcamp/gobotic/logging"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		logging.NewLogger("worldcheck", os.Stderr).Error(err)
		os.Exit(1)
	}
}
