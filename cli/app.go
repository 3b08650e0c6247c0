// Package cli contains the worldcheck command line tool.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

const (
	// Flags.
	configFlag       = "config"
	debugFlag        = "debug"
	strictFlag       = "strict"
	maxObstaclesFlag = "max-obstacles"
	formatFlag       = "format"
	watchOnceFlag    = "once"
)

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:            "worldcheck",
		Usage:           "validate and inspect world description files",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    configFlag,
				Aliases: []string{"c"},
				Usage:   "load configuration from `FILE`",
			},
			&cli.BoolFlag{
				Name:    debugFlag,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  strictFlag,
				Usage: "treat warnings as errors",
			},
			&cli.IntFlag{
				Name:  maxObstaclesFlag,
				Usage: "reject worlds with more than `N` obstacles",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "load a world file and report warnings",
				ArgsUsage: "[world file]",
				Action:    ValidateAction,
			},
			{
				Name:      "proto",
				Usage:     "print a world file as a protobuf WorldState",
				ArgsUsage: "[world file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  formatFlag,
						Value: "json",
						Usage: "output format, one of json or text",
					},
				},
				Action: ProtoAction,
			},
			{
				Name:      "watch",
				Usage:     "validate a world file every time it changes",
				ArgsUsage: "[world file]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:   watchOnceFlag,
						Hidden: true,
						Usage:  "stop after the first change",
					},
				},
				Action: WatchAction,
			},
			{
				Name:   "version",
				Usage:  "print version info for this program",
				Action: VersionAction,
			},
		},
	}
}
