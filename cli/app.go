// Package cli contains the panini command line interface.
package cli

import (
	"io"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/lcr-robotics/lilpanini/autonomous"
)

const (
	// Flags.
	flagConfig      = "config"
	flagRoutine     = "routine"
	flagDebug       = "debug"
	flagLogFile     = "log-file"
	flagSignal      = "signal"
	flagDetectAfter = "detect-after"
	flagKind        = "kind"
	flagValue       = "value"

	kindForward = "forward"
	kindTurn    = "turn"
	kindStrafe  = "strafe"

	defaultSignal      = "skystone"
	defaultDetectAfter = 2 * time.Second
)

var app = &cli.App{
	Name:            "panini",
	Usage:           "drive the Lil' Panini mecanum robot through autonomous routines",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    flagDebug,
			Aliases: []string{"vvv"},
			Usage:   "enable debug logging",
		},
		&cli.StringFlag{
			Name:  flagLogFile,
			Usage: "also write JSON logs to `FILE`, rotated by size",
		},
	},
	Commands: []*cli.Command{
		{
			Name:      "run",
			Usage:     "run a routine on the simulated robot",
			UsageText: "panini run --config <robot.json5> --routine <routine.json5>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagConfig,
					Aliases:  []string{"c"},
					Usage:    "load robot configuration from `FILE`",
					Required: true,
				},
				&cli.StringFlag{
					Name:     flagRoutine,
					Aliases:  []string{"r"},
					Usage:    "load the routine from `FILE`",
					Required: true,
				},
				&cli.StringFlag{
					Name:  flagSignal,
					Usage: "name of the simulated detection signal",
					Value: defaultSignal,
				},
				&cli.DurationFlag{
					Name:  flagDetectAfter,
					Usage: "how long a seek runs before the simulated signal fires",
					Value: defaultDetectAfter,
				},
			},
			Action: RunAction,
		},
		{
			Name:      "convert",
			Usage:     "convert a distance or angle into encoder counts",
			UsageText: "panini convert --kind forward|turn|strafe --value <inches or degrees>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagKind,
					Usage:    "one of forward, turn, or strafe",
					Required: true,
				},
				&cli.Float64Flag{
					Name:     flagValue,
					Usage:    "inches for forward and strafe, degrees for turn",
					Required: true,
				},
				&cli.StringFlag{
					Name:    flagConfig,
					Aliases: []string{"c"},
					Usage:   "use the calibration in `FILE` instead of the defaults",
				},
			},
			Action: ConvertAction,
		},
		{
			Name:  "validate",
			Usage: "check a robot configuration and optionally a routine",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagConfig,
					Aliases:  []string{"c"},
					Usage:    "robot configuration `FILE`",
					Required: true,
				},
				&cli.StringFlag{
					Name:    flagRoutine,
					Aliases: []string{"r"},
					Usage:   "routine `FILE`",
				},
				&cli.StringFlag{
					Name:  flagSignal,
					Usage: "name of the detection signal routines may wait on",
					Value: defaultSignal,
				},
			},
			Action: ValidateAction,
		},
	},
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	app.Writer = out
	app.ErrWriter = errOut
	return app
}

// signalsFor returns the signals a routine run from the command line can use.
func signalsFor(c *cli.Context) autonomous.Signals {
	return autonomous.Signals{
		c.String(flagSignal): autonomous.NewTimerSignal(nil, c.Duration(flagDetectAfter)),
	}
}
