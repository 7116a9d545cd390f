package cli

import (
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/edaniels/golog"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"github.com/lcr-robotics/lilpanini/autonomous"
	"github.com/lcr-robotics/lilpanini/components/base/mecanum"
	"github.com/lcr-robotics/lilpanini/config"
	"github.com/lcr-robotics/lilpanini/logging"
	"github.com/lcr-robotics/lilpanini/robot"
)

func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}

// newLogger builds the command's logger; debug turns on debug logging in addition
// to the --debug flag.
func newLogger(c *cli.Context, debug bool) (golog.Logger, func() error) {
	debug = debug || c.Bool(flagDebug)
	path := c.String(flagLogFile)
	if path == "" {
		return logging.NewLogger("panini", debug), func() error { return nil }
	}
	file := logging.NewRotatingFile(path)
	return logging.NewFileLogger("panini", file, debug), file.Close
}

// RunAction is the corresponding Action for 'run'.
func RunAction(c *cli.Context) (err error) {
	cfg, err := config.Read(c.String(flagConfig))
	if err != nil {
		return err
	}
	logger, closeLog := newLogger(c, cfg.Debug)
	defer func() {
		err = multierr.Combine(err, closeLog())
	}()
	routine, err := config.ReadRoutine(c.String(flagRoutine))
	if err != nil {
		return err
	}

	r, err := robot.NewSimulated(cfg, nil, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := autonomous.NewRunner(r.Base, signalsFor(c), nil, cfg.PollInterval(), logger)
	report, err := runner.Run(ctx, *routine)
	if err != nil {
		return multierr.Combine(err, r.Close(c.Context))
	}

	printf(c.App.Writer, "%s", report.String())
	printf(c.App.Writer, "%s", summary(report))
	return r.Close(c.Context)
}

func summary(report *autonomous.Report) string {
	counts := map[mecanum.Outcome]int{}
	for _, o := range report.Outcomes() {
		counts[o]++
	}
	str := fmt.Sprintf("%s %s, %s, %s",
		report.Routine,
		color.GreenString("%d arrived", counts[mecanum.Arrived]),
		color.YellowString("%d timed out", counts[mecanum.TimedOut]),
		color.RedString("%d deactivated", counts[mecanum.Deactivated]),
	)
	if report.Completed() {
		return str
	}
	return str + " " + color.New(color.Bold, color.FgRed).Sprint("(stopped early)")
}

// ConvertAction is the corresponding Action for 'convert'.
func ConvertAction(c *cli.Context) error {
	cal := mecanum.DefaultCalibration()
	if path := c.String(flagConfig); path != "" {
		cfg, err := config.Read(path)
		if err != nil {
			return err
		}
		cal = cfg.Base.Calibration.WithDefaults()
	}

	value := c.Float64(flagValue)
	var counts int
	switch kind := c.String(flagKind); kind {
	case kindForward:
		counts = cal.ForwardCounts(value)
	case kindTurn:
		counts = cal.TurnCounts(value)
	case kindStrafe:
		counts = cal.StrafeCounts(value)
	default:
		return errors.Errorf("unknown kind %q, must be one of %s, %s, or %s", kind, kindForward, kindTurn, kindStrafe)
	}
	printf(c.App.Writer, "%d", counts)
	return nil
}

// ValidateAction is the corresponding Action for 'validate'.
func ValidateAction(c *cli.Context) error {
	cfgPath := c.String(flagConfig)
	if _, err := config.Read(cfgPath); err != nil {
		return errors.Wrapf(err, "invalid config %s", cfgPath)
	}
	printf(c.App.Writer, "%s %s", cfgPath, color.GreenString("ok"))

	routinePath := c.String(flagRoutine)
	if routinePath == "" {
		return nil
	}
	routine, err := config.ReadRoutine(routinePath)
	if err != nil {
		return err
	}
	if err := routine.Validate(routinePath, signalsFor(c)); err != nil {
		return err
	}
	printf(c.App.Writer, "%s %s (%d steps)", routinePath, color.GreenString("ok"), len(routine.Steps))
	return nil
}
