package autonomous

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"

	"github.com/lcr-robotics/lilpanini/components/base/mecanum"
	"github.com/lcr-robotics/lilpanini/host"
	"github.com/lcr-robotics/lilpanini/operation"
)

// Runner runs routines on a base, one at a time. Starting a routine cancels the one
// already running and waits for it to stop the wheels before driving.
type Runner struct {
	base         *mecanum.Base
	signals      Signals
	clock        clock.Clock
	pollInterval time.Duration
	logger       golog.Logger

	ops   *operation.Manager
	opMgr operation.SingleOperationManager

	mu       sync.Mutex
	operator *host.Switch
}

// NewRunner returns a runner for base. Between polls, motions that yield wait up to
// pollInterval. A nil clock uses the wall clock.
func NewRunner(
	base *mecanum.Base,
	signals Signals,
	clk clock.Clock,
	pollInterval time.Duration,
	logger golog.Logger,
) *Runner {
	if clk == nil {
		clk = clock.New()
	}
	return &Runner{
		base:         base,
		signals:      signals,
		clock:        clk,
		pollInterval: pollInterval,
		logger:       logger,
		ops:          operation.NewManager(logger),
	}
}

// Operations returns the routines currently running.
func (r *Runner) Operations() *operation.Manager {
	return r.ops
}

// Run executes routine step by step and reports how each step ended. It only returns an
// error when the routine is invalid. A step that times out does not stop the routine;
// once the host deactivates, the remaining steps are reported as deactivated without
// running. The wheels are stopped when Run returns, unless a newer routine has already
// taken them over.
func (r *Runner) Run(ctx context.Context, routine Routine) (*Report, error) {
	steps, err := routine.Build(r.signals)
	if err != nil {
		return nil, err
	}

	ctx, done := r.ops.Create(ctx, routine.Name, routine)
	defer done()
	op := operation.Get(ctx)

	ctx, finish := r.opMgr.New(ctx)
	defer finish()

	operator := host.NewSwitch(host.FromContext(ctx, r.pollInterval))
	r.mu.Lock()
	r.operator = operator
	r.mu.Unlock()

	var h host.Host = operator
	if routine.PeriodSec > 0 {
		h = host.WithDeadline(h, r.clock, seconds(routine.PeriodSec))
	}
	env := &Env{Base: r.base, Host: h, Clock: r.clock, Signals: r.signals}

	r.logger.Infow("starting routine", "routine", routine.Name, "id", op.ID, "steps", len(steps))
	report := &Report{ID: op.ID.String(), Routine: routine.Name}
	start := r.clock.Now()
	for i, step := range steps {
		res := StepResult{Index: i, Step: step.String(), Outcome: mecanum.Deactivated, Skipped: true}
		if h.IsActive() {
			op.SetStep(i, step.Type())
			stepStart := r.clock.Now()
			res.Outcome = step.Execute(env)
			res.Duration = r.clock.Since(stepStart)
			res.Skipped = false
			res.Counts = r.base.Positions()
			r.logger.Infow("step done", "step", i, "type", step.Type(), "outcome", res.Outcome, "duration", res.Duration)
		}
		report.Steps = append(report.Steps, res)
	}
	if !r.opMgr.Superseded(ctx) {
		r.base.Stop()
	}
	report.Elapsed = r.clock.Since(start)

	r.logger.Infow("routine done", "routine", routine.Name, "id", op.ID, "elapsed", report.Elapsed)
	return report, nil
}

// Stop switches off the running routine, if any. The step in progress stops the wheels
// and Run returns shortly after.
func (r *Runner) Stop() {
	r.mu.Lock()
	if r.operator != nil {
		r.operator.Deactivate()
	}
	r.mu.Unlock()
	r.opMgr.CancelRunning()
}

// Running reports whether a routine is running.
func (r *Runner) Running() bool {
	return r.opMgr.OpRunning()
}
