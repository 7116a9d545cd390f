package autonomous

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/lcr-robotics/lilpanini/components/base/mecanum"
)

// StepResult is how one step of a routine ended.
type StepResult struct {
	Index    int
	Step     string
	Outcome  mecanum.Outcome
	Duration time.Duration
	// Counts are the wheel counts right after the step.
	Counts mecanum.Counts
	// Skipped is set for steps that never ran because the routine was deactivated.
	Skipped bool
}

// Report is the result of running a routine.
type Report struct {
	ID      string
	Routine string
	Steps   []StepResult
	Elapsed time.Duration
}

// Outcomes returns every step's outcome in order.
func (r *Report) Outcomes() []mecanum.Outcome {
	out := make([]mecanum.Outcome, 0, len(r.Steps))
	for _, s := range r.Steps {
		out = append(out, s.Outcome)
	}
	return out
}

// Completed reports whether every step ran, whatever its outcome.
func (r *Report) Completed() bool {
	for _, s := range r.Steps {
		if s.Skipped || s.Outcome == mecanum.Deactivated {
			return false
		}
	}
	return true
}

func (r *Report) String() string {
	t := table.NewWriter()
	t.SetTitle("%s (%s) in %s", r.Routine, r.ID, r.Elapsed.Round(time.Millisecond))
	header := table.Row{"#", "Step", "Outcome", "Duration"}
	for _, id := range mecanum.AllWheels {
		header = append(header, id.String())
	}
	t.AppendHeader(header)
	for _, s := range r.Steps {
		row := table.Row{s.Index, s.Step}
		if s.Skipped {
			row = append(row, "skipped", "-", "-", "-", "-", "-")
		} else {
			row = append(row, s.Outcome.String(), s.Duration.Round(time.Millisecond).String())
			for _, c := range s.Counts {
				row = append(row, c)
			}
		}
		t.AppendRow(row)
	}
	return t.Render()
}
