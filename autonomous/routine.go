// Package autonomous sequences motions of a mecanum base into routines, the way an
// autonomous period of a match is scripted.
package autonomous

import (
	"fmt"

	"github.com/pkg/errors"
	"go.viam.com/utils"
)

// Routine is an ordered list of steps.
type Routine struct {
	Name string `json:"name"`
	// PeriodSec bounds the whole routine, like the autonomous period of a match. Zero
	// means unbounded.
	PeriodSec float64      `json:"period_sec,omitempty"`
	Steps     []StepConfig `json:"steps"`
}

// Validate ensures all parts of the routine are valid against the given signals.
func (r *Routine) Validate(path string, signals Signals) error {
	_, err := r.Build(signals)
	if err != nil {
		return utils.NewConfigValidationError(path, err)
	}
	return nil
}

// Build decodes and validates every step.
func (r *Routine) Build(signals Signals) ([]Step, error) {
	if r.Name == "" {
		return nil, utils.NewConfigValidationFieldRequiredError("routine", "name")
	}
	if r.PeriodSec < 0 {
		return nil, errors.Errorf("period_sec must not be negative, got %v", r.PeriodSec)
	}
	steps := make([]Step, 0, len(r.Steps))
	for i, cfg := range r.Steps {
		step, err := DecodeStep(cfg)
		if err != nil {
			return nil, errors.Wrap(err, stepPath(i))
		}
		if err := step.Validate(signals); err != nil {
			return nil, errors.Wrapf(err, "%s (%s)", stepPath(i), cfg.Type)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func stepPath(i int) string {
	return fmt.Sprintf("steps.%d", i)
}
