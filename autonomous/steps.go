package autonomous

import (
	"fmt"
	"math"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"

	"github.com/lcr-robotics/lilpanini/components/base/mecanum"
	"github.com/lcr-robotics/lilpanini/host"
)

// ErrUnknownStep is returned for a step type the sequencer does not know.
var ErrUnknownStep = errors.New("unknown step type")

// The step types a routine can contain.
const (
	StepDrive  = "drive"
	StepTurn   = "turn"
	StepStrafe = "strafe"
	StepStop   = "stop"
	StepPause  = "pause"
	StepSeek   = "seek"
)

// Env is what a step executes against.
type Env struct {
	Base    *mecanum.Base
	Host    host.Host
	Clock   clock.Clock
	Signals Signals
}

// A Step is one blocking instruction of a routine.
type Step interface {
	fmt.Stringer
	// Type is the step's type, e.g. "drive".
	Type() string
	// Validate checks the step's attributes against the signals the routine can use.
	Validate(signals Signals) error
	// Execute blocks until the step reaches its terminal outcome.
	Execute(env *Env) mecanum.Outcome
}

// StepConfig is a step as written in a routine file.
type StepConfig struct {
	Type       string                 `json:"type"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// DecodeStep turns a step config into a typed step. Unknown attributes are an error.
func DecodeStep(cfg StepConfig) (Step, error) {
	var step Step
	switch cfg.Type {
	case StepDrive:
		step = &DriveStep{}
	case StepTurn:
		step = &TurnStep{}
	case StepStrafe:
		step = &StrafeStep{}
	case StepStop:
		step = &StopStep{}
	case StepPause:
		step = &PauseStep{}
	case StepSeek:
		step = &SeekStep{}
	default:
		return nil, errors.Wrapf(ErrUnknownStep, "%q", cfg.Type)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           step,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(cfg.Attributes); err != nil {
		return nil, errors.Wrapf(err, "error decoding %s attributes", cfg.Type)
	}
	return step, nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func validateSpeed(speed float64) error {
	if math.IsNaN(speed) || speed < -1 || speed > 1 {
		return errors.Errorf("speed must be between -1 and 1, got %v", speed)
	}
	return nil
}

// maxSeconds is the longest span a time.Duration holds.
var maxSeconds = float64(math.MaxInt64) / float64(time.Second)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validateTimeout(timeoutSec float64) error {
	if !finite(timeoutSec) || timeoutSec <= 0 || timeoutSec >= maxSeconds {
		return errors.Errorf("timeout_sec must be positive and finite, got %v", timeoutSec)
	}
	return nil
}

func validateDistance(distanceIn float64) error {
	if !finite(distanceIn) || distanceIn < 0 {
		return errors.Errorf("distance_in must be finite and not negative, got %v", distanceIn)
	}
	return nil
}

func validateAngle(angleDeg float64) error {
	if !finite(angleDeg) {
		return errors.Errorf("angle_deg must be finite, got %v", angleDeg)
	}
	return nil
}

// DriveStep drives straight. A negative speed drives towards higher counts.
type DriveStep struct {
	Speed      float64 `json:"speed"`
	DistanceIn float64 `json:"distance_in"`
	TimeoutSec float64 `json:"timeout_sec"`
}

// Type returns "drive".
func (s *DriveStep) Type() string { return StepDrive }

func (s *DriveStep) String() string {
	return fmt.Sprintf("drive %.2f for %.1fin", s.Speed, s.DistanceIn)
}

// Validate ensures all parts of the step are valid.
func (s *DriveStep) Validate(Signals) error {
	if err := validateSpeed(s.Speed); err != nil {
		return err
	}
	if err := validateDistance(s.DistanceIn); err != nil {
		return err
	}
	return validateTimeout(s.TimeoutSec)
}

// Execute drives the base.
func (s *DriveStep) Execute(env *Env) mecanum.Outcome {
	return env.Base.Drive(env.Host, s.Speed, s.DistanceIn, seconds(s.TimeoutSec))
}

// TurnStep turns in place, counterclockwise for a positive angle.
type TurnStep struct {
	Speed      float64 `json:"speed"`
	AngleDeg   float64 `json:"angle_deg"`
	TimeoutSec float64 `json:"timeout_sec"`
}

// Type returns "turn".
func (s *TurnStep) Type() string { return StepTurn }

func (s *TurnStep) String() string {
	return fmt.Sprintf("turn %.2f by %.1fdeg", s.Speed, s.AngleDeg)
}

// Validate ensures all parts of the step are valid.
func (s *TurnStep) Validate(Signals) error {
	if err := validateSpeed(s.Speed); err != nil {
		return err
	}
	if err := validateAngle(s.AngleDeg); err != nil {
		return err
	}
	return validateTimeout(s.TimeoutSec)
}

// Execute turns the base.
func (s *TurnStep) Execute(env *Env) mecanum.Outcome {
	return env.Base.Turn(env.Host, s.Speed, s.AngleDeg, seconds(s.TimeoutSec))
}

// StrafeStep moves sideways.
type StrafeStep struct {
	Direction  string  `json:"direction"`
	Speed      float64 `json:"speed"`
	DistanceIn float64 `json:"distance_in"`
	TimeoutSec float64 `json:"timeout_sec"`

	dir mecanum.Direction
}

// Type returns "strafe".
func (s *StrafeStep) Type() string { return StepStrafe }

func (s *StrafeStep) String() string {
	return fmt.Sprintf("strafe %s %.2f for %.1fin", s.Direction, s.Speed, s.DistanceIn)
}

// Validate ensures all parts of the step are valid.
func (s *StrafeStep) Validate(Signals) error {
	dir, err := mecanum.ParseDirection(s.Direction)
	if err != nil {
		return err
	}
	s.dir = dir
	if err := validateSpeed(s.Speed); err != nil {
		return err
	}
	if err := validateDistance(s.DistanceIn); err != nil {
		return err
	}
	return validateTimeout(s.TimeoutSec)
}

// Execute strafes the base.
func (s *StrafeStep) Execute(env *Env) mecanum.Outcome {
	return env.Base.Strafe(env.Host, s.dir, s.Speed, s.DistanceIn, seconds(s.TimeoutSec))
}

// StopStep stops every wheel.
type StopStep struct{}

// Type returns "stop".
func (s *StopStep) Type() string { return StepStop }

func (s *StopStep) String() string { return "stop" }

// Validate always succeeds.
func (s *StopStep) Validate(Signals) error { return nil }

// Execute stops the base. It always arrives.
func (s *StopStep) Execute(env *Env) mecanum.Outcome {
	env.Base.Stop()
	return mecanum.Arrived
}

// PauseStep waits without moving, such as while a mechanism picks up a block.
type PauseStep struct {
	Seconds float64 `json:"seconds"`
}

// Type returns "pause".
func (s *PauseStep) Type() string { return StepPause }

func (s *PauseStep) String() string {
	return fmt.Sprintf("pause %.2fs", s.Seconds)
}

// Validate ensures all parts of the step are valid.
func (s *PauseStep) Validate(Signals) error {
	if !finite(s.Seconds) || s.Seconds < 0 || s.Seconds >= maxSeconds {
		return errors.Errorf("seconds must be finite and not negative, got %v", s.Seconds)
	}
	return nil
}

// Execute yields to the host until the pause is over.
func (s *PauseStep) Execute(env *Env) mecanum.Outcome {
	start := env.Clock.Now()
	d := seconds(s.Seconds)
	for env.Host.IsActive() {
		if env.Clock.Since(start) >= d {
			return mecanum.Arrived
		}
		env.Host.Yield()
	}
	return mecanum.Deactivated
}

// SeekStep strafes until a signal fires, optionally coming back afterwards.
type SeekStep struct {
	Direction  string  `json:"direction"`
	Speed      float64 `json:"speed"`
	Signal     string  `json:"signal"`
	TimeoutSec float64 `json:"timeout_sec"`
	Return     bool    `json:"return,omitempty"`

	dir mecanum.Direction
}

// Type returns "seek".
func (s *SeekStep) Type() string { return StepSeek }

func (s *SeekStep) String() string {
	str := fmt.Sprintf("seek %s %.2f until %s", s.Direction, s.Speed, s.Signal)
	if s.Return {
		str += " and return"
	}
	return str
}

// Validate ensures all parts of the step are valid and that its signal exists.
func (s *SeekStep) Validate(signals Signals) error {
	dir, err := mecanum.ParseDirection(s.Direction)
	if err != nil {
		return err
	}
	s.dir = dir
	if s.Signal == "" {
		return errors.New("signal is required")
	}
	if _, err := signals.Lookup(s.Signal); err != nil {
		return err
	}
	if err := validateSpeed(s.Speed); err != nil {
		return err
	}
	return validateTimeout(s.TimeoutSec)
}

// Execute seeks with the base.
func (s *SeekStep) Execute(env *Env) mecanum.Outcome {
	sig, err := env.Signals.Lookup(s.Signal)
	if err != nil {
		// a signal removed after validation never fires
		sig = SignalFunc(func() bool { return false })
	}
	if r, ok := sig.(interface{ Reset() }); ok {
		r.Reset()
	}
	return env.Base.Seek(env.Host, s.dir, s.Speed, sig.Detected, seconds(s.TimeoutSec), s.Return)
}
