// Package mecanum implements the motion kernel of a four-wheeled mecanum base:
// open-loop drive, turn, and strafe motions that use the wheel encoders as their
// only feedback and are bounded by a wall-clock timeout.
//
// Every motion blocks until it reaches a terminal Outcome and always leaves all four
// wheels stopped. A Base is driven by one sequential command stream; it is not safe to
// run two motions on it at once.
package mecanum

import (
	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.viam.com/utils"

	"github.com/lcr-robotics/lilpanini/components/encoder"
	"github.com/lcr-robotics/lilpanini/components/motor"
	"github.com/lcr-robotics/lilpanini/resource"
)

// WheelConfig is how you configure one wheel.
type WheelConfig struct {
	Motor string `json:"motor"`
	// Encoder defaults to the motor's name.
	Encoder string `json:"encoder,omitempty"`
	// DirectionFlip marks a motor mounted backwards.
	DirectionFlip bool `json:"direction_flip,omitempty"`
}

// EncoderName returns the name of the encoder measuring the wheel.
func (wc WheelConfig) EncoderName() string {
	if wc.Encoder == "" {
		return wc.Motor
	}
	return wc.Encoder
}

// Config is how you configure a mecanum base.
type Config struct {
	FrontLeft   WheelConfig `json:"front_left"`
	FrontRight  WheelConfig `json:"front_right"`
	BackLeft    WheelConfig `json:"back_left"`
	BackRight   WheelConfig `json:"back_right"`
	Calibration Calibration `json:"calibration"`
}

// Wheels returns the wheel configs in index order.
func (cfg *Config) Wheels() [numWheels]WheelConfig {
	return [numWheels]WheelConfig{cfg.FrontLeft, cfg.FrontRight, cfg.BackLeft, cfg.BackRight}
}

// Validate ensures all parts of the config are valid, and returns the names of the
// motors and encoders it depends on.
func (cfg *Config) Validate(path string) ([]string, error) {
	var deps []string
	seen := map[string]WheelID{}
	for i, wc := range cfg.Wheels() {
		id := AllWheels[i]
		if wc.Motor == "" {
			return nil, utils.NewConfigValidationFieldRequiredError(path, id.String()+".motor")
		}
		if other, ok := seen[wc.Motor]; ok {
			return nil, utils.NewConfigValidationError(path,
				errors.Errorf("motor %q is used by both %s and %s", wc.Motor, other, id))
		}
		seen[wc.Motor] = id
		deps = append(deps, wc.Motor)
		if wc.EncoderName() != wc.Motor {
			deps = append(deps, wc.EncoderName())
		}
	}
	if err := cfg.Calibration.Validate(path + ".calibration"); err != nil {
		return nil, err
	}
	return deps, nil
}

// Base is a four-wheeled mecanum base.
type Base struct {
	wheels *WheelSet
	cal    Calibration
	clock  clock.Clock
	logger golog.Logger
}

// NewBase returns a base that moves the given wheels. Unset calibration constants take
// their default values. A nil clock uses the wall clock.
func NewBase(wheels *WheelSet, cal Calibration, clk clock.Clock, logger golog.Logger) *Base {
	if clk == nil {
		clk = clock.New()
	}
	return &Base{
		wheels: wheels,
		cal:    cal.WithDefaults(),
		clock:  clk,
		logger: logger,
	}
}

// CreateBase returns a new mecanum base defined by the given config, looking up each
// wheel's motor and encoder in deps.
func CreateBase(deps resource.Dependencies, cfg Config, clk clock.Clock, logger golog.Logger) (*Base, error) {
	if _, err := cfg.Validate("base"); err != nil {
		return nil, err
	}

	var wheels [numWheels]Wheel
	for i, wc := range cfg.Wheels() {
		id := AllWheels[i]
		m, err := motor.FromDependencies(deps, wc.Motor)
		if err != nil {
			return nil, errors.Wrapf(err, "no %s motor named (%s)", id, wc.Motor)
		}
		e, err := encoder.FromDependencies(deps, wc.EncoderName())
		if err != nil {
			return nil, errors.Wrapf(err, "no %s encoder named (%s)", id, wc.EncoderName())
		}
		if wc.DirectionFlip {
			logger.Debugf("%s wheel (%s) is reversed", id, wc.Motor)
		}
		wheels[i] = NewMotorWheel(id.String(), m, e, wc.DirectionFlip, logger)
	}

	return NewBase(NewWheelSet(wheels[0], wheels[1], wheels[2], wheels[3]), cfg.Calibration, clk, logger), nil
}

// Calibration returns the calibration the base converts units with.
func (b *Base) Calibration() Calibration {
	return b.cal
}

// Positions reads the current count of every wheel.
func (b *Base) Positions() Counts {
	return b.wheels.Positions()
}

// Stop sets every wheel's power to 0. It is always safe to call.
func (b *Base) Stop() {
	b.wheels.StopAll()
}
