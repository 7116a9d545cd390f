// Package robot assembles a robot from its config.
package robot

import (
	"context"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"go.uber.org/multierr"

	"github.com/lcr-robotics/lilpanini/components/base/mecanum"
	"github.com/lcr-robotics/lilpanini/components/encoder"
	"github.com/lcr-robotics/lilpanini/components/motor"
	fakemotor "github.com/lcr-robotics/lilpanini/components/motor/fake"
	"github.com/lcr-robotics/lilpanini/config"
	"github.com/lcr-robotics/lilpanini/resource"
)

// Robot is a mecanum base and the motors driving it.
type Robot struct {
	Base   *mecanum.Base
	Motors []*fakemotor.Motor

	logger golog.Logger
}

// NewSimulated returns a robot whose wheels are fake motors with fake encoders, one per
// motor named in cfg. A wheel with its own encoder name gets that name registered for
// its motor's encoder.
func NewSimulated(cfg *config.Config, clk clock.Clock, logger golog.Logger) (*Robot, error) {
	r := &Robot{logger: logger}
	deps := resource.Dependencies{}
	for _, wc := range cfg.Base.Wheels() {
		m := fakemotor.NewMotor(wc.Motor, cfg.Simulation.TicksPerStepOrDefault(), logger.Named(wc.Motor))
		if rate := cfg.Simulation.UpdateRate(); rate > 0 {
			m.Encoder.Start(rate)
		}
		r.Motors = append(r.Motors, m)
		deps[motor.Named(wc.Motor)] = m
		deps[encoder.Named(wc.EncoderName())] = m.Encoder
	}

	base, err := mecanum.CreateBase(deps, cfg.Base, clk, logger)
	if err != nil {
		return nil, multierr.Combine(err, r.Close(context.Background()))
	}
	r.Base = base
	return r, nil
}

// MotorByName returns the named motor, or nil.
func (r *Robot) MotorByName(name string) *fakemotor.Motor {
	for _, m := range r.Motors {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Close stops every motor and its encoder.
func (r *Robot) Close(ctx context.Context) error {
	var err error
	for _, m := range r.Motors {
		err = multierr.Combine(err, m.Stop(ctx, nil))
		m.Encoder.Close()
	}
	return err
}
