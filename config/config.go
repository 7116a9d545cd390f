// Package config defines the structures to configure a robot and the routines it runs.
package config

import (
	"time"

	"github.com/pkg/errors"

	"github.com/lcr-robotics/lilpanini/components/base/mecanum"
	"github.com/lcr-robotics/lilpanini/components/motor/fake"
)

// A Config describes the configuration of a robot.
type Config struct {
	ConfigFilePath string `json:"-"`

	Base mecanum.Config `json:"base"`

	// PollIntervalMs is how long a yielding motion waits between polls. Zero only
	// gives up the processor.
	PollIntervalMs int `json:"poll_interval_ms,omitempty"`

	Simulation Simulation `json:"simulation"`

	Debug bool `json:"debug,omitempty"`
}

// Ensure ensures all parts of the config are valid.
func (c *Config) Ensure() error {
	if _, err := c.Base.Validate("base"); err != nil {
		return err
	}
	if c.PollIntervalMs < 0 {
		return errors.Errorf("poll_interval_ms must not be negative, got %d", c.PollIntervalMs)
	}
	return c.Simulation.Validate("simulation")
}

// PollInterval returns the poll interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// Simulation configures the simulated motors the robot is assembled from when no
// hardware is attached.
type Simulation struct {
	// TicksPerStep is how far an encoder moves per step at full power.
	TicksPerStep float64 `json:"ticks_per_step,omitempty"`
	// UpdateRateMs, when set, steps encoders in real time instead of on every read.
	UpdateRateMs int `json:"update_rate_ms,omitempty"`
}

// Validate ensures all parts of the config are valid.
func (s *Simulation) Validate(path string) error {
	if s.TicksPerStep < 0 {
		return errors.Errorf("%s: ticks_per_step must not be negative, got %v", path, s.TicksPerStep)
	}
	if s.UpdateRateMs < 0 {
		return errors.Errorf("%s: update_rate_ms must not be negative, got %d", path, s.UpdateRateMs)
	}
	return nil
}

// TicksPerStepOrDefault returns the configured ticks per step or the fake motor default.
func (s *Simulation) TicksPerStepOrDefault() float64 {
	if s.TicksPerStep == 0 {
		return fake.DefaultTicksPerStep
	}
	return s.TicksPerStep
}

// UpdateRate returns the update rate as a duration.
func (s *Simulation) UpdateRate() time.Duration {
	return time.Duration(s.UpdateRateMs) * time.Millisecond
}
