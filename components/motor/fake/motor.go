// Package fake implements a fake motor.
package fake

import (
	"context"
	"math"
	"sync"

	"github.com/edaniels/golog"

	fakeencoder "github.com/lcr-robotics/lilpanini/components/encoder/fake"
	"github.com/lcr-robotics/lilpanini/components/motor"
)

// DefaultTicksPerStep is how far a simulated wheel's encoder moves per step at full power.
const DefaultTicksPerStep = 100

var _ motor.Motor = &Motor{}

// A Motor allows setting and reading a set power percentage and
// drives a fake encoder proportionally to that power.
type Motor struct {
	Name         string
	mu           sync.Mutex
	powerPct     float64
	Encoder      *fakeencoder.Encoder
	TicksPerStep float64
	Logger       golog.Logger
}

// NewMotor returns a fake motor wired to a new stepped encoder.
func NewMotor(name string, ticksPerStep float64, logger golog.Logger) *Motor {
	if ticksPerStep == 0 {
		ticksPerStep = DefaultTicksPerStep
	}
	return &Motor{
		Name:         name,
		Encoder:      fakeencoder.NewEncoder(),
		TicksPerStep: ticksPerStep,
		Logger:       logger,
	}
}

// SetPower sets the given power percentage, clamped to [-1, 1].
func (m *Motor) SetPower(ctx context.Context, powerPct float64, extra map[string]interface{}) error {
	if math.IsNaN(powerPct) {
		return motor.NewInvalidPowerError(m.Name, powerPct)
	}
	powerPct = math.Max(-1, math.Min(powerPct, 1))

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Logger != nil {
		m.Logger.Debugf("Motor %s SetPower %f", m.Name, powerPct)
	}
	m.powerPct = powerPct

	if m.Encoder != nil {
		return m.Encoder.SetSpeed(ctx, powerPct*m.TicksPerStep)
	}
	return nil
}

// PowerPct returns the set power percentage.
func (m *Motor) PowerPct() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.powerPct
}

// Direction returns the set direction.
func (m *Motor) Direction() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch {
	case m.powerPct > 0:
		return 1
	case m.powerPct < 0:
		return -1
	}
	return 0
}

// Stop has the motor pretend to be off.
func (m *Motor) Stop(ctx context.Context, extra map[string]interface{}) error {
	return m.SetPower(ctx, 0, extra)
}

// IsPowered returns if the motor is pretending to be on or not, and its power level.
func (m *Motor) IsPowered(ctx context.Context, extra map[string]interface{}) (bool, float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return math.Abs(m.powerPct) >= 0.005, m.powerPct, nil
}
