package mecanum

import (
	"context"
	"fmt"
	"sync"

	"github.com/edaniels/golog"

	"github.com/lcr-robotics/lilpanini/components/encoder"
	"github.com/lcr-robotics/lilpanini/components/motor"
)

// WheelID identifies one of the four wheels.
type WheelID int

// The four wheels, in the order Counts and Powers are indexed by.
const (
	FrontLeft WheelID = iota
	FrontRight
	BackLeft
	BackRight

	numWheels = 4
)

func (id WheelID) String() string {
	switch id {
	case FrontLeft:
		return "front_left"
	case FrontRight:
		return "front_right"
	case BackLeft:
		return "back_left"
	case BackRight:
		return "back_right"
	default:
		return fmt.Sprintf("wheel(%d)", int(id))
	}
}

// AllWheels lists every wheel in index order.
var AllWheels = [numWheels]WheelID{FrontLeft, FrontRight, BackLeft, BackRight}

// Counts holds one encoder count per wheel.
type Counts [numWheels]int

// Powers holds one power level per wheel.
type Powers [numWheels]float64

// A Wheel is one independently powered, independently measured wheel. Reads and
// writes never fail from the caller's point of view; hardware faults are the
// actuator driver's concern.
type Wheel interface {
	// Position returns the latest signed encoder count without blocking.
	Position() int
	// SetPower commands a power in [-1, 1]. The actuator clamps out of range values.
	SetPower(power float64)
}

// A WheelSet is exactly four wheels.
type WheelSet struct {
	wheels [numWheels]Wheel
}

// NewWheelSet returns a WheelSet of the given wheels.
func NewWheelSet(frontLeft, frontRight, backLeft, backRight Wheel) *WheelSet {
	return &WheelSet{wheels: [numWheels]Wheel{frontLeft, frontRight, backLeft, backRight}}
}

// Wheel returns the wheel with the given id.
func (ws *WheelSet) Wheel(id WheelID) Wheel {
	return ws.wheels[id]
}

// Positions reads every wheel once.
func (ws *WheelSet) Positions() Counts {
	var c Counts
	for i, w := range ws.wheels {
		c[i] = w.Position()
	}
	return c
}

// SetPowers commands each wheel to its own power.
func (ws *WheelSet) SetPowers(p Powers) {
	for i, w := range ws.wheels {
		w.SetPower(p[i])
	}
}

// SetAll commands every wheel to the same power.
func (ws *WheelSet) SetAll(power float64) {
	ws.SetPowers(Powers{power, power, power, power})
}

// StopAll sets every wheel's power to exactly 0.
func (ws *WheelSet) StopAll() {
	ws.SetAll(0)
}

// MotorWheel is a Wheel backed by a motor and the encoder measuring it. A flipped
// wheel is mounted backwards, so both its power and its counts are negated to keep
// a single positive power driving every wheel forwards.
type MotorWheel struct {
	name    string
	motor   motor.Motor
	encoder encoder.Encoder
	flip    bool
	logger  golog.Logger

	mu       sync.Mutex
	lastGood int
}

// NewMotorWheel returns a Wheel for the given motor and encoder.
func NewMotorWheel(name string, m motor.Motor, e encoder.Encoder, flip bool, logger golog.Logger) *MotorWheel {
	return &MotorWheel{name: name, motor: m, encoder: e, flip: flip, logger: logger}
}

// Position returns the encoder count, or the last good count if the read fails.
func (w *MotorWheel) Position() int {
	ticks, err := w.encoder.TicksCount(context.Background(), nil)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.logger.Warnw("failed to read wheel position", "wheel", w.name, "error", err)
		return w.lastGood
	}
	pos := int(ticks)
	if w.flip {
		pos = -pos
	}
	w.lastGood = pos
	return pos
}

// SetPower commands the motor. Failures are logged and otherwise ignored.
func (w *MotorWheel) SetPower(power float64) {
	if w.flip && power != 0 {
		power = -power
	}
	var err error
	if power == 0 {
		err = w.motor.Stop(context.Background(), nil)
	} else {
		err = w.motor.SetPower(context.Background(), power, nil)
	}
	if err != nil {
		w.logger.Warnw("failed to set wheel power", "wheel", w.name, "power", power, "error", err)
	}
}
