package mecanum

import (
	"fmt"

	"github.com/pkg/errors"
)

// Outcome is the terminal state a motion ended in. Callers that only care that the
// motion is over can ignore it; every outcome leaves the wheels stopped.
type Outcome int

// The terminal states of a motion.
const (
	Arrived Outcome = iota
	TimedOut
	Deactivated
)

func (o Outcome) String() string {
	switch o {
	case Arrived:
		return "arrived"
	case TimedOut:
		return "timed out"
	case Deactivated:
		return "deactivated"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	switch o {
	case Arrived, TimedOut, Deactivated:
		return []byte(o.String()), nil
	default:
		return nil, errors.Errorf("unknown outcome %d", int(o))
	}
}
