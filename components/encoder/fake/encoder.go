// Package fake implements a fake encoder.
package fake

import (
	"context"
	"sync"
	"time"

	"go.viam.com/utils"

	"github.com/lcr-robotics/lilpanini/components/encoder"
)

var _ encoder.Encoder = &Encoder{}

// Encoder keeps track of a fake motor position.
//
// A stepped encoder (the default) advances its position by the current speed every
// time it is read, which makes a simulated motion reproducible run to run. Once Start
// is called the encoder instead advances once every update period in the background.
type Encoder struct {
	mu                      sync.Mutex
	position                int64
	speed                   float64 // ticks per step
	carry                   float64
	updateRate              time.Duration
	running                 bool
	cancel                  func()
	activeBackgroundWorkers sync.WaitGroup
}

// NewEncoder returns a stepped encoder at position zero.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// TicksCount returns the current position in terms of ticks.
func (e *Encoder) TicksCount(ctx context.Context, extra map[string]interface{}) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running {
		e.stepInLock()
	}
	return e.position, nil
}

// Start starts a background thread to run the encoder, advancing it every updateRate.
func (e *Encoder) Start(updateRate time.Duration) {
	if updateRate <= 0 {
		updateRate = 100 * time.Millisecond
	}

	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return
	}
	cancelCtx, cancel := context.WithCancel(context.Background())
	e.updateRate = updateRate
	e.running = true
	e.cancel = cancel
	e.mu.Unlock()

	e.activeBackgroundWorkers.Add(1)
	utils.ManagedGo(func() {
		for {
			if !utils.SelectContextOrWait(cancelCtx, updateRate) {
				return
			}

			e.mu.Lock()
			e.stepInLock()
			e.mu.Unlock()
		}
	}, e.activeBackgroundWorkers.Done)
}

// Close stops the background thread, if any. The encoder goes back to stepping on reads.
func (e *Encoder) Close() {
	e.mu.Lock()
	cancel := e.cancel
	e.cancel = nil
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	e.activeBackgroundWorkers.Wait()

	e.mu.Lock()
	e.running = false
	e.mu.Unlock()
}

func (e *Encoder) stepInLock() {
	// keep fractional ticks around so slow speeds still move
	e.carry += e.speed
	whole := int64(e.carry)
	e.carry -= float64(whole)
	e.position += whole
}

// Reset sets the current position of the motor (adjusted by a given offset)
// to be its new zero position.
func (e *Encoder) Reset(ctx context.Context, offset int64, extra map[string]interface{}) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.position = offset
	e.carry = 0
	return nil
}

// SetSpeed sets the speed, in ticks per step, of the fake motor the encoder is measuring.
func (e *Encoder) SetSpeed(ctx context.Context, speed float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.speed = speed
	return nil
}

// SetPosition sets the position of the encoder.
func (e *Encoder) SetPosition(ctx context.Context, position int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.position = position
	return nil
}

// Position returns the position without stepping the encoder.
func (e *Encoder) Position() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.position
}
