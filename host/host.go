// Package host abstracts the runtime a motion executes inside of: whether the
// autonomous run is still active, and a cooperative point to hand control back to it.
package host

import (
	"context"
	"runtime"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/atomic"
	"go.viam.com/utils"
)

// A Host is the scheduling context a blocking motion polls.
type Host interface {
	// IsActive returns true while the autonomous run has not been stopped or ended.
	IsActive() bool

	// Yield hands control back to the host's scheduler once. It does no work itself
	// and returns as soon as control comes back.
	Yield()
}

type contextHost struct {
	ctx          context.Context
	pollInterval time.Duration
}

// FromContext returns a Host that is active until ctx is done. Yield gives up the
// processor, and additionally waits up to pollInterval when it is positive.
func FromContext(ctx context.Context, pollInterval time.Duration) Host {
	return &contextHost{ctx: ctx, pollInterval: pollInterval}
}

func (h *contextHost) IsActive() bool {
	return h.ctx.Err() == nil
}

func (h *contextHost) Yield() {
	if h.pollInterval <= 0 {
		runtime.Gosched()
		return
	}
	utils.SelectContextOrWait(h.ctx, h.pollInterval)
}

// A Switch is an operator controlled on/off flag layered on top of another Host.
type Switch struct {
	parent Host
	active *atomic.Bool
}

// NewSwitch returns an active Switch. A nil parent is always active.
func NewSwitch(parent Host) *Switch {
	return &Switch{parent: parent, active: atomic.NewBool(true)}
}

// IsActive returns true while the switch is on and the parent is active.
func (s *Switch) IsActive() bool {
	if !s.active.Load() {
		return false
	}
	return s.parent == nil || s.parent.IsActive()
}

// Yield defers to the parent, if any.
func (s *Switch) Yield() {
	if s.parent == nil {
		runtime.Gosched()
		return
	}
	s.parent.Yield()
}

// Deactivate turns the switch off. Safe to call from any goroutine.
func (s *Switch) Deactivate() {
	s.active.Store(false)
}

// Activate turns the switch back on.
func (s *Switch) Activate() {
	s.active.Store(true)
}

type deadlineHost struct {
	Host
	clock    clock.Clock
	deadline time.Time
}

// WithDeadline returns a Host that ends once d has passed on clk, such as at the end
// of a match's autonomous period.
func WithDeadline(parent Host, clk clock.Clock, d time.Duration) Host {
	return &deadlineHost{Host: parent, clock: clk, deadline: clk.Now().Add(d)}
}

func (h *deadlineHost) IsActive() bool {
	return h.clock.Now().Before(h.deadline) && h.Host.IsActive()
}
