package host

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"go.viam.com/test"
)

func TestFromContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := FromContext(ctx, 0)
	test.That(t, h.IsActive(), test.ShouldBeTrue)
	h.Yield()

	cancel()
	test.That(t, h.IsActive(), test.ShouldBeFalse)

	t.Run("yield returns early once cancelled", func(t *testing.T) {
		h := FromContext(ctx, time.Hour)
		start := time.Now()
		h.Yield()
		test.That(t, time.Since(start), test.ShouldBeLessThan, time.Minute)
	})
}

func TestSwitch(t *testing.T) {
	t.Run("no parent", func(t *testing.T) {
		s := NewSwitch(nil)
		test.That(t, s.IsActive(), test.ShouldBeTrue)
		s.Yield()
		s.Deactivate()
		test.That(t, s.IsActive(), test.ShouldBeFalse)
		s.Deactivate()
		test.That(t, s.IsActive(), test.ShouldBeFalse)
		s.Activate()
		test.That(t, s.IsActive(), test.ShouldBeTrue)
	})

	t.Run("follows parent", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		s := NewSwitch(FromContext(ctx, 0))
		test.That(t, s.IsActive(), test.ShouldBeTrue)
		cancel()
		test.That(t, s.IsActive(), test.ShouldBeFalse)
		s.Activate()
		test.That(t, s.IsActive(), test.ShouldBeFalse)
	})
}

func TestWithDeadline(t *testing.T) {
	clk := clock.NewMock()
	parent := NewSwitch(nil)
	h := WithDeadline(parent, clk, 30*time.Second)
	test.That(t, h.IsActive(), test.ShouldBeTrue)

	clk.Add(29 * time.Second)
	test.That(t, h.IsActive(), test.ShouldBeTrue)

	parent.Deactivate()
	test.That(t, h.IsActive(), test.ShouldBeFalse)
	parent.Activate()

	clk.Add(time.Second)
	test.That(t, h.IsActive(), test.ShouldBeFalse)
}
