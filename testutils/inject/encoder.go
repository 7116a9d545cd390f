package inject

import (
	"context"

	"github.com/lcr-robotics/lilpanini/components/encoder"
)

// Encoder is an injected encoder.
type Encoder struct {
	encoder.Encoder
	TicksCountFunc func(ctx context.Context, extra map[string]interface{}) (int64, error)
	ResetFunc      func(ctx context.Context, offset int64, extra map[string]interface{}) error
}

// TicksCount calls the injected TicksCount or the real version.
func (e *Encoder) TicksCount(ctx context.Context, extra map[string]interface{}) (int64, error) {
	if e.TicksCountFunc == nil {
		return e.Encoder.TicksCount(ctx, extra)
	}
	return e.TicksCountFunc(ctx, extra)
}

// Reset calls the injected Reset or the real version.
func (e *Encoder) Reset(ctx context.Context, offset int64, extra map[string]interface{}) error {
	if e.ResetFunc == nil {
		return e.Encoder.Reset(ctx, offset, extra)
	}
	return e.ResetFunc(ctx, offset, extra)
}
