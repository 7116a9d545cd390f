// Package encoder implements the encoder component
package encoder

import (
	"context"

	"github.com/lcr-robotics/lilpanini/resource"
)

// SubtypeName is a constant that identifies the component resource API string "encoder".
const SubtypeName = "encoder"

// API is a variable that identifies the component resource API.
var API = resource.API(SubtypeName)

// A Encoder turns a position into a signal.
type Encoder interface {
	// TicksCount returns the signed number of ticks since last zeroing. It never blocks
	// waiting for a new reading.
	TicksCount(ctx context.Context, extra map[string]interface{}) (int64, error)

	// Reset sets the current position of the motor (adjusted by a given offset)
	// to be its new zero position.
	Reset(ctx context.Context, offset int64, extra map[string]interface{}) error
}

// Named is a helper for getting the named Encoder's typed resource name.
func Named(name string) resource.Name {
	return resource.NewName(API, name)
}

// FromDependencies is a helper for getting the named encoder from a collection of
// dependencies.
func FromDependencies(deps resource.Dependencies, name string) (Encoder, error) {
	return resource.FromDependencies[Encoder](deps, Named(name))
}
