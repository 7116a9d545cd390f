// Package resource names the components a robot is assembled from and
// resolves them out of a set of dependencies.
package resource

import "fmt"

// API identifies the kind of a component, e.g. "motor" or "encoder".
type API string

// Name represents a known component of a robot.
type Name struct {
	API  API
	Name string
}

// NewName creates a new Name for the given API.
func NewName(api API, name string) Name {
	return Name{API: api, Name: name}
}

func (n Name) String() string {
	return fmt.Sprintf("%s/%s", n.API, n.Name)
}

// Dependencies are the components another component is built on top of.
type Dependencies map[Name]interface{}

// FromDependencies returns the named dependency as a T.
func FromDependencies[T any](deps Dependencies, name Name) (T, error) {
	var zero T
	res, ok := deps[name]
	if !ok {
		return zero, NewNotFoundError(name)
	}
	typed, ok := res.(T)
	if !ok {
		return zero, NewUnexpectedTypeError[T](res)
	}
	return typed, nil
}
