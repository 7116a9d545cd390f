package resource

import (
	"fmt"

	"github.com/pkg/errors"
)

// NewNotFoundError is used when a resource is not found.
func NewNotFoundError(name Name) error {
	return errors.Errorf("resource %q not found", name)
}

// NewUnexpectedTypeError is used when there is a type mismatch.
func NewUnexpectedTypeError[ExpectedT any](actual interface{}) error {
	var expected *ExpectedT
	return errors.Errorf("expected %s but got %T", fmt.Sprintf("%T", expected)[1:], actual)
}
