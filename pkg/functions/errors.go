// pkg/functions/errors.go
package functions

import (
	"errors"
	"fmt"
)

// ErrAlreadyRegistered matches any duplicate-registration failure via errors.Is.
var ErrAlreadyRegistered = errors.New("function already registered")

// AlreadyRegisteredError reports which name was already bound.
type AlreadyRegisteredError struct {
	Name string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("function %q already registered", e.Name)
}

func (e *AlreadyRegisteredError) Is(target error) bool { return target == ErrAlreadyRegistered }
