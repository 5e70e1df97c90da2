package container

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every *NotFoundError via errors.Is.
	ErrNotFound = errors.New("container: dependency not found")

	// ErrEmptyFactory is returned when a zero Factory is invoked.
	ErrEmptyFactory = errors.New("container: empty factory")

	// ErrInvalidTarget is returned by Populate for anything other than a
	// non-nil pointer to a struct.
	ErrInvalidTarget = errors.New("container: populate target must be a non-nil pointer to struct")
)

// NotFoundError is returned when a name has no registration in the Container.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("container: no dependency registered for [%s]", e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// TypeMismatchError is returned by the typed helpers when a resolved value
// cannot be used as the requested type.
type TypeMismatchError struct {
	Name     string
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("container: [%s] resolved to %s, expected %s", e.Name, e.Got, e.Expected)
}

// UndeclaredAttributeError is returned when a consumer reads an attribute
// that was never declared with InjectAttr.
type UndeclaredAttributeError struct {
	Attribute string
}

func (e *UndeclaredAttributeError) Error() string {
	return fmt.Sprintf("container: attribute [%s] is not declared", e.Attribute)
}
