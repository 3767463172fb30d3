// Package guard provides ConstructorGuard, a marker that lets entities,
// commands and queries tell a value built by its constructor apart from a
// zero value created with a bare struct literal.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero-value guard
// when the caller does not supply its own error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded as an unexported field in guarded types.
// Only NewConstructorGuard produces a guard that validates successfully, so a
// zero-value ship, container or command fails its Validate call.
//
// Example usage:
//
//	var ErrShipIsNotConstructed = errors.New("ContainerShip must be created via NewContainerShip")
//
//	type ContainerShip struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (s *ContainerShip) Validate() error {
//	    return s.guard.Validate(ErrShipIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
