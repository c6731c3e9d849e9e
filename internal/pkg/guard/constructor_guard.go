// Package guard provides a defensive construction pattern for value objects
// and entities. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable, so domain objects can insist on being created through
// their constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether an object was built through its designated
// constructor. The zero value is "not constructed" and fails validation,
// which prevents accidental use of bare struct literals.
//
// Example:
//
//	type Specification struct {
//	    width float64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSpecification(width float64) (Specification, error) {
//	    return Specification{width: width, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (s Specification) Validate() error {
//	    return s.guard.Validate(ErrSpecificationIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as properly
// constructed. Call it inside the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object came through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
