// Package guard detects domain objects that were not created through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in value objects, entities and commands. Its zero value
// is "not constructed", so a struct literal that skips the constructor fails Validate.
//
// Example:
//
//	type Store struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewStore(name string) Store {
//	    return Store{name: name, guard: guard.NewConstructorGuard()}
//	}
//
//	func (s Store) Validate() error {
//	    return s.guard.Validate(ErrStoreIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard and validationError otherwise.
// A nil validationError is replaced by ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
