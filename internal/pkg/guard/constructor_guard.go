// Package guard provides the ConstructorGuard pattern used across the domain
// to ensure value objects, commands, and queries are only created through
// their designated constructor functions. A zero-value struct fails validation,
// which keeps domain objects from ever being observed in an invalid state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed it in a
// struct and set it via NewConstructorGuard inside the constructor; any
// zero-value instance of the struct will then fail Validate.
//
// Example:
//
//	type RegisterUserCommand struct {
//	    email string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRegisterUserCommand(email string) (RegisterUserCommand, error) {
//	    if email == "" {
//	        return RegisterUserCommand{}, errs.NewValueIsRequiredError("email")
//	    }
//	    return RegisterUserCommand{email: email, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c RegisterUserCommand) Validate() error {
//	    return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its holder as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the holder was built through its constructor.
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
