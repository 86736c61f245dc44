// Package ers provides constant sentinel errors and a handful of
// helpers for comparing and annotating them.
//
// The package has no dependencies outside of the standard library,
// and is used by ringq to report linkage corruption and decoding
// failures.
package ers

// Error is a string type for building/declaring sentinel errors as
// constants.
//
// In addition to nil error interface values, the empty string is
// considered equal to nil errors for the purposes of Is(). errors.As
// correctly handles unwrapping and casting Error-typed error objects.
type Error string

// Error implements the error interface.
func (e Error) Error() string { return string(e) }

// Is satisfies the errors.Is interface without using reflection.
func (e Error) Is(err error) bool {
	switch {
	case err == nil && e == "":
		return true
	case (err == nil) != (e == ""):
		return false
	default:
		x, ok := err.(Error)
		return ok && x == e
	}
}
