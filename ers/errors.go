package ers

import (
	"errors"
	"fmt"
)

// Ok returns true when the error is nil, and false otherwise.
func Ok(err error) bool { return err == nil }

// Whenf constructs an error (using fmt.Errorf) IF the conditional is
// true, and returns nil otherwise.
func Whenf(cond bool, tmpl string, args ...any) error {
	if !cond {
		return nil
	}

	return fmt.Errorf(tmpl, args...)
}

// Wrap annotates an error with the provided prefix. Nil errors are
// passed through.
func Wrap(err error, annotation string) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", annotation, err)
}

// Wrapf is the formatted form of Wrap.
func Wrapf(err error, tmpl string, args ...any) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", fmt.Sprintf(tmpl, args...), err)
}

// Is returns true if the error is one of the target errors, (or one
// of its constituent (wrapped) errors is a target error.) ers.Is uses
// errors.Is.
func Is(err error, targets ...error) bool {
	for _, target := range targets {
		if err == nil && target != nil {
			continue
		}
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// As is a wrapper around errors.As to allow ers to be a drop in
// replacement for errors.
func As(err error, target any) bool { return errors.As(err, target) }
