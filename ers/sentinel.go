package ers

// ErrInvalidInput indicates malformed input. These errors are not
// generally retriable.
const ErrInvalidInput Error = Error("invalid input")

// ErrInvariantViolation is the root error for broken structural
// invariants, such as a ring whose links no longer agree.
const ErrInvariantViolation Error = Error("invariant violation")
