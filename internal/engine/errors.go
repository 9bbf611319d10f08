package engine

import "errors"

// ConfigurationError reports malformed construction parameters: seat-count
// mismatches, negative amounts, empty street lists. Raised at creation time
// and never recovered internally.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "engine: invalid configuration: " + e.Reason
}

// IllegalActionError reports an in-turn operation that violates the current
// legality bounds: wrong operation for the current sub-phase, a raise amount
// outside [min, max], a discard of cards the seat does not hold. The state is
// never mutated when one is returned.
type IllegalActionError struct {
	Op     string
	Reason string
}

func (e *IllegalActionError) Error() string {
	return "engine: illegal " + e.Op + ": " + e.Reason
}

// IsIllegalAction reports whether err is an IllegalActionError.
func IsIllegalAction(err error) bool {
	var e *IllegalActionError
	return errors.As(err, &e)
}

// IsConfiguration reports whether err is a ConfigurationError.
func IsConfiguration(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}

func illegal(op, reason string) error {
	return &IllegalActionError{Op: op, Reason: reason}
}
