package validation

import "errors"

var (
	// ErrWarmUp is returned when warming configurations is interrupted.
	ErrWarmUp = errors.New("configuration warm-up failed")

	// ErrDerivationPanic wraps a panic recovered while deriving a configuration.
	ErrDerivationPanic = errors.New("configuration derivation panicked")
)
