package builder

import "errors"

var (
	// ErrNotConstraintMarker is returned when a builder declares a non-constraint marker type.
	ErrNotConstraintMarker = errors.New("marker type is not a constraint marker")

	// ErrNilBuilder is returned when registering a nil builder.
	ErrNilBuilder = errors.New("builder is nil")

	// ErrRuleMismatch is returned by Update when the existing rule has an unexpected type.
	ErrRuleMismatch = errors.New("existing rule does not match builder kind")
)
