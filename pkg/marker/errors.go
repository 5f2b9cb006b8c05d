package marker

import "errors"

var (
	// ErrInvalidValue is returned when a marker value cannot be converted.
	ErrInvalidValue = errors.New("invalid marker value")

	// ErrEmptyName is returned when declaring a marker type without a name.
	ErrEmptyName = errors.New("marker type name is empty")
)
