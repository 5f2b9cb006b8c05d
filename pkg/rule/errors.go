package rule

import "errors"

var (
	// ErrInvalidRule is returned when rule attributes violate the rule invariant.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrUnknownMark is returned when a mark name is not recognized.
	ErrUnknownMark = errors.New("unknown mark")
)
