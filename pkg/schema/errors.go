package schema

import "errors"

var (
	// ErrTableNotFound is returned by providers that distinguish missing tables.
	ErrTableNotFound = errors.New("table not found")

	// ErrEmptyTable is returned when a table name is empty.
	ErrEmptyTable = errors.New("empty table name")
)
