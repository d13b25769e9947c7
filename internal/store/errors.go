package store

import "errors"

// Sentinel errors returned by record store methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when an operation targets a record id that
	// has no backing entry in the ledger.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidDataType is returned when a record is submitted with a
	// category outside the fixed enumeration.
	ErrInvalidDataType = errors.New("unknown record data type")
)
