package workflow

import "errors"

var (
	// ErrUnauthorized is returned when the acting identity is not the
	// owner of the record whose status it is trying to change.
	ErrUnauthorized = errors.New("actor is not the record owner")

	// ErrInvalidTransition is returned when a transition is attempted on
	// a record that already reached a terminal status. A second verify is
	// an error, never a silent success.
	ErrInvalidTransition = errors.New("record status is terminal")
)
