package ledger

import "errors"

var (
	// ErrUnavailable is returned (or wrapped) when the ledger backend is
	// unreachable or reports itself unavailable. Read paths degrade to
	// empty results on it; write paths surface it to the caller.
	ErrUnavailable = errors.New("ledger unavailable")
)
