// Package ledger defines the thin read/write facade over the external
// key/value store records live in, together with the backends insider-vault
// ships: an in-memory map, Redis, a local SQLite file, and an HTTP gateway.
//
// The facade is deliberately minimal: flat string keys, opaque byte values,
// and per-caller ordering only. Nothing here provides cross-caller
// isolation; see the index package for the consequences.
package ledger

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/ledger_client_mock.go -package=mock

// Client is the minimal contract every ledger backend satisfies.
type Client interface {
	// IsAvailable reports whether the ledger currently accepts reads and
	// writes. Callers short-circuit read paths to empty results when it
	// returns false.
	IsAvailable(ctx context.Context) (bool, error)

	// GetData returns the value stored under key, or (nil, nil) when the
	// key has never been written. Absence is not an error.
	GetData(ctx context.Context, key string) ([]byte, error)

	// SetData stores value under key, unconditionally overwriting any
	// previous value.
	SetData(ctx context.Context, key string, value []byte) error
}

// ConditionalClient is the optional capability a backend may add on top of
// [Client] to serialize read-modify-write cycles. Backends unable to offer
// it simply do not implement the interface; callers feature-detect with a
// type assertion.
type ConditionalClient interface {
	Client

	// CompareAndSwap writes value under key only if the current value
	// equals expect (nil expect means "key absent"). It reports whether
	// the swap happened.
	CompareAndSwap(ctx context.Context, key string, expect, value []byte) (bool, error)
}
