package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrUnknownLedgerBackend indicates a LEDGER_BACKEND value outside the
	// supported set (memory, redis, sqlite, http).
	ErrUnknownLedgerBackend = errors.New("unknown ledger backend")
	// ErrInvalidLedgerConfigs indicates incomplete settings for the
	// selected ledger backend (for example, a missing Redis address).
	ErrInvalidLedgerConfigs = errors.New("invalid ledger configuration")
	// ErrInvalidServerConfigs indicates invalid inbound server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
