// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// Supported ledger backend names.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
	BackendHTTP   = "http"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. An empty backend is
// allowed and resolves to the in-memory ledger.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Ledger.Backend {
	case "", BackendMemory, BackendHTTP:
		// memory needs nothing; the http client falls back to a default URL

	case BackendRedis:
		if cfg.Ledger.Redis.Address == "" {
			return fmt.Errorf("%w: redis backend needs an address", ErrInvalidLedgerConfigs)
		}

	case BackendSQLite:
		if cfg.Ledger.SQLitePath == "" {
			return fmt.Errorf("%w: sqlite backend needs a file path", ErrInvalidLedgerConfigs)
		}

	default:
		return fmt.Errorf("%w: %q", ErrUnknownLedgerBackend, cfg.Ledger.Backend)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	return nil
}
