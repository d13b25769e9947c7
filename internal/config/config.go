// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// insider-vault application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// the codec passphrase.
	App App `envPrefix:"APP_"`

	// Ledger selects and configures the key/value backend records live in.
	Ledger Ledger `envPrefix:"LEDGER_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Access holds the challenge context for the decryption gate.
	Access Access `envPrefix:"ACCESS_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// CodecPassphrase, when non-empty, switches record encoding from the
	// reversible mask codec to the sealed AES-GCM codec keyed from this
	// passphrase. Must be kept confidential.
	// Env: APP_CODEC_PASSPHRASE
	CodecPassphrase string `env:"CODEC_PASSPHRASE"`
}

// Ledger selects the storage backend and carries per-backend settings.
type Ledger struct {
	// Backend names the ledger implementation to run against:
	// "memory", "redis", "sqlite" or "http".
	// Env: LEDGER_BACKEND
	Backend string `env:"BACKEND"`

	// SafeIndex enables the compare-and-swap index manager on backends
	// that support it, serializing concurrent index appends. Ignored on
	// backends without a conditional write.
	// Env: LEDGER_SAFE_INDEX
	SafeIndex bool `env:"SAFE_INDEX"`

	// Redis holds connection settings for the "redis" backend.
	Redis Redis `envPrefix:"REDIS_"`

	// SQLitePath is the database file path for the "sqlite" backend.
	// Env: LEDGER_SQLITE_PATH
	SQLitePath string `env:"SQLITE_PATH"`

	// GatewayURL is the base URL of the remote gateway for the "http"
	// backend (e.g. "http://ledger-gw:8080").
	// Env: LEDGER_GATEWAY_URL
	GatewayURL string `env:"GATEWAY_URL"`
}

// Redis holds connection settings for the Redis ledger backend.
type Redis struct {
	// Address is the Redis server address in "host:port" format.
	// Env: LEDGER_REDIS_ADDRESS
	Address string `env:"ADDRESS"`

	// Password is the optional Redis AUTH password.
	// Env: LEDGER_REDIS_PASSWORD
	Password string `env:"PASSWORD"`

	// DB is the Redis logical database number.
	// Env: LEDGER_REDIS_DB
	DB int `env:"DB"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Access holds the static challenge context signed over before a record
// value is released.
type Access struct {
	// ContractAddress is the ledger contract address bound into every
	// challenge message.
	// Env: ACCESS_CONTRACT_ADDRESS
	ContractAddress string `env:"CONTRACT_ADDRESS"`

	// ChainID is the chain the contract lives on.
	// Env: ACCESS_CHAIN_ID
	ChainID int64 `env:"CHAIN_ID"`

	// DurationDays is the validity window length of a decryption session.
	// Zero selects the gate's default.
	// Env: ACCESS_DURATION_DAYS
	DurationDays int `env:"DURATION_DAYS"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval is the period between session cache refreshes.
	// Zero disables the refresh worker.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (the first source to set a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
