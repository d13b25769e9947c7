// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("empty backend defaults to memory and passes", func(t *testing.T) {
		cfg := &StructuredConfig{}
		require.NoError(t, cfg.validate())
	})

	t.Run("redis backend requires an address", func(t *testing.T) {
		cfg := &StructuredConfig{Ledger: Ledger{Backend: BackendRedis}}
		require.ErrorIs(t, cfg.validate(), ErrInvalidLedgerConfigs)

		cfg.Ledger.Redis.Address = "localhost:6379"
		require.NoError(t, cfg.validate())
	})

	t.Run("sqlite backend requires a path", func(t *testing.T) {
		cfg := &StructuredConfig{Ledger: Ledger{Backend: BackendSQLite}}
		require.ErrorIs(t, cfg.validate(), ErrInvalidLedgerConfigs)

		cfg.Ledger.SQLitePath = "/tmp/vault.db"
		require.NoError(t, cfg.validate())
	})

	t.Run("unknown backend rejected", func(t *testing.T) {
		cfg := &StructuredConfig{Ledger: Ledger{Backend: "etcd"}}
		require.ErrorIs(t, cfg.validate(), ErrUnknownLedgerBackend)
	})

	t.Run("negative request timeout rejected", func(t *testing.T) {
		cfg := &StructuredConfig{Server: Server{RequestTimeout: -time.Second}}
		require.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
	})
}
