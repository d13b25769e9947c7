// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"version": "2.0.0", "codec_passphrase": "hunter2"},
		"ledger": {
			"backend": "sqlite",
			"safe_index": true,
			"sqlite_path": "/var/lib/vault.db"
		},
		"server": {"http_address": "0.0.0.0:8080", "request_timeout": "45s"},
		"access": {"contract_address": "0xc0ffee", "chain_id": 8009, "duration_days": 7}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "sqlite", cfg.Ledger.Backend)
	assert.True(t, cfg.Ledger.SafeIndex)
	assert.Equal(t, "/var/lib/vault.db", cfg.Ledger.SQLitePath)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(8009), cfg.Access.ChainID)
	assert.Empty(t, cfg.JSONFilePath, "a json config must not chain to another file")
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeTempJSON(t, `{"server": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/no/such/file.json")
	require.Error(t, err)
}

func TestParseJSON_MalformedContent(t *testing.T) {
	path := writeTempJSON(t, `{"ledger": [`)

	_, err := parseJSON(path)
	require.Error(t, err)
}
