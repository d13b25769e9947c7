// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":          "1.2.3",
		"APP_CODEC_PASSPHRASE": "hunter2",

		"LEDGER_BACKEND":        "redis",
		"LEDGER_SAFE_INDEX":     "true",
		"LEDGER_REDIS_ADDRESS":  "localhost:6379",
		"LEDGER_REDIS_PASSWORD": "redis_secret",
		"LEDGER_REDIS_DB":       "3",
		"LEDGER_SQLITE_PATH":    "/var/lib/vault.db",
		"LEDGER_GATEWAY_URL":    "http://ledger-gw:8080",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"ACCESS_CONTRACT_ADDRESS": "0xc0ffee",
		"ACCESS_CHAIN_ID":         "8009",
		"ACCESS_DURATION_DAYS":    "14",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "hunter2", cfg.App.CodecPassphrase)

	assert.Equal(t, "redis", cfg.Ledger.Backend)
	assert.True(t, cfg.Ledger.SafeIndex)
	assert.Equal(t, "localhost:6379", cfg.Ledger.Redis.Address)
	assert.Equal(t, "redis_secret", cfg.Ledger.Redis.Password)
	assert.Equal(t, 3, cfg.Ledger.Redis.DB)
	assert.Equal(t, "/var/lib/vault.db", cfg.Ledger.SQLitePath)
	assert.Equal(t, "http://ledger-gw:8080", cfg.Ledger.GatewayURL)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "0xc0ffee", cfg.Access.ContractAddress)
	assert.Equal(t, int64(8009), cfg.Access.ChainID)
	assert.Equal(t, 14, cfg.Access.DurationDays)
}

func TestParseEnv_PartialFields(t *testing.T) {
	t.Setenv("LEDGER_BACKEND", "memory")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Ledger.Backend)
	assert.Empty(t, cfg.App.Version)
	assert.Empty(t, cfg.Server.HTTPAddress)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}
