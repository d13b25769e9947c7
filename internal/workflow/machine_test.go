// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workflow

import (
	"context"
	"testing"

	"github.com/MKhiriev/insider-vault/internal/codec"
	"github.com/MKhiriev/insider-vault/internal/index"
	"github.com/MKhiriev/insider-vault/internal/ledger"
	"github.com/MKhiriev/insider-vault/internal/logger"
	"github.com/MKhiriev/insider-vault/internal/store"
	"github.com/MKhiriev/insider-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMachine(t *testing.T) (*Machine, store.Records) {
	t.Helper()

	mem := ledger.NewMemory()
	records := store.NewRecords(mem, index.New(mem, logger.Nop()), codec.NewMask(), logger.Nop())
	return New(records, logger.Nop()), records
}

func createPending(t *testing.T, records store.Records, owner string) models.Record {
	t.Helper()

	record, err := records.Create(context.Background(), owner, "ACME", models.Earnings, 42.5)
	require.NoError(t, err)
	return record
}

func TestMachine_Verify_ByOwner(t *testing.T) {
	machine, records := newTestMachine(t)
	record := createPending(t, records, "0xOwner")
	ctx := context.Background()

	refreshed, err := machine.Verify(ctx, record.ID, "0xOwner")
	require.NoError(t, err)

	require.Len(t, refreshed, 1)
	assert.Equal(t, models.StatusVerified, refreshed[0].Status)
}

func TestMachine_Verify_OwnerComparisonIgnoresCase(t *testing.T) {
	machine, records := newTestMachine(t)
	record := createPending(t, records, "0xAbCdEf")

	_, err := machine.Verify(context.Background(), record.ID, "0XABCDEF")
	require.NoError(t, err)
}

func TestMachine_Verify_Twice_SecondFailsInvalidTransition(t *testing.T) {
	machine, records := newTestMachine(t)
	record := createPending(t, records, "0xOwner")
	ctx := context.Background()

	_, err := machine.Verify(ctx, record.ID, "0xOwner")
	require.NoError(t, err)

	_, err = machine.Verify(ctx, record.ID, "0xOwner")
	require.ErrorIs(t, err, ErrInvalidTransition, "terminal state is not idempotent, the second call must fail")
}

func TestMachine_Reject_ThenVerify_Fails(t *testing.T) {
	machine, records := newTestMachine(t)
	record := createPending(t, records, "0xOwner")
	ctx := context.Background()

	_, err := machine.Reject(ctx, record.ID, "0xOwner")
	require.NoError(t, err)

	_, err = machine.Verify(ctx, record.ID, "0xOwner")
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestMachine_Verify_ByNonOwner_Unauthorized(t *testing.T) {
	machine, records := newTestMachine(t)
	record := createPending(t, records, "0xOwner")
	ctx := context.Background()

	_, err := machine.Verify(ctx, record.ID, "0xSomebodyElse")
	require.ErrorIs(t, err, ErrUnauthorized)

	// Status must be untouched after the refusal.
	got, err := records.Get(ctx, record.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestMachine_Reject_ByNonOwner_Unauthorized(t *testing.T) {
	machine, records := newTestMachine(t)
	record := createPending(t, records, "0xOwner")

	_, err := machine.Reject(context.Background(), record.ID, "0xIntruder")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestMachine_Verify_MissingRecord_NotFound(t *testing.T) {
	machine, _ := newTestMachine(t)

	_, err := machine.Verify(context.Background(), "ghost-id", "0xOwner")
	require.ErrorIs(t, err, store.ErrNotFound)
}
