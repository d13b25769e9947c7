// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package access

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/insider-vault/internal/codec"
	"github.com/MKhiriev/insider-vault/internal/logger"
	"github.com/MKhiriev/insider-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockSigner struct {
	signFn func(ctx context.Context, message string) ([]byte, error)
}

func (m *mockSigner) SignMessage(ctx context.Context, message string) ([]byte, error) {
	if m.signFn != nil {
		return m.signFn(ctx, message)
	}
	return []byte("sig"), nil
}

type recordingActivity struct {
	entries []string
}

func (r *recordingActivity) Record(entry string) {
	r.entries = append(r.entries, entry)
}

func newTestGate(activity ActivityRecorder) *Gate {
	g := NewGate(GateConfig{
		PublicKey:       "deadbeef",
		ContractAddress: "0x2222222222222222222222222222222222222222",
		ChainID:         31337,
		DurationDays:    30,
	}, codec.NewMask(), activity, logger.Nop())
	g.now = func() time.Time { return time.Unix(1_700_000_000, 0) }
	return g
}

// ─────────────────────────────────────────────
// RequestDecryption
// ─────────────────────────────────────────────

func TestGate_RequestDecryption_SignsExactCanonicalMessage(t *testing.T) {
	gate := newTestGate(nil)
	record := models.Record{
		ID:           "1700000000000-abc1234",
		EncodedValue: codec.NewMask().Encode(42.5),
		Status:       models.StatusPending,
	}

	var signed string
	signer := &mockSigner{
		signFn: func(_ context.Context, message string) ([]byte, error) {
			signed = message
			return []byte{0x01}, nil
		},
	}

	value, err := gate.RequestDecryption(context.Background(), record, signer)
	require.NoError(t, err)
	assert.Equal(t, 42.5, value)

	want := "publickey:deadbeef\n" +
		"contractAddresses:0x2222222222222222222222222222222222222222\n" +
		"contractsChainId:31337\n" +
		"startTimestamp:1700000000\n" +
		"durationDays:30"
	assert.Equal(t, want, signed)
}

func TestGate_RequestDecryption_SignerDeclines(t *testing.T) {
	gate := newTestGate(nil)
	record := models.Record{
		ID:           "r1",
		EncodedValue: codec.NewMask().Encode(42.5),
		Status:       models.StatusPending,
	}
	signer := &mockSigner{
		signFn: func(_ context.Context, _ string) ([]byte, error) {
			return nil, errors.New("user rejected signature")
		},
	}

	_, err := gate.RequestDecryption(context.Background(), record, signer)

	require.ErrorIs(t, err, ErrSignerDeclined)
	assert.Equal(t, models.StatusPending, record.Status, "decline must not touch the record")
}

func TestGate_RequestDecryption_EmptySignatureIsDecline(t *testing.T) {
	gate := newTestGate(nil)
	signer := &mockSigner{
		signFn: func(_ context.Context, _ string) ([]byte, error) {
			return nil, nil
		},
	}

	_, err := gate.RequestDecryption(context.Background(), models.Record{ID: "r1"}, signer)
	require.ErrorIs(t, err, ErrSignerDeclined)
}

func TestGate_RequestDecryption_RecordsActivity(t *testing.T) {
	activity := &recordingActivity{}
	gate := newTestGate(activity)
	record := models.Record{
		ID:           "1700000000000-abc1234",
		EncodedValue: codec.NewMask().Encode(7),
	}

	_, err := gate.RequestDecryption(context.Background(), record, &mockSigner{})
	require.NoError(t, err)

	require.Len(t, activity.entries, 1)
	assert.Equal(t, "decrypted record 170000", activity.entries[0])
}

func TestGate_RequestDecryption_NoActivityOnDecline(t *testing.T) {
	activity := &recordingActivity{}
	gate := newTestGate(activity)
	signer := &mockSigner{
		signFn: func(_ context.Context, _ string) ([]byte, error) {
			return nil, errors.New("declined")
		},
	}

	_, err := gate.RequestDecryption(context.Background(), models.Record{ID: "r1"}, signer)
	require.Error(t, err)
	assert.Empty(t, activity.entries)
}

func TestGate_RequestDecryption_WindowStartFixedAtFirstUse(t *testing.T) {
	gate := newTestGate(nil)

	current := int64(1_700_000_000)
	gate.now = func() time.Time { return time.Unix(current, 0) }

	var messages []string
	signer := &mockSigner{
		signFn: func(_ context.Context, message string) ([]byte, error) {
			messages = append(messages, message)
			return []byte{0x01}, nil
		},
	}

	record := models.Record{ID: "r1", EncodedValue: codec.NewMask().Encode(1)}

	_, err := gate.RequestDecryption(context.Background(), record, signer)
	require.NoError(t, err)

	current += 3600 // an hour later, same session

	_, err = gate.RequestDecryption(context.Background(), record, signer)
	require.NoError(t, err)

	require.Len(t, messages, 2)
	assert.Equal(t, messages[0], messages[1], "challenge context must not drift within a session")
}

func TestGate_DefaultDurationApplied(t *testing.T) {
	gate := NewGate(GateConfig{PublicKey: "pk"}, codec.NewMask(), nil, logger.Nop())
	assert.Equal(t, DefaultDurationDays, gate.cfg.DurationDays)
}
