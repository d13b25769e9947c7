// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package access

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/insider-vault/internal/codec"
	"github.com/MKhiriev/insider-vault/internal/logger"
	"github.com/MKhiriev/insider-vault/models"
)

// DefaultDurationDays is the validity window length used when none is
// configured.
const DefaultDurationDays = 30

// GateConfig carries the static challenge context of a gate.
type GateConfig struct {
	// PublicKey is the session's hex public key material.
	PublicKey string

	// ContractAddress is the ledger contract address bound into every
	// challenge.
	ContractAddress string

	// ChainID is the chain the contract lives on.
	ChainID int64

	// DurationDays is the validity window length; zero selects
	// DefaultDurationDays.
	DurationDays int
}

// Gate exchanges a signed challenge for the decoded value of a record.
type Gate struct {
	cfg      GateConfig
	codec    codec.Codec
	activity ActivityRecorder
	logger   *logger.Logger

	now func() time.Time

	// start is the validity window start, fixed at the gate's first use.
	startOnce sync.Once
	start     int64
}

// NewGate returns a gate decoding through c and reporting audit entries to
// activity. activity may be nil when no caller-local history is kept.
func NewGate(cfg GateConfig, c codec.Codec, activity ActivityRecorder, logger *logger.Logger) *Gate {
	if cfg.DurationDays <= 0 {
		cfg.DurationDays = DefaultDurationDays
	}
	return &Gate{
		cfg:      cfg,
		codec:    c,
		activity: activity,
		logger:   logger,
		now:      time.Now,
	}
}

// RequestDecryption builds the canonical challenge for the gate's context,
// asks signer to sign that exact message, and only then decodes the
// record's payload. The signature is a liveness gate, not decoding input.
//
// A declining or failing signer yields ErrSignerDeclined; the gate never
// retries on the caller's behalf, and the record is left untouched.
func (g *Gate) RequestDecryption(ctx context.Context, record models.Record, signer Signer) (float64, error) {
	challenge := g.challenge()

	signature, err := signer.SignMessage(ctx, challenge.Message())
	if err != nil {
		g.logger.Debug().Err(err).Str("id", record.ID).Msg("decryption challenge declined")
		return 0, fmt.Errorf("%w: %w", ErrSignerDeclined, err)
	}
	if len(signature) == 0 {
		return 0, fmt.Errorf("%w: empty signature", ErrSignerDeclined)
	}

	plaintext := g.codec.Decode(record.EncodedValue)

	if g.activity != nil {
		g.activity.Record(fmt.Sprintf("decrypted record %s", shortID(record.ID)))
	}

	return plaintext, nil
}

// challenge assembles the challenge for the current window. The window
// start is pinned at the gate's first decryption attempt so repeated
// attempts within one session sign over identical context.
func (g *Gate) challenge() Challenge {
	g.startOnce.Do(func() {
		g.start = g.now().Unix()
	})

	return Challenge{
		PublicKey:       g.cfg.PublicKey,
		ContractAddress: g.cfg.ContractAddress,
		ChainID:         g.cfg.ChainID,
		StartTimestamp:  g.start,
		DurationDays:    g.cfg.DurationDays,
	}
}

func shortID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[:6]
}
