// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workflow enforces the record verification lifecycle:
// pending is the initial state, verified and rejected are terminal, and
// only the record owner may trigger the single legal transition.
//
// The ownership check runs here, on the client side of the ledger. The
// ledger itself accepts any well-formed write; nothing ledger-side
// prevents a non-owner from rewriting a record through a different client.
// That trust boundary is inherited from the reference deployment and is a
// known gap, not an oversight.
package workflow

import (
	"context"
	"fmt"

	"github.com/MKhiriev/insider-vault/internal/logger"
	"github.com/MKhiriev/insider-vault/internal/store"
	"github.com/MKhiriev/insider-vault/models"
)

// Machine applies status transitions through the record store.
type Machine struct {
	records store.Records
	logger  *logger.Logger
}

// New returns a state machine mutating records through records.
func New(records store.Records, logger *logger.Logger) *Machine {
	return &Machine{records: records, logger: logger}
}

// Verify moves the record to verified. Only the owner may do this, and
// only while the record is still pending. On success it returns the
// refreshed record list so dependent views stay consistent.
func (m *Machine) Verify(ctx context.Context, id, actor string) ([]models.Record, error) {
	return m.transition(ctx, id, actor, models.StatusVerified)
}

// Reject moves the record to rejected under the same rules as Verify.
func (m *Machine) Reject(ctx context.Context, id, actor string) ([]models.Record, error) {
	return m.transition(ctx, id, actor, models.StatusRejected)
}

func (m *Machine) transition(ctx context.Context, id, actor string, target models.Status) ([]models.Record, error) {
	record, err := m.records.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("transition record %s: %w", id, err)
	}
	if record == nil {
		return nil, fmt.Errorf("transition record %s: %w", id, store.ErrNotFound)
	}

	if !record.IsOwnedBy(actor) {
		return nil, fmt.Errorf("transition record %s to %s: %w", id, target, ErrUnauthorized)
	}
	if record.Status != models.StatusPending {
		return nil, fmt.Errorf("transition record %s from %s to %s: %w", id, record.Status, target, ErrInvalidTransition)
	}

	err = m.records.Update(ctx, id, func(r *models.Record) {
		r.Status = target
	})
	if err != nil {
		return nil, fmt.Errorf("transition record %s: %w", id, err)
	}

	m.logger.Info().Str("id", id).Str("status", string(target)).Msg("record status transitioned")

	return m.records.List(ctx)
}
