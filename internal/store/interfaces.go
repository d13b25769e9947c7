// Package store implements CRUD over individual insider records on top of
// the index manager and the ledger client. It owns the encode/decode
// boundary: payloads enter encoded at Create and stay encoded everywhere
// except behind the access gate.
package store

import (
	"context"

	"github.com/MKhiriev/insider-vault/models"
)

// Records is the record store contract consumed by the service layer and
// the workflow state machine.
type Records interface {
	// Create encodes plaintext, builds a pending record owned by owner,
	// writes it under its own ledger key, then appends the id to the
	// index. The id is not discoverable until both writes succeed.
	Create(ctx context.Context, owner, company string, dataType models.DataType, plaintext float64) (models.Record, error)

	// Get returns the record with the given id, or nil when the id has no
	// backing entry. Malformed stored content is logged and reported as
	// absent rather than failing the caller.
	Get(ctx context.Context, id string) (*models.Record, error)

	// List resolves all ids through the index manager, fetches each
	// record, drops any that fail to parse, and returns the rest sorted
	// by creation time descending (ties keep index order). An unavailable
	// ledger degrades to an empty list.
	List(ctx context.Context) ([]models.Record, error)

	// Update applies mutate to the stored record and writes it back.
	// Returns ErrNotFound when the id has no backing record.
	Update(ctx context.Context, id string, mutate func(*models.Record)) error
}
