// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package index maintains the set of known record identifiers under the
// reserved ledger key. The index is the sole source of truth for record
// enumeration: records are never discovered by scanning the key space.
package index

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/insider-vault/internal/ledger"
	"github.com/MKhiriev/insider-vault/internal/logger"
)

// Key is the reserved ledger key holding the JSON array of record ids.
const Key = "insider_keys"

// Manager maintains the ordered, append-only sequence of record ids.
type Manager interface {
	// ListIDs returns all known record ids in insertion order. A missing,
	// empty, or malformed index yields an empty slice, never an error;
	// only ledger unavailability is surfaced.
	ListIDs(ctx context.Context) ([]string, error)

	// AppendID adds id to the end of the index.
	AppendID(ctx context.Context, id string) error
}

// kvIndex is the plain read-modify-write implementation.
//
// AppendID is NOT atomic against concurrent writers: two concurrent calls
// race on the shared key and the last writer wins, silently dropping the
// other's id. Callers must tolerate eventual, not immediate, visibility of
// concurrent submissions. Use [NewConditional] where the backend offers a
// conditional write.
type kvIndex struct {
	client ledger.Client
	logger *logger.Logger
}

// New returns the read-modify-write index manager over client.
func New(client ledger.Client, logger *logger.Logger) Manager {
	return &kvIndex{client: client, logger: logger}
}

func (k *kvIndex) ListIDs(ctx context.Context) ([]string, error) {
	return readIDs(ctx, k.client, k.logger)
}

func (k *kvIndex) AppendID(ctx context.Context, id string) error {
	ids, err := readIDs(ctx, k.client, k.logger)
	if err != nil {
		return fmt.Errorf("append id %q: %w", id, err)
	}

	payload, err := json.Marshal(append(ids, id))
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}

	if err = k.client.SetData(ctx, Key, payload); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// readIDs loads and decodes the index key. Malformed content is logged and
// treated as an empty index so enumeration never fails on bad data.
func readIDs(ctx context.Context, client ledger.Client, log *logger.Logger) ([]string, error) {
	raw, err := client.GetData(ctx, Key)
	if err != nil {
		return nil, fmt.Errorf("read index key: %w", err)
	}
	return decodeIDs(raw, log), nil
}
