// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/insider-vault/internal/codec"
	"github.com/MKhiriev/insider-vault/internal/index"
	"github.com/MKhiriev/insider-vault/internal/ledger"
	"github.com/MKhiriev/insider-vault/internal/logger"
	"github.com/MKhiriev/insider-vault/models"
	"github.com/google/uuid"
)

// recordKeyPrefix prefixes every record's ledger key: "insider_<id>".
const recordKeyPrefix = "insider_"

// recordPayload is the wire shape of a record value in the ledger. The id
// lives in the key, not the value.
type recordPayload struct {
	Value     string          `json:"value"`
	Timestamp int64           `json:"timestamp"`
	Owner     string          `json:"owner"`
	Company   string          `json:"company"`
	DataType  models.DataType `json:"dataType"`
	Status    models.Status   `json:"status"`
}

type recordStore struct {
	client ledger.Client
	index  index.Manager
	codec  codec.Codec
	logger *logger.Logger

	now   func() time.Time
	newID func(at time.Time) string
}

// NewRecords returns the record store over the given collaborators.
func NewRecords(client ledger.Client, idx index.Manager, c codec.Codec, logger *logger.Logger) Records {
	return &recordStore{
		client: client,
		index:  idx,
		codec:  c,
		logger: logger,
		now:    time.Now,
		newID:  generateID,
	}
}

// generateID builds a record id from a millisecond timestamp prefix and a
// random suffix. Collisions are practically impossible at the expected
// write rate; ids are never reused.
func generateID(at time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
	return fmt.Sprintf("%d-%s", at.UnixMilli(), suffix)
}

// RecordKey returns the ledger key for a record id.
func RecordKey(id string) string {
	return recordKeyPrefix + id
}

func (s *recordStore) Create(ctx context.Context, owner, company string, dataType models.DataType, plaintext float64) (models.Record, error) {
	if !models.KnownDataType(dataType) {
		return models.Record{}, fmt.Errorf("create record: %w: %q", ErrInvalidDataType, dataType)
	}

	at := s.now()
	record := models.Record{
		ID:           s.newID(at),
		EncodedValue: s.codec.Encode(plaintext),
		CreatedAt:    at.Unix(),
		Owner:        owner,
		Company:      company,
		DataType:     dataType,
		Status:       models.StatusPending,
	}

	if err := s.write(ctx, record); err != nil {
		return models.Record{}, fmt.Errorf("create record %s: %w", record.ID, err)
	}

	// The record key write above is durable, but the id only becomes
	// discoverable once the index append lands. There is no rollback of
	// the record write if the append fails.
	if err := s.index.AppendID(ctx, record.ID); err != nil {
		return models.Record{}, fmt.Errorf("create record %s: index: %w", record.ID, err)
	}

	return record, nil
}

func (s *recordStore) Get(ctx context.Context, id string) (*models.Record, error) {
	record, err := s.fetch(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		// Read path degrades: log and report absent instead of failing.
		s.logger.Warn().Err(err).Str("id", id).Msg("record read failed softly")
		return nil, nil
	}
	return record, nil
}

func (s *recordStore) List(ctx context.Context) ([]models.Record, error) {
	available, err := s.client.IsAvailable(ctx)
	if err != nil || !available {
		s.logger.Warn().Err(err).Msg("ledger unavailable, listing degrades to empty")
		return []models.Record{}, nil
	}

	ids, err := s.index.ListIDs(ctx)
	if err != nil {
		if errors.Is(err, ledger.ErrUnavailable) {
			s.logger.Warn().Err(err).Msg("ledger unavailable, listing degrades to empty")
			return []models.Record{}, nil
		}
		return nil, fmt.Errorf("list records: %w", err)
	}

	records := make([]models.Record, 0, len(ids))
	for _, id := range ids {
		record, err := s.fetch(ctx, id)
		if err != nil {
			// Malformed or missing entries are skipped, never fatal to
			// enumeration.
			s.logger.Warn().Err(err).Str("id", id).Msg("skipping unreadable record")
			continue
		}
		records = append(records, *record)
	}

	// Most recent first; the stable sort keeps index order for equal
	// timestamps.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt > records[j].CreatedAt
	})

	return records, nil
}

func (s *recordStore) Update(ctx context.Context, id string, mutate func(*models.Record)) error {
	record, err := s.fetch(ctx, id)
	if err != nil {
		return fmt.Errorf("update record %s: %w", id, err)
	}

	mutate(record)

	if err := s.write(ctx, *record); err != nil {
		return fmt.Errorf("update record %s: %w", id, err)
	}
	return nil
}

// fetch reads and decodes one record, surfacing every failure mode; the
// soft degradation policy lives in Get and List, not here.
func (s *recordStore) fetch(ctx context.Context, id string) (*models.Record, error) {
	raw, err := s.client.GetData(ctx, RecordKey(id))
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrNotFound
	}

	var payload recordPayload
	if err = json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	status := payload.Status
	if status == "" {
		status = models.StatusPending
	}

	return &models.Record{
		ID:           id,
		EncodedValue: payload.Value,
		CreatedAt:    payload.Timestamp,
		Owner:        payload.Owner,
		Company:      payload.Company,
		DataType:     payload.DataType,
		Status:       status,
	}, nil
}

func (s *recordStore) write(ctx context.Context, record models.Record) error {
	payload, err := json.Marshal(recordPayload{
		Value:     record.EncodedValue,
		Timestamp: record.CreatedAt,
		Owner:     record.Owner,
		Company:   record.Company,
		DataType:  record.DataType,
		Status:    record.Status,
	})
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	if err = s.client.SetData(ctx, RecordKey(record.ID), payload); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
