// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/insider-vault/internal/access"
	"github.com/MKhiriev/insider-vault/internal/logger"
	"github.com/MKhiriev/insider-vault/internal/store"
	"github.com/MKhiriev/insider-vault/models"
)

type recordService struct {
	records store.Records
	flow    Workflow
	gate    DecryptionGate
	signer  access.Signer
	session Activity

	logger *logger.Logger
}

func NewRecordService(records store.Records, flow Workflow, gate DecryptionGate, signer access.Signer, session Activity, logger *logger.Logger) RecordService {
	return &recordService{
		records: records,
		flow:    flow,
		gate:    gate,
		signer:  signer,
		session: session,
		logger:  logger,
	}
}

func (s *recordService) SubmitRecord(ctx context.Context, req models.SubmitRequest) (models.Record, error) {
	record, err := s.records.Create(ctx, req.Owner, req.Company, req.DataType, req.Value)
	if err != nil {
		return models.Record{}, fmt.Errorf("error during record submission: %w", err)
	}

	s.session.Record(fmt.Sprintf("submitted %s record for %s", record.DataType, record.Company))

	return record, nil
}

func (s *recordService) ListRecords(ctx context.Context) ([]models.Record, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error during record listing: %w", err)
	}

	s.session.CacheRecords(records)

	return records, nil
}

func (s *recordService) SearchRecords(ctx context.Context, query models.SearchQuery) ([]models.Record, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error during record search: %w", err)
	}

	matched := make([]models.Record, 0, len(records))
	for _, record := range records {
		if matches(record, query) {
			matched = append(matched, record)
		}
	}

	return matched, nil
}

func (s *recordService) Stats(ctx context.Context) (models.Stats, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return models.Stats{}, fmt.Errorf("error during stats aggregation: %w", err)
	}

	stats := models.Stats{Total: len(records)}
	for _, record := range records {
		switch record.Status {
		case models.StatusVerified:
			stats.Verified++
		case models.StatusRejected:
			stats.Rejected++
		default:
			stats.Pending++
		}
	}

	return stats, nil
}

func (s *recordService) VerifyRecord(ctx context.Context, id, actor string) ([]models.Record, error) {
	records, err := s.flow.Verify(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	s.session.Record(fmt.Sprintf("verified record %s", id))
	s.session.CacheRecords(records)

	return records, nil
}

func (s *recordService) RejectRecord(ctx context.Context, id, actor string) ([]models.Record, error) {
	records, err := s.flow.Reject(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	s.session.Record(fmt.Sprintf("rejected record %s", id))
	s.session.CacheRecords(records)

	return records, nil
}

func (s *recordService) DecryptRecord(ctx context.Context, id string) (float64, error) {
	record, err := s.records.Get(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("error during record fetch for decryption: %w", err)
	}
	if record == nil {
		return 0, store.ErrNotFound
	}

	return s.gate.RequestDecryption(ctx, *record, s.signer)
}

func (s *recordService) History(ctx context.Context) []string {
	return s.session.History()
}

// matches applies every non-empty query field; Text matches the record id
// and the company name, ignoring case.
func matches(record models.Record, query models.SearchQuery) bool {
	if query.DataType != "" && record.DataType != query.DataType {
		return false
	}
	if query.Status != "" && record.Status != query.Status {
		return false
	}
	if query.Text != "" {
		needle := strings.ToLower(query.Text)
		if !strings.Contains(strings.ToLower(record.ID), needle) &&
			!strings.Contains(strings.ToLower(record.Company), needle) {
			return false
		}
	}
	return true
}
