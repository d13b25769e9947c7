// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service composes the record store, workflow state machine,
// access gate and session state behind a single application-facing API.
// Handlers talk to this package only.
package service

import (
	"context"

	"github.com/MKhiriev/insider-vault/internal/access"
	"github.com/MKhiriev/insider-vault/models"
)

// RecordService is the full record lifecycle surface: submission, listing,
// search, workflow transitions, gated decryption and caller history.
type RecordService interface {
	SubmitRecord(ctx context.Context, req models.SubmitRequest) (models.Record, error)

	ListRecords(ctx context.Context) ([]models.Record, error)
	SearchRecords(ctx context.Context, query models.SearchQuery) ([]models.Record, error)
	Stats(ctx context.Context) (models.Stats, error)

	VerifyRecord(ctx context.Context, id, actor string) ([]models.Record, error)
	RejectRecord(ctx context.Context, id, actor string) ([]models.Record, error)

	DecryptRecord(ctx context.Context, id string) (float64, error)

	History(ctx context.Context) []string
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Workflow is the slice of the state machine the service needs.
type Workflow interface {
	Verify(ctx context.Context, id, actor string) ([]models.Record, error)
	Reject(ctx context.Context, id, actor string) ([]models.Record, error)
}

// DecryptionGate releases plaintext values after a successful signature
// challenge.
type DecryptionGate interface {
	RequestDecryption(ctx context.Context, record models.Record, signer access.Signer) (float64, error)
}

// Activity is caller-local session state: the audit history and the record
// cache backing dependent views.
type Activity interface {
	Record(entry string)
	History() []string
	CacheRecords(records []models.Record)
}

// RecordServiceWrapper defines middleware composition for RecordService.
// Implementations wrap an existing RecordService to add behavior such as
// logging or validating.
type RecordServiceWrapper interface {
	Wrap(RecordService) RecordService // returns a decorated RecordService applying additional behavior
}
