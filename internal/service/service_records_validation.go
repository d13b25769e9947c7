// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/insider-vault/internal/validators"
	"github.com/MKhiriev/insider-vault/models"
)

// RecordValidationService guards SubmitRecord with the record validator;
// every other call passes straight through to the wrapped service.
type RecordValidationService struct {
	inner     RecordService
	validator validators.Validator
}

func NewRecordValidationService() RecordServiceWrapper {
	return &RecordValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *RecordValidationService) SubmitRecord(ctx context.Context, req models.SubmitRequest) (models.Record, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Record{}, fmt.Errorf("error during record validation before submission: %w", err)
	}

	return v.inner.SubmitRecord(ctx, req)
}

func (v *RecordValidationService) ListRecords(ctx context.Context) ([]models.Record, error) {
	return v.inner.ListRecords(ctx)
}

func (v *RecordValidationService) SearchRecords(ctx context.Context, query models.SearchQuery) ([]models.Record, error) {
	return v.inner.SearchRecords(ctx, query)
}

func (v *RecordValidationService) Stats(ctx context.Context) (models.Stats, error) {
	return v.inner.Stats(ctx)
}

func (v *RecordValidationService) VerifyRecord(ctx context.Context, id, actor string) ([]models.Record, error) {
	return v.inner.VerifyRecord(ctx, id, actor)
}

func (v *RecordValidationService) RejectRecord(ctx context.Context, id, actor string) ([]models.Record, error) {
	return v.inner.RejectRecord(ctx, id, actor)
}

func (v *RecordValidationService) DecryptRecord(ctx context.Context, id string) (float64, error) {
	return v.inner.DecryptRecord(ctx, id)
}

func (v *RecordValidationService) History(ctx context.Context) []string {
	return v.inner.History(ctx)
}

func (v *RecordValidationService) Wrap(inner RecordService) RecordService {
	v.inner = inner
	return v
}
