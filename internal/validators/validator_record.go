// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"strings"

	"github.com/MKhiriev/insider-vault/models"
)

const (
	FieldCompany  = "company"
	FieldOwner    = "owner"
	FieldDataType = "data_type"
	FieldValue    = "value"
)

type RecordValidator struct {
}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SubmitRequest:
		return v.validateSubmitRequest(ctx, value, fields...)
	case *models.SubmitRequest:
		return v.validateSubmitRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateSubmitRequest(_ context.Context, req models.SubmitRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCompany, FieldOwner, FieldDataType, FieldValue}
	}

	for _, field := range fields {
		switch field {
		case FieldCompany:
			if strings.TrimSpace(req.Company) == "" {
				return ErrEmptyCompany
			}
		case FieldOwner:
			if strings.TrimSpace(req.Owner) == "" {
				return ErrEmptyOwner
			}
		case FieldDataType:
			if !models.KnownDataType(req.DataType) {
				return ErrInvalidDataType
			}
		case FieldValue:
			if math.IsNaN(req.Value) || math.IsInf(req.Value, 0) {
				return ErrInvalidValue
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
