// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyCompany    = errors.New("company is required")
	ErrEmptyOwner      = errors.New("owner is required")
	ErrInvalidDataType = errors.New("invalid data type")
	ErrInvalidValue    = errors.New("value must be a finite number")
)
