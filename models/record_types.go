// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DataType defines the category of insider information carried by a record.
// The set is closed; values outside it are rejected at submission time.
type DataType string

const (
	// Earnings represents an earnings report ahead of publication.
	Earnings DataType = "earnings"

	// Merger represents merger or acquisition information.
	Merger DataType = "merger"

	// Product represents an unannounced product launch.
	Product DataType = "product"

	// Regulation represents a pending regulation change.
	Regulation DataType = "regulation"
)

// KnownDataType reports whether t is one of the fixed record categories.
func KnownDataType(t DataType) bool {
	switch t {
	case Earnings, Merger, Product, Regulation:
		return true
	}
	return false
}

// Status is the verification workflow state of a record.
//
// A record starts as StatusPending and moves exactly once to
// StatusVerified or StatusRejected by its owner. Both of those states are
// terminal; no further transition is legal afterwards.
type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusRejected Status = "rejected"
)

// Terminal reports whether s permits no further workflow transitions.
func (s Status) Terminal() bool {
	return s == StatusVerified || s == StatusRejected
}
