// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SubmitRequest carries everything needed to create a new record.
// Value is the numeric plaintext; it is encoded before it touches the
// ledger and never stored as given.
type SubmitRequest struct {
	Value    float64  `json:"value"`
	Company  string   `json:"company"`
	DataType DataType `json:"dataType"`
	Owner    string   `json:"owner"`
}

// SearchQuery narrows a record listing. Empty fields match everything.
type SearchQuery struct {
	// Text matches case-insensitively against record id and company name.
	Text string `json:"text"`

	// DataType restricts results to one category when non-empty.
	DataType DataType `json:"dataType"`

	// Status restricts results to one workflow state when non-empty.
	Status Status `json:"status"`
}

// Stats summarizes the workflow states across all visible records.
type Stats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Verified int `json:"verified"`
	Rejected int `json:"rejected"`
}
