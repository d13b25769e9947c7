// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Record represents a single confidential insider record stored in the
// ledger. The numeric payload is kept encoded at rest and in transit;
// only the access gate may turn it back into a plaintext value.
type Record struct {
	// ID is the opaque record identifier. It is assigned once at creation
	// and never reused; the ledger key for the record is derived from it.
	ID string `json:"id"`

	// EncodedValue is the codec output hiding the numeric plaintext.
	// The database-side representation is an opaque string.
	EncodedValue string `json:"value"`

	// CreatedAt is the creation time as unix seconds. Immutable once set.
	CreatedAt int64 `json:"timestamp"`

	// Owner is the identity string of the record creator. Immutable.
	// Ownership comparisons are case-insensitive.
	Owner string `json:"owner"`

	// Company is the free-text company name the record refers to.
	Company string `json:"company"`

	// DataType is the record category (earnings, merger, product, regulation).
	DataType DataType `json:"dataType"`

	// Status is the verification workflow state of the record.
	Status Status `json:"status"`
}

// IsOwnedBy reports whether identity is the record owner.
// The comparison ignores case, matching how hex account identities are
// rendered inconsistently by different wallets.
func (r Record) IsOwnedBy(identity string) bool {
	return strings.EqualFold(r.Owner, identity)
}
