// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package access

import "fmt"

// Challenge is the deterministic, canonically-ordered set of fields a
// signer must sign before a record value is released. It is built fresh
// per decryption attempt and never persisted.
type Challenge struct {
	// PublicKey is the hex-encoded public key material of the session.
	PublicKey string

	// ContractAddress is the target contract the ledger lives behind.
	ContractAddress string

	// ChainID identifies the chain the contract is deployed on.
	ChainID int64

	// StartTimestamp is the validity window start, unix seconds.
	StartTimestamp int64

	// DurationDays is the validity window length.
	DurationDays int
}

// Message renders the canonical challenge text. Field order and naming are
// fixed wire format: any reordering or omission breaks compatibility with
// verifiers expecting this exact form.
func (c Challenge) Message() string {
	return fmt.Sprintf(
		"publickey:%s\ncontractAddresses:%s\ncontractsChainId:%d\nstartTimestamp:%d\ndurationDays:%d",
		c.PublicKey,
		c.ContractAddress,
		c.ChainID,
		c.StartTimestamp,
		c.DurationDays,
	)
}
