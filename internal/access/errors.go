package access

import "errors"

var (
	// ErrSignerDeclined is returned when the signer capability refuses or
	// fails to sign the decryption challenge. The gate never retries.
	ErrSignerDeclined = errors.New("signer declined the decryption challenge")
)
