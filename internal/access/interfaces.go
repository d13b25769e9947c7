// Package access gates the release of decoded record values behind an
// out-of-band signature. The signature never feeds the decoding itself;
// it proves current control of the owning identity before the plaintext
// is revealed, emulating the authorization step a true-decryption backend
// would require.
package access

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/signer_mock.go -package=mock

// Signer produces a signature over the exact challenge message text.
// A declining user or failing wallet surfaces as an error.
type Signer interface {
	SignMessage(ctx context.Context, message string) ([]byte, error)
}

// ActivityRecorder receives human-readable audit entries for caller-local
// history. It is deliberately not part of the persisted ledger state.
type ActivityRecorder interface {
	Record(entry string)
}
