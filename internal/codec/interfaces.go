// Package codec implements the reversible transform between a numeric
// plaintext and the opaque string payload stored in the ledger.
//
// The default Mask codec hides values from casual display only; it is a
// reversible obfuscation, not a cryptosystem. The Sealed codec is the
// drop-in alternative that actually encrypts the payload. Both satisfy the
// same interface so the record store and access gate never need to know
// which one is in use.
package codec

// Codec encodes a numeric plaintext into an opaque payload string and
// decodes it back.
//
// Encode must be deterministic and total over finite numbers.
// Decode is the inverse of Encode for any payload Encode produced; for any
// other input it falls back to a best-effort numeric parse and returns NaN
// on failure. Decode never fails with an error.
type Codec interface {
	Encode(plaintext float64) string
	Decode(payload string) float64
}
