package access

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/hyperledger/firefly-signer/pkg/secp256k1"
)

// keypairSigner signs challenges with a local secp256k1 key pair. It is
// the in-process stand-in for an external wallet: same curve, same compact
// R‖S‖V signature encoding.
type keypairSigner struct {
	keypair *secp256k1.KeyPair
}

// NewKeypairSigner generates a fresh secp256k1 key pair and returns a
// signer over it.
func NewKeypairSigner() (*keypairSigner, error) { //nolint:revive
	keypair, err := secp256k1.GenerateSecp256k1KeyPair()
	if err != nil {
		return nil, fmt.Errorf("generate signer keypair: %w", err)
	}
	return &keypairSigner{keypair: keypair}, nil
}

// SignMessage implements [Signer]. The signature is the 65-byte compact
// R (32) ‖ S (32) ‖ V (1) packing over the raw message bytes.
func (s *keypairSigner) SignMessage(ctx context.Context, message string) ([]byte, error) {
	sig, err := s.keypair.SignDirect([]byte(message))
	if err != nil {
		return nil, fmt.Errorf("sign challenge: %w", err)
	}

	signature := make([]byte, 65)
	sig.R.FillBytes(signature[0:32])
	sig.S.FillBytes(signature[32:64])
	signature[64] = byte(sig.V.Int64())
	return signature, nil
}

// PublicKeyHex returns the hex encoding of the signer's public key, used
// as the challenge's public key material.
func (s *keypairSigner) PublicKeyHex() string {
	return hex.EncodeToString(s.keypair.PublicKeyBytes())
}

// Address returns the 0x-prefixed account address derived from the key
// pair; it doubles as the owner identity of records this signer submits.
func (s *keypairSigner) Address() string {
	return s.keypair.Address.String()
}
