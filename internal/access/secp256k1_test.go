package access

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeypairSigner_SignMessage_CompactRSV(t *testing.T) {
	signer, err := NewKeypairSigner()
	require.NoError(t, err)

	signature, err := signer.SignMessage(context.Background(), "publickey:pk\ncontractAddresses:0xA\ncontractsChainId:1\nstartTimestamp:2\ndurationDays:30")
	require.NoError(t, err)

	assert.Len(t, signature, 65, "compact R(32) S(32) V(1) packing")
}

func TestKeypairSigner_PublicKeyHex(t *testing.T) {
	signer, err := NewKeypairSigner()
	require.NoError(t, err)

	pk := signer.PublicKeyHex()
	require.NotEmpty(t, pk)

	_, err = hex.DecodeString(pk)
	assert.NoError(t, err, "public key material must be valid hex")
}

func TestKeypairSigner_Address_ZeroXPrefixed(t *testing.T) {
	signer, err := NewKeypairSigner()
	require.NoError(t, err)

	address := signer.Address()
	assert.Len(t, address, 42)
	assert.Equal(t, "0x", address[:2])
}

func TestKeypairSigner_DistinctKeysDistinctAddresses(t *testing.T) {
	a, err := NewKeypairSigner()
	require.NoError(t, err)
	b, err := NewKeypairSigner()
	require.NoError(t, err)

	assert.NotEqual(t, a.Address(), b.Address())
}
