package access

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChallenge_Message_CanonicalForm(t *testing.T) {
	c := Challenge{
		PublicKey:       "abcdef0123",
		ContractAddress: "0x1111111111111111111111111111111111111111",
		ChainID:         11155111,
		StartTimestamp:  1700000000,
		DurationDays:    30,
	}

	want := "publickey:abcdef0123\n" +
		"contractAddresses:0x1111111111111111111111111111111111111111\n" +
		"contractsChainId:11155111\n" +
		"startTimestamp:1700000000\n" +
		"durationDays:30"

	assert.Equal(t, want, c.Message())
}

func TestChallenge_Message_FieldOrderFixed(t *testing.T) {
	c := Challenge{PublicKey: "pk", ContractAddress: "0xA", ChainID: 1, StartTimestamp: 2, DurationDays: 3}

	lines := strings.Split(c.Message(), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "publickey:"))
	assert.True(t, strings.HasPrefix(lines[1], "contractAddresses:"))
	assert.True(t, strings.HasPrefix(lines[2], "contractsChainId:"))
	assert.True(t, strings.HasPrefix(lines[3], "startTimestamp:"))
	assert.True(t, strings.HasPrefix(lines[4], "durationDays:"))
}

func TestChallenge_Message_NoTrailingNewline(t *testing.T) {
	c := Challenge{}
	assert.False(t, strings.HasSuffix(c.Message(), "\n"))
}

func TestChallenge_Message_Deterministic(t *testing.T) {
	c := Challenge{PublicKey: "pk", ContractAddress: "0xA", ChainID: 5, StartTimestamp: 9, DurationDays: 30}
	assert.Equal(t, c.Message(), c.Message())
}
