package codec

import (
	"encoding/base64"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMask_RoundTrip(t *testing.T) {
	c := NewMask()

	for _, v := range []float64{
		0, 1, -1, 42.5, 0.01, -273.15,
		1234567.89, 1e18, -1e-18,
		math.MaxFloat64, math.SmallestNonzeroFloat64,
	} {
		assert.Equal(t, v, c.Decode(c.Encode(v)), "round trip for %v", v)
	}
}

func TestMask_Encode_Deterministic(t *testing.T) {
	c := NewMask()
	assert.Equal(t, c.Encode(42.5), c.Encode(42.5))
}

func TestMask_Encode_PrefixAndBase64(t *testing.T) {
	c := NewMask()

	payload := c.Encode(42.5)
	require.True(t, strings.HasPrefix(payload, "FHE-"))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(payload, "FHE-"))
	require.NoError(t, err)
	assert.Equal(t, "42.5", string(decoded))
}

func TestMask_Decode_BarePlainNumber(t *testing.T) {
	c := NewMask()
	assert.Equal(t, 17.25, c.Decode("17.25"))
}

func TestMask_Decode_GarbageReturnsNaN(t *testing.T) {
	c := NewMask()

	for _, payload := range []string{
		"",
		"not a number",
		"FHE-%%%not-base64%%%",
		"FHE-" + base64.StdEncoding.EncodeToString([]byte("still not a number")),
	} {
		assert.True(t, math.IsNaN(c.Decode(payload)), "payload %q", payload)
	}
}

func TestMask_Decode_NeverPanics(t *testing.T) {
	c := NewMask()
	assert.NotPanics(t, func() {
		c.Decode("FHE-")
		c.Decode("FHE")
		c.Decode("\x00\xff")
	})
}
