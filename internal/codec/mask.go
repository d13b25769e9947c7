package codec

import (
	"encoding/base64"
	"math"
	"strconv"
	"strings"
)

// maskPrefix marks payloads produced by the mask codec.
const maskPrefix = "FHE-"

// maskCodec hides the decimal rendering of the plaintext behind base64.
// Trivially invertible by anyone; the point is to keep the value out of
// casual display until the access gate releases it.
type maskCodec struct{}

// NewMask returns the default payload codec.
func NewMask() Codec {
	return maskCodec{}
}

// Encode implements [Codec]. The payload is the "FHE-" prefix followed by
// the base64 encoding of the shortest decimal rendering of plaintext.
func (maskCodec) Encode(plaintext float64) string {
	text := strconv.FormatFloat(plaintext, 'g', -1, 64)
	return maskPrefix + base64.StdEncoding.EncodeToString([]byte(text))
}

// Decode implements [Codec]. Payloads carrying the mask prefix are base64
// decoded and parsed; anything else is parsed as a bare number. Garbage in
// either branch yields NaN, never an error.
func (maskCodec) Decode(payload string) float64 {
	if strings.HasPrefix(payload, maskPrefix) {
		decoded, err := base64.StdEncoding.DecodeString(payload[len(maskPrefix):])
		if err != nil {
			return math.NaN()
		}
		return parseNumber(string(decoded))
	}
	return parseNumber(payload)
}

func parseNumber(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
