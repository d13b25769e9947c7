// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"math"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

// sealedPrefix marks payloads produced by the sealed codec.
const sealedPrefix = "SLD-"

// sealedCodec encrypts the decimal rendering of the plaintext with
// AES-256-GCM under a key derived from a passphrase via Argon2id.
//
// The GCM nonce is derived from the key and the plaintext rendering, so
// Encode stays deterministic: equal plaintexts produce equal payloads.
type sealedCodec struct {
	key []byte
}

// NewSealed derives a 256-bit key from passphrase and salt using Argon2id
// with the OWASP-recommended parameters (1 iteration, 64 MiB, 4 threads)
// and returns a [Codec] sealing payloads under that key.
func NewSealed(passphrase string, salt []byte) Codec {
	key := argon2.IDKey([]byte(passphrase), salt, 1, 64*1024, 4, 32)
	return &sealedCodec{key: key}
}

// Encode implements [Codec].
func (s *sealedCodec) Encode(plaintext float64) string {
	text := []byte(strconv.FormatFloat(plaintext, 'g', -1, 64))

	gcm, err := s.gcm()
	if err != nil {
		// A 32-byte key never fails cipher construction; keep Encode total.
		return sealedPrefix
	}

	nonce := s.nonce(text, gcm.NonceSize())
	ciphertext := gcm.Seal(nil, nonce, text, nil)
	blob := append(nonce, ciphertext...)

	return sealedPrefix + base64.StdEncoding.EncodeToString(blob)
}

// Decode implements [Codec]. A payload without the sealed prefix, with a
// corrupted blob, or sealed under a different key yields NaN.
func (s *sealedCodec) Decode(payload string) float64 {
	if !strings.HasPrefix(payload, sealedPrefix) {
		return parseNumber(payload)
	}

	blob, err := base64.StdEncoding.DecodeString(payload[len(sealedPrefix):])
	if err != nil {
		return math.NaN()
	}

	gcm, err := s.gcm()
	if err != nil {
		return math.NaN()
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return math.NaN()
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	text, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return math.NaN()
	}

	return parseNumber(string(text))
}

func (s *sealedCodec) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// nonce derives the GCM nonce from the key and the plaintext rendering.
func (s *sealedCodec) nonce(text []byte, size int) []byte {
	h := sha256.New()
	h.Write(s.key)
	h.Write(text)
	return h.Sum(nil)[:size]
}
