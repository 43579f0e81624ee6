// Package bind mirrors the adapter as a flat, C-shaped call surface for
// host runtimes: raw buffers, out-parameter lengths, and integer status
// codes.
package bind

import (
	"github.com/sealgate/sealgate/aead"
)

// Status codes returned across the boundary. Failure is a single code on
// purpose: callers learn that an operation failed, not why.
const (
	StatusOK      int32 = 0
	StatusFailure int32 = -1
)

// Encrypt seals message and additionalData under (key, nonce) into
// ciphertext and stores the ciphertext length through ciphertextLen.
// On failure nothing is stored and the ciphertext buffer is undefined.
func Encrypt(ciphertext []byte, ciphertextLen *uint64, message, additionalData, nonce, key []byte) int32 {
	n, err := aead.Encrypt(ciphertext, message, additionalData, nonce, key)
	if err != nil {
		return StatusFailure
	}
	if ciphertextLen != nil {
		*ciphertextLen = uint64(n)
	}
	return StatusOK
}

// Decrypt verifies and opens ciphertext into message and stores the message
// length through messageLen. On failure nothing is stored and no plaintext
// is released.
func Decrypt(message []byte, messageLen *uint64, ciphertext, additionalData, nonce, key []byte) int32 {
	n, err := aead.Decrypt(message, ciphertext, additionalData, nonce, key)
	if err != nil {
		return StatusFailure
	}
	if messageLen != nil {
		*messageLen = uint64(n)
	}
	return StatusOK
}

// KeyBytes returns the key length in bytes.
func KeyBytes() uint64 { return aead.KeySize }

// NonceBytes returns the nonce length in bytes.
func NonceBytes() uint64 { return aead.NonceSize }

// TagBytes returns the authentication tag length in bytes.
func TagBytes() uint64 { return aead.TagSize }
