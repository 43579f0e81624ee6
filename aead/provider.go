package aead

import (
	"golang.org/x/crypto/chacha20poly1305"
)

// Provider supplies the IETF ChaCha20-Poly1305 construction the adapter
// delegates to. Implementations must verify tags in constant time and must
// tolerate Init being called on an already-initialized library.
type Provider interface {
	// Init performs any process-wide setup the library needs. The adapter
	// calls it at most once, before the first Seal or Open.
	Init() error

	// Seal appends the ciphertext and trailing tag for plaintext to dst and
	// returns the extended slice.
	Seal(dst, nonce, plaintext, additionalData, key []byte) ([]byte, error)

	// Open verifies the trailing tag and, on success, appends the plaintext
	// to dst. On tag mismatch it returns an error and releases no plaintext.
	Open(dst, nonce, ciphertext, additionalData, key []byte) ([]byte, error)
}

// chachaProvider backs the adapter with golang.org/x/crypto. The library
// needs no process-wide setup, so Init is trivial; the hook exists so
// another provider can be substituted without changing the adapter contract.
type chachaProvider struct{}

func (chachaProvider) Init() error { return nil }

func (chachaProvider) Seal(dst, nonce, plaintext, additionalData, key []byte) ([]byte, error) {
	c, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	return c.Seal(dst, nonce, plaintext, additionalData), nil
}

func (chachaProvider) Open(dst, nonce, ciphertext, additionalData, key []byte) ([]byte, error) {
	c, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	return c.Open(dst, nonce, ciphertext, additionalData)
}
