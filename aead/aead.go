package aead

import (
	"errors"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// KeySize is the length of a ChaCha20-Poly1305 key in bytes.
	KeySize = chacha20poly1305.KeySize
	// NonceSize is the length of an IETF ChaCha20-Poly1305 nonce in bytes.
	NonceSize = chacha20poly1305.NonceSize
	// TagSize is the length of the Poly1305 authentication tag in bytes.
	TagSize = chacha20poly1305.Overhead
)

var (
	ErrInvalidArgument = errors.New("aead: invalid argument")
	ErrAuthentication  = errors.New("aead: message authentication failed")
	ErrInitialization  = errors.New("aead: provider initialization failed")
)

// Adapter translates between caller-supplied buffers and a Provider.
// Every operation is stateless; the only shared state is the one-time
// initialization flag. The zero value is not usable; use New.
type Adapter struct {
	provider Provider
	initOnce sync.Once
	initErr  error
}

// New returns an Adapter backed by p.
func New(p Provider) *Adapter {
	return &Adapter{provider: p}
}

var std = New(chachaProvider{})

// init runs the provider's one-time initialization. The result is latched:
// once initialization fails, every subsequent call fails the same way.
func (a *Adapter) init() error {
	a.initOnce.Do(func() {
		a.initErr = a.provider.Init()
	})
	if a.initErr != nil {
		return ErrInitialization
	}
	return nil
}

// Encrypt seals plaintext and additionalData under (key, nonce) into dst and
// returns the number of ciphertext bytes written, always
// len(plaintext)+TagSize on success. len(dst) is the buffer capacity and
// must be at least len(plaintext)+TagSize. dst must not overlap plaintext or
// additionalData.
//
// Encryption is deterministic in (key, nonce, plaintext, additionalData);
// nonce uniqueness is the caller's policy.
func (a *Adapter) Encrypt(dst, plaintext, additionalData, nonce, key []byte) (int, error) {
	if len(key) != KeySize || len(nonce) != NonceSize {
		return 0, ErrInvalidArgument
	}
	if len(dst) < len(plaintext)+TagSize {
		return 0, ErrInvalidArgument
	}
	if err := a.init(); err != nil {
		return 0, err
	}
	out, err := a.provider.Seal(dst[:0], nonce, plaintext, additionalData, key)
	if err != nil {
		return 0, ErrInvalidArgument
	}
	return len(out), nil
}

// Decrypt verifies and opens ciphertext into dst and returns the number of
// plaintext bytes written, always len(ciphertext)-TagSize on success.
// len(dst) is the buffer capacity and must be at least
// len(ciphertext)-TagSize. On ErrAuthentication no plaintext is released:
// the returned length is 0 and the contents of dst are undefined.
func (a *Adapter) Decrypt(dst, ciphertext, additionalData, nonce, key []byte) (int, error) {
	if len(key) != KeySize || len(nonce) != NonceSize {
		return 0, ErrInvalidArgument
	}
	if len(ciphertext) < TagSize {
		return 0, ErrInvalidArgument
	}
	if len(dst) < len(ciphertext)-TagSize {
		return 0, ErrInvalidArgument
	}
	if err := a.init(); err != nil {
		return 0, err
	}
	out, err := a.provider.Open(dst[:0], nonce, ciphertext, additionalData, key)
	if err != nil {
		return 0, ErrAuthentication
	}
	return len(out), nil
}

// Encrypt seals using the package-default ChaCha20-Poly1305 provider.
func Encrypt(dst, plaintext, additionalData, nonce, key []byte) (int, error) {
	return std.Encrypt(dst, plaintext, additionalData, nonce, key)
}

// Decrypt opens using the package-default ChaCha20-Poly1305 provider.
func Decrypt(dst, ciphertext, additionalData, nonce, key []byte) (int, error) {
	return std.Decrypt(dst, ciphertext, additionalData, nonce, key)
}
