// Package aead exposes IETF ChaCha20-Poly1305 (RFC 8439) authenticated
// encryption as a narrow boundary surface for host callers.
//
// The package contains no cipher or MAC logic of its own. All cryptographic
// work is delegated to a Provider; the default provider wraps
// golang.org/x/crypto/chacha20poly1305. The adapter's job is argument
// validation, one-time provider initialization, and translation between
// caller-supplied buffers and the provider's call shape.
//
// Nonce uniqueness is the caller's responsibility: a nonce must never be
// reused with the same key.
package aead
