package bind

import (
	"bytes"
	"testing"
)

func boundaryKey() []byte {
	key := make([]byte, KeyBytes())
	for i := range key {
		key[i] = byte(i * 7)
	}
	return key
}

func boundaryNonce() []byte {
	nonce := make([]byte, NonceBytes())
	nonce[0] = 0x07
	return nonce
}

func TestBoundaryRoundTrip(t *testing.T) {
	key, nonce := boundaryKey(), boundaryNonce()
	message := []byte("hello")
	ad := []byte("hdr")

	ciphertext := make([]byte, uint64(len(message))+TagBytes())
	var ciphertextLen uint64
	if status := Encrypt(ciphertext, &ciphertextLen, message, ad, nonce, key); status != StatusOK {
		t.Fatalf("Encrypt status = %d", status)
	}
	if ciphertextLen != uint64(len(message))+TagBytes() {
		t.Fatalf("ciphertext length = %d, want %d", ciphertextLen, uint64(len(message))+TagBytes())
	}

	recovered := make([]byte, len(message))
	var messageLen uint64
	if status := Decrypt(recovered, &messageLen, ciphertext[:ciphertextLen], ad, nonce, key); status != StatusOK {
		t.Fatalf("Decrypt status = %d", status)
	}
	if messageLen != uint64(len(message)) || !bytes.Equal(recovered[:messageLen], message) {
		t.Fatalf("recovered %q, want %q", recovered[:messageLen], message)
	}
}

func TestFailureLeavesOutLengthUntouched(t *testing.T) {
	key, nonce := boundaryKey(), boundaryNonce()
	message := []byte("hello")

	ciphertext := make([]byte, uint64(len(message))+TagBytes())
	var ciphertextLen uint64
	if status := Encrypt(ciphertext, &ciphertextLen, message, nil, nonce, key); status != StatusOK {
		t.Fatalf("Encrypt status = %d", status)
	}

	ciphertext[2] ^= 0x80
	recovered := make([]byte, len(message))
	const sentinel = uint64(0xdeadbeef)
	messageLen := sentinel
	if status := Decrypt(recovered, &messageLen, ciphertext[:ciphertextLen], nil, nonce, key); status != StatusFailure {
		t.Fatalf("Decrypt of tampered ciphertext: status = %d, want %d", status, StatusFailure)
	}
	if messageLen != sentinel {
		t.Fatalf("out length written on failure: %d", messageLen)
	}

	ciphertextLen = sentinel
	if status := Encrypt(ciphertext, &ciphertextLen, message, nil, nonce, key[:16]); status != StatusFailure {
		t.Fatalf("Encrypt with short key: status = %d, want %d", status, StatusFailure)
	}
	if ciphertextLen != sentinel {
		t.Fatalf("out length written on failure: %d", ciphertextLen)
	}
}

func TestConstants(t *testing.T) {
	if KeyBytes() != 32 {
		t.Fatalf("KeyBytes() = %d, want 32", KeyBytes())
	}
	if NonceBytes() != 12 {
		t.Fatalf("NonceBytes() = %d, want 12", NonceBytes())
	}
	if TagBytes() != 16 {
		t.Fatalf("TagBytes() = %d, want 16", TagBytes())
	}
}

func TestProbes(t *testing.T) {
	if got := Add(2, 3); got != 5 {
		t.Fatalf("Add(2, 3) = %d", got)
	}
	if got := Add(0xffffffff, 1); got != 0 {
		t.Fatalf("Add wraparound = %d, want 0", got)
	}
	if got := Probe(); got != StatusOK {
		t.Fatalf("Probe() = %d", got)
	}
}
