package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// newGCM builds an AES-256-GCM instance after validating the key size.
func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != AESKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), AESKeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}

// sealAESGCM encrypts plaintext with AES-256-GCM, returning ciphertext with
// the 16-byte authentication tag appended.
func sealAESGCM(key, nonce, aad, plaintext []byte) ([]byte, error) {
	if len(nonce) != AESNonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), AESNonceSize)
	}

	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	return aesGCM.Seal(nil, nonce, plaintext, aad), nil
}

// openAESGCM decrypts AES-256-GCM ciphertext. Authentication failure is
// reported as [ErrDecryptionFailed] with no further detail: tag mismatch
// and a wrong key from a decapsulation mismatch are indistinguishable.
func openAESGCM(key, nonce, aad, ciphertext []byte) ([]byte, error) {
	if len(nonce) != AESNonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), AESNonceSize)
	}

	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

// newNonce returns a fresh random AES-GCM nonce. Each payload is encrypted
// under a key derived from a fresh KEM encapsulation, so a random nonce per
// call keeps every (key, nonce) pair unique.
func newNonce() ([]byte, error) {
	r := io.Reader(rand.Reader)
	if randReader != nil {
		r = randReader
	}

	nonce := make([]byte, AESNonceSize)
	if _, err := io.ReadFull(r, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return nonce, nil
}
