package crypto

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DerivePayloadKey derives the 32-byte AEAD key for a single payload.
//
// The derivation uses:
//   - IKM: the KEM shared secret
//   - Salt: SHA-256 hash of the KEM ciphertext, binding the key to this
//     specific encapsulation so no two payloads ever share a derived key
//   - Info: context || aad_length (4 bytes BE) || aad, binding the key to
//     the exact AAD bytes so AAD cannot be swapped onto a valid ciphertext
//     without failing AEAD authentication
func DerivePayloadKey(sharedSecret, aad, ctKem []byte, context string) ([]byte, error) {
	if len(sharedSecret) != MLKEMSharedKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSharedSecretSize, len(sharedSecret), MLKEMSharedKeySize)
	}

	saltHash := sha256.Sum256(ctKem)
	salt := saltHash[:]

	aadLength := make([]byte, 4)
	binary.BigEndian.PutUint32(aadLength, uint32(len(aad)))

	info := make([]byte, 0, len(context)+4+len(aad))
	info = append(info, context...)
	info = append(info, aadLength...)
	info = append(info, aad...)

	return DeriveKey(sharedSecret, salt, info, AESKeySize)
}

// DeriveKey derives a key using HKDF-SHA-512.
//
// Parameters:
//   - secret: the input key material (e.g., shared secret from KEM)
//   - salt: optional salt value; if empty, a zero-filled salt is used
//   - info: context/application-specific info for domain separation
//   - length: desired output key length in bytes
func DeriveKey(secret, salt, info []byte, length int) ([]byte, error) {
	if len(salt) == 0 {
		salt = make([]byte, sha512.Size)
	}

	reader := hkdf.New(sha512.New, secret, salt, info)
	key := make([]byte, length)

	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return key, nil
}
