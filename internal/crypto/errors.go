package crypto

import "errors"

var (
	// ErrInvalidEncoding is returned when a wire field is not canonical
	// base64url (contains '+', '/' or '=', or fails to decode).
	ErrInvalidEncoding = errors.New("invalid base64url encoding")

	// ErrInvalidSize is returned when a decoded field has an incorrect size.
	ErrInvalidSize = errors.New("invalid size")

	// ErrInvalidSecretKeySize is returned when a KEM secret key size is invalid.
	ErrInvalidSecretKeySize = errors.New("invalid secret key size")

	// ErrInvalidPublicKeySize is returned when a KEM public key size is invalid.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidCiphertextSize is returned when a KEM ciphertext size is invalid.
	ErrInvalidCiphertextSize = errors.New("invalid ciphertext size")

	// ErrInvalidSigningKeySize is returned when an ML-DSA-65 secret key size
	// is invalid.
	ErrInvalidSigningKeySize = errors.New("invalid signing key size")

	// ErrInvalidSharedSecretSize is returned when key derivation is given a
	// shared secret whose length does not match the configured KEM.
	ErrInvalidSharedSecretSize = errors.New("invalid shared secret size")

	// ErrInvalidKeySize is returned when the AEAD key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the AEAD nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrSignatureVerificationFailed is returned when the transcript
	// signature fails verification. The payload must be treated as tampered
	// and never decrypted.
	ErrSignatureVerificationFailed = errors.New("signature verification failed")

	// ErrServerKeyMismatch is returned when the payload's signer public key
	// does not match the caller's pinned key.
	ErrServerKeyMismatch = errors.New("server public key mismatch: payload key differs from pinned key")

	// ErrDecryptionFailed is returned when AEAD authentication fails. This
	// covers both tampered ciphertext and the wrong-keypair case, where
	// implicit rejection in the KEM yields an unrelated shared secret.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidAlgorithm is returned when the payload declares a
	// ciphersuite this package does not implement.
	ErrInvalidAlgorithm = errors.New("invalid algorithm")
)
