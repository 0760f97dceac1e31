package gateway

import (
	"errors"
	"fmt"

	"github.com/vaultsandbox/gateway-sub002/internal/crypto"
)

// Sentinel errors for errors.Is() checks. Each protocol failure maps to
// exactly one of these; all are terminal per call with no internal retry.
var (
	// ErrInvalidPayload is returned when the payload structure is invalid:
	// malformed JSON, missing required fields, an unsupported protocol
	// version, or an unrecognized algorithm suite.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrEncoding is returned when a wire field is not canonical base64url
	// or decodes to the wrong mandated size.
	ErrEncoding = errors.New("invalid field encoding")

	// ErrSignerMismatch is returned when the payload's claimed signer
	// differs from the caller's pinned key. Treat as a possible
	// substitution attack.
	ErrSignerMismatch = errors.New("signer public key mismatch")

	// ErrSignatureInvalid is returned when the transcript signature fails
	// verification. The payload is tampered and is never decrypted.
	ErrSignatureInvalid = errors.New("signature verification failed")

	// ErrKeyDerivation is returned when key derivation inputs are
	// structurally invalid.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrDecryptionFailed is returned when AEAD authentication fails:
	// tampered ciphertext or AAD, or a wrong key from a decapsulation
	// mismatch.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrStructuredData is returned when plaintext decrypted successfully
	// but failed caller-imposed parsing. Never conflated with the
	// cryptographic errors above.
	ErrStructuredData = errors.New("structured data parsing failed")

	// ErrInvalidKey is returned when a caller-supplied key has the wrong
	// size for the configured algorithm suite.
	ErrInvalidKey = errors.New("invalid key")
)

// SignatureVerificationError describes a failed authenticity check. It
// distinguishes a pinned-key mismatch (the claimed signer differs from the
// caller's expectation) from a cryptographically invalid signature.
type SignatureVerificationError struct {
	// Message describes the failure.
	Message string
	// IsKeyMismatch is true when the payload's signer key differs from the
	// pinned key, false when the transcript signature itself is invalid.
	IsKeyMismatch bool
}

func (e *SignatureVerificationError) Error() string {
	return e.Message
}

// Unwrap maps the error to [ErrSignerMismatch] or [ErrSignatureInvalid]
// so errors.Is() checks work.
func (e *SignatureVerificationError) Unwrap() error {
	if e.IsKeyMismatch {
		return ErrSignerMismatch
	}
	return ErrSignatureInvalid
}

// wrapCryptoError converts internal crypto errors to the public taxonomy
// so that errors.Is() checks work correctly.
func wrapCryptoError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, crypto.ErrServerKeyMismatch):
		return &SignatureVerificationError{Message: err.Error(), IsKeyMismatch: true}
	case errors.Is(err, crypto.ErrSignatureVerificationFailed):
		return &SignatureVerificationError{Message: err.Error(), IsKeyMismatch: false}
	case errors.Is(err, crypto.ErrInvalidEncoding), errors.Is(err, crypto.ErrInvalidSize):
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	case errors.Is(err, crypto.ErrInvalidSharedSecretSize):
		return fmt.Errorf("%w: %v", ErrKeyDerivation, err)
	case errors.Is(err, crypto.ErrDecryptionFailed):
		return ErrDecryptionFailed
	case errors.Is(err, crypto.ErrInvalidAlgorithm):
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	case errors.Is(err, crypto.ErrInvalidSecretKeySize),
		errors.Is(err, crypto.ErrInvalidPublicKeySize),
		errors.Is(err, crypto.ErrInvalidSigningKeySize):
		return fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return err
}
