package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/vaultsandbox/gateway-sub002/internal/crypto"
)

// DefaultContext is the domain-separation tag used when no [WithContext]
// option is given. Encrypting and decrypting sides must use the same tag.
const DefaultContext = crypto.DefaultContext

// protocolConfig holds configuration for the protocol.
type protocolConfig struct {
	context        string
	pinnedSignerPK []byte
}

// Option configures the protocol.
type Option func(*protocolConfig)

// WithContext sets the domain-separation context string mixed into the
// signed transcript and the key derivation. It must be identical between
// encrypt and decrypt; changing it is effectively a protocol version bump.
func WithContext(context string) Option {
	return func(c *protocolConfig) {
		c.context = context
	}
}

// WithPinnedSignerKey sets a default pinned signer public key (raw
// ML-DSA-65 bytes) enforced by every [Protocol.Decrypt] call. Payloads
// claiming any other signer fail with [ErrSignerMismatch] before any
// cryptography runs.
func WithPinnedSignerKey(publicKey []byte) Option {
	return func(c *protocolConfig) {
		c.pinnedSignerPK = publicKey
	}
}

// Protocol performs authenticated encryption and decryption of payloads.
//
// It holds no state between calls beyond its configuration: operations are
// pure functions of their inputs, and calls for distinct payloads are safe
// to run concurrently. Every call is all-or-nothing; a failed call leaves
// no partial result behind.
type Protocol struct {
	config protocolConfig
}

// NewProtocol creates a protocol instance. Without options it uses
// [DefaultContext] and no pinned signer key (trust-on-first-use
// pass-through: the payload's own signer key is trusted and the signature
// verified against it).
func NewProtocol(opts ...Option) *Protocol {
	config := protocolConfig{context: DefaultContext}
	for _, opt := range opts {
		opt(&config)
	}
	return &Protocol{config: config}
}

// Encrypt protects plaintext for the recipient public key and signs the
// transcript with the sender's signing secret key. aad may be nil; when
// present it is authenticated but not encrypted, and it is bound into both
// the signed transcript and the derived key.
func (p *Protocol) Encrypt(plaintext, recipientPublicKey, signingSecretKey, aad []byte) (*EncryptedPayload, error) {
	payload, err := crypto.Encrypt(plaintext, recipientPublicKey, signingSecretKey, p.config.context, aad)
	if err != nil {
		return nil, wrapCryptoError(err)
	}
	return payloadFromInternal(payload), nil
}

// Decrypt verifies and decrypts a payload with the recipient secret key,
// enforcing the configured pinned signer key if one was set.
//
// Verification is a hard gate: a payload whose transcript signature fails
// is reported as [ErrSignatureInvalid] and never decapsulated or
// decrypted. AEAD authentication failures — tampering after signing, or a
// secret key from an unrelated keypair — are [ErrDecryptionFailed].
func (p *Protocol) Decrypt(payload *EncryptedPayload, recipientSecretKey []byte) ([]byte, error) {
	return p.DecryptWithSignerKey(payload, recipientSecretKey, p.config.pinnedSignerPK)
}

// DecryptWithSignerKey is [Protocol.Decrypt] with a per-call pinned signer
// key, overriding the configured default. A nil expectedSignerPublicKey
// skips the pinning gate; the payload's own signer key is then trusted and
// the signature still verified against it. Callers implementing
// trust-on-first-use supply the previously observed key here and own its
// caching and invalidation.
func (p *Protocol) DecryptWithSignerKey(payload *EncryptedPayload, recipientSecretKey, expectedSignerPublicKey []byte) ([]byte, error) {
	if payload == nil {
		return nil, fmt.Errorf("%w: nil payload", ErrInvalidPayload)
	}
	if err := payload.validate(); err != nil {
		return nil, err
	}

	keypair, err := crypto.KeypairFromSecretKey(recipientSecretKey)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	plaintext, err := crypto.Decrypt(payload.toInternal(), keypair, expectedSignerPublicKey, p.config.context)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	return plaintext, nil
}

// DecryptToJSON decrypts a payload and unmarshals the plaintext into v.
// A parse failure after successful decryption is [ErrStructuredData],
// never conflated with a cryptographic error.
func (p *Protocol) DecryptToJSON(payload *EncryptedPayload, recipientSecretKey []byte, v any) error {
	plaintext, err := p.Decrypt(payload, recipientSecretKey)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(plaintext, v); err != nil {
		return fmt.Errorf("%w: %v", ErrStructuredData, err)
	}

	return nil
}

// DecryptToText decrypts a payload and returns the plaintext as a string.
func (p *Protocol) DecryptToText(payload *EncryptedPayload, recipientSecretKey []byte) (string, error) {
	plaintext, err := p.Decrypt(payload, recipientSecretKey)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
