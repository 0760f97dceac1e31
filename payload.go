package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/vaultsandbox/gateway-sub002/internal/crypto"
)

// EncryptedPayload is the wire structure protecting a single payload. It is
// constructed once by the sender and consumed at most once by the receiver;
// it carries no mutable state and is not retained after decryption.
//
// All byte-string fields are canonical base64url without padding
// (RFC 4648 §5): no '+', '/' or '='.
type EncryptedPayload struct {
	// V is the protocol version number.
	V int `json:"v"`
	// Algs specifies the cryptographic algorithm suite used. Changing any
	// identifier string changes every downstream transcript, i.e. is
	// effectively a protocol version bump.
	Algs AlgorithmSuite `json:"algs"`
	// CtKem is the KEM ciphertext.
	CtKem string `json:"ct_kem"`
	// Nonce is the AEAD nonce/IV.
	Nonce string `json:"nonce"`
	// AAD is the additional authenticated data. Absent or empty means the
	// payload carries no associated data; it decodes to zero bytes.
	AAD string `json:"aad"`
	// Ciphertext is the AEAD-encrypted content.
	Ciphertext string `json:"ciphertext"`
	// Sig is the detached signature over the transcript.
	Sig string `json:"sig"`
	// ServerSigPk is the signer's public key.
	ServerSigPk string `json:"server_sig_pk"`
}

// AlgorithmSuite identifies the ciphersuite of a payload.
type AlgorithmSuite struct {
	// KEM is the key encapsulation mechanism (e.g., "ML-KEM-768").
	KEM string `json:"kem"`
	// Sig is the signature algorithm (e.g., "ML-DSA-65").
	Sig string `json:"sig"`
	// AEAD is the authenticated encryption algorithm (e.g., "AES-256-GCM").
	AEAD string `json:"aead"`
	// KDF is the key derivation function (e.g., "HKDF-SHA-512").
	KDF string `json:"kdf"`
}

// ParsePayload parses and structurally validates a wire JSON payload.
// Malformed JSON or missing required fields return [ErrInvalidPayload].
func ParsePayload(data []byte) (*EncryptedPayload, error) {
	var p EncryptedPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if err := p.validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// validate checks structural requirements before any cryptography runs.
// AAD is the one field allowed to be empty.
func (p *EncryptedPayload) validate() error {
	// The signed transcript carries the version as a single byte, so a
	// value outside [1,255] has no signed representation and must never
	// reach the transcript.
	if p.V < 1 || p.V > 255 {
		return fmt.Errorf("%w: version %d", ErrInvalidPayload, p.V)
	}

	required := map[string]string{
		"ct_kem":        p.CtKem,
		"nonce":         p.Nonce,
		"ciphertext":    p.Ciphertext,
		"sig":           p.Sig,
		"server_sig_pk": p.ServerSigPk,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%w: missing field %s", ErrInvalidPayload, name)
		}
	}

	if p.Algs.KEM == "" || p.Algs.Sig == "" || p.Algs.AEAD == "" || p.Algs.KDF == "" {
		return fmt.Errorf("%w: incomplete algorithm suite", ErrInvalidPayload)
	}

	return nil
}

func (p *EncryptedPayload) toInternal() *crypto.EncryptedPayload {
	return &crypto.EncryptedPayload{
		V: p.V,
		Algs: crypto.AlgorithmSuite{
			KEM:  p.Algs.KEM,
			Sig:  p.Algs.Sig,
			AEAD: p.Algs.AEAD,
			KDF:  p.Algs.KDF,
		},
		CtKem:       p.CtKem,
		Nonce:       p.Nonce,
		AAD:         p.AAD,
		Ciphertext:  p.Ciphertext,
		Sig:         p.Sig,
		ServerSigPk: p.ServerSigPk,
	}
}

func payloadFromInternal(p *crypto.EncryptedPayload) *EncryptedPayload {
	return &EncryptedPayload{
		V: p.V,
		Algs: AlgorithmSuite{
			KEM:  p.Algs.KEM,
			Sig:  p.Algs.Sig,
			AEAD: p.Algs.AEAD,
			KDF:  p.Algs.KDF,
		},
		CtKem:       p.CtKem,
		Nonce:       p.Nonce,
		AAD:         p.AAD,
		Ciphertext:  p.Ciphertext,
		Sig:         p.Sig,
		ServerSigPk: p.ServerSigPk,
	}
}
