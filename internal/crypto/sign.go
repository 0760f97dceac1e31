package crypto

import (
	"fmt"

	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
)

// SigningKeypair represents an ML-DSA-65 keypair used to sign payload
// transcripts.
type SigningKeypair struct {
	// PublicKey is the raw ML-DSA-65 public key bytes.
	PublicKey []byte
	// SecretKey is the raw ML-DSA-65 secret key bytes.
	SecretKey []byte
}

// GenerateSigningKeypair creates a new ML-DSA-65 keypair.
func GenerateSigningKeypair() (*SigningKeypair, error) {
	pub, priv, err := mldsa65.GenerateKey(randReader)
	if err != nil {
		return nil, err
	}

	// MarshalBinary never fails for valid keys from GenerateKey
	pubBytes, _ := pub.MarshalBinary()
	privBytes, _ := priv.MarshalBinary()

	return &SigningKeypair{
		PublicKey: pubBytes,
		SecretKey: privBytes,
	}, nil
}

// SigningPublicKeyFromSecret recovers the public key bytes from an
// ML-DSA-65 secret key.
func SigningPublicKeyFromSecret(secretKey []byte) ([]byte, error) {
	if len(secretKey) != MLDSASecretKeySize {
		return nil, ErrInvalidSigningKeySize
	}

	var priv mldsa65.PrivateKey
	if err := priv.UnmarshalBinary(secretKey); err != nil {
		return nil, fmt.Errorf("unmarshal signing key: %w", err)
	}

	pub, ok := priv.Public().(*mldsa65.PublicKey)
	if !ok {
		return nil, fmt.Errorf("unexpected public key type")
	}

	pubBytes, _ := pub.MarshalBinary()
	return pubBytes, nil
}

// SignTranscript produces a detached ML-DSA-65 signature over the
// transcript using deterministic signing.
func SignTranscript(secretKey, transcript []byte) ([]byte, error) {
	if len(secretKey) != MLDSASecretKeySize {
		return nil, ErrInvalidSigningKeySize
	}

	var priv mldsa65.PrivateKey
	if err := priv.UnmarshalBinary(secretKey); err != nil {
		return nil, fmt.Errorf("unmarshal signing key: %w", err)
	}

	sig := make([]byte, MLDSASignatureSize)
	if err := mldsa65.SignTo(&priv, transcript, nil, false, sig); err != nil {
		return nil, fmt.Errorf("sign transcript: %w", err)
	}

	return sig, nil
}

// VerifyTranscript verifies a detached ML-DSA-65 signature over the
// transcript. Any failure, including a malformed public key or signature,
// is reported as [ErrSignatureVerificationFailed]: the caller must treat
// the payload as tampered and never decrypt it.
func VerifyTranscript(publicKey, transcript, sig []byte) error {
	if len(sig) != MLDSASignatureSize {
		return fmt.Errorf("%w: malformed signature", ErrSignatureVerificationFailed)
	}

	var pub mldsa65.PublicKey
	if err := pub.UnmarshalBinary(publicKey); err != nil {
		return fmt.Errorf("%w: malformed public key", ErrSignatureVerificationFailed)
	}

	if !mldsa65.Verify(&pub, transcript, nil, sig) {
		return ErrSignatureVerificationFailed
	}

	return nil
}

// ValidateSignerPublicKey reports whether a base64url-encoded signer public
// key decodes to the mandated ML-DSA-65 size.
func ValidateSignerPublicKey(signerPublicKey string) bool {
	publicKey, err := FromBase64URL(signerPublicKey)
	if err != nil {
		return false
	}
	return len(publicKey) == MLDSAPublicKeySize
}
