package gateway

import (
	"github.com/vaultsandbox/gateway-sub002/internal/crypto"
)

// KeyPair is an ML-KEM-768 keypair held by a payload recipient. The secret
// key is exclusively owned by the holder and is never transmitted.
type KeyPair struct {
	// PublicKey is the raw ML-KEM-768 public key (1184 bytes).
	PublicKey []byte
	// SecretKey is the raw ML-KEM-768 secret key (2400 bytes).
	SecretKey []byte
}

// SigningKeyPair is an ML-DSA-65 keypair held by a payload sender.
type SigningKeyPair struct {
	// PublicKey is the raw ML-DSA-65 public key (1952 bytes).
	PublicKey []byte
	// SecretKey is the raw ML-DSA-65 secret key (4032 bytes).
	SecretKey []byte
}

// GenerateKeyPair creates a new ML-KEM-768 keypair for receiving payloads.
func GenerateKeyPair() (*KeyPair, error) {
	kp, err := crypto.GenerateKeypair()
	if err != nil {
		return nil, err
	}
	return &KeyPair{PublicKey: kp.PublicKey, SecretKey: kp.SecretKey}, nil
}

// KeyPairFromSecretKey reconstructs a keypair from its secret key. The
// public key is embedded in the ML-KEM-768 secret key.
func KeyPairFromSecretKey(secretKey []byte) (*KeyPair, error) {
	kp, err := crypto.KeypairFromSecretKey(secretKey)
	if err != nil {
		return nil, wrapCryptoError(err)
	}
	return &KeyPair{PublicKey: kp.PublicKey, SecretKey: kp.SecretKey}, nil
}

// GenerateSigningKeyPair creates a new ML-DSA-65 keypair for signing
// payload transcripts.
func GenerateSigningKeyPair() (*SigningKeyPair, error) {
	kp, err := crypto.GenerateSigningKeypair()
	if err != nil {
		return nil, err
	}
	return &SigningKeyPair{PublicKey: kp.PublicKey, SecretKey: kp.SecretKey}, nil
}

// ValidateSignerPublicKey reports whether a base64url-encoded signer public
// key decodes to the mandated ML-DSA-65 size. Useful to key-pinning callers
// before storing an observed key.
func ValidateSignerPublicKey(signerPublicKey string) bool {
	return crypto.ValidateSignerPublicKey(signerPublicKey)
}
