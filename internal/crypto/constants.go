package crypto

const (
	// ProtocolVersion is the wire protocol version this package produces
	// and accepts.
	ProtocolVersion = 1

	// DefaultContext is the domain-separation tag mixed into both the
	// signed transcript and the HKDF info block. Encrypting and decrypting
	// sides must agree on it; changing it is a protocol version bump.
	DefaultContext = "vaultsandbox:email:v1"

	// KEMAlgorithm identifies the key encapsulation mechanism.
	KEMAlgorithm = "ML-KEM-768"
	// SigAlgorithm identifies the signature algorithm.
	SigAlgorithm = "ML-DSA-65"
	// AEADAlgorithm identifies the authenticated encryption algorithm.
	AEADAlgorithm = "AES-256-GCM"
	// KDFAlgorithm identifies the key derivation function.
	KDFAlgorithm = "HKDF-SHA-512"

	// MLKEMPublicKeySize is the size of an ML-KEM-768 public key in bytes.
	MLKEMPublicKeySize = 1184
	// MLKEMSecretKeySize is the size of an ML-KEM-768 secret key in bytes.
	MLKEMSecretKeySize = 2400
	// MLKEMCiphertextSize is the size of an ML-KEM-768 ciphertext in bytes.
	MLKEMCiphertextSize = 1088
	// MLKEMSharedKeySize is the size of the shared secret from ML-KEM-768 in bytes.
	MLKEMSharedKeySize = 32

	// MLDSAPublicKeySize is the size of an ML-DSA-65 public key in bytes.
	MLDSAPublicKeySize = 1952
	// MLDSASecretKeySize is the size of an ML-DSA-65 secret key in bytes.
	MLDSASecretKeySize = 4032
	// MLDSASignatureSize is the size of an ML-DSA-65 signature in bytes.
	MLDSASignatureSize = 3309

	// AESKeySize is the size of an AES-256 key in bytes.
	AESKeySize = 32
	// AESNonceSize is the size of an AES-GCM nonce in bytes.
	AESNonceSize = 12
	// AESTagSize is the size of an AES-GCM authentication tag in bytes.
	AESTagSize = 16

	// PublicKeyOffset is the byte offset where the public key is embedded
	// within an ML-KEM-768 secret key.
	PublicKeyOffset = 1152
)

// AlgsCiphersuite is the canonical string representation of the algorithm
// suite, in the kem:sig:aead:kdf order used by the signed transcript.
const AlgsCiphersuite = KEMAlgorithm + ":" + SigAlgorithm + ":" + AEADAlgorithm + ":" + KDFAlgorithm
