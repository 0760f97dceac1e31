package crypto

// EncryptedPayload is the wire structure protecting a single payload.
// All byte-string fields are canonical base64url without padding.
type EncryptedPayload struct {
	// V is the protocol version number.
	V int `json:"v"`
	// Algs specifies the cryptographic algorithm suite used.
	Algs AlgorithmSuite `json:"algs"`
	// CtKem is the ML-KEM-768 ciphertext (base64url-encoded).
	CtKem string `json:"ct_kem"`
	// Nonce is the AES-GCM nonce/IV (base64url-encoded).
	Nonce string `json:"nonce"`
	// AAD is the additional authenticated data (base64url-encoded).
	// It may be empty; an empty string decodes to zero bytes.
	AAD string `json:"aad"`
	// Ciphertext is the AES-GCM encrypted content (base64url-encoded).
	Ciphertext string `json:"ciphertext"`
	// Sig is the ML-DSA-65 signature over the transcript (base64url-encoded).
	Sig string `json:"sig"`
	// ServerSigPk is the signer's ML-DSA-65 public key (base64url-encoded).
	ServerSigPk string `json:"server_sig_pk"`
}

// AlgorithmSuite represents the cryptographic algorithm suite.
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

// Suite returns the kem:sig:aead:kdf ciphersuite string used in the signed
// transcript. Changing any identifier changes every downstream transcript.
func (a AlgorithmSuite) Suite() string {
	return a.KEM + ":" + a.Sig + ":" + a.AEAD + ":" + a.KDF
}

// ReferenceSuite returns the algorithm suite this package implements.
func ReferenceSuite() AlgorithmSuite {
	return AlgorithmSuite{
		KEM:  KEMAlgorithm,
		Sig:  SigAlgorithm,
		AEAD: AEADAlgorithm,
		KDF:  KDFAlgorithm,
	}
}
