package crypto

import (
	"fmt"
)

// Encrypt protects plaintext for the recipient public key and signs the
// result with the sender's ML-DSA-65 secret key. It is the structural
// mirror of [Decrypt]: encapsulate, derive, seal under a fresh nonce, build
// the transcript, sign, assemble the wire structure.
//
// context is the domain-separation tag; it must match the decrypting
// side's. aad may be nil for payloads without associated data.
func Encrypt(plaintext, recipientPublicKey, signingSecretKey []byte, context string, aad []byte) (*EncryptedPayload, error) {
	signerPK, err := SigningPublicKeyFromSecret(signingSecretKey)
	if err != nil {
		return nil, err
	}

	ctKem, sharedSecret, err := Encapsulate(recipientPublicKey)
	if err != nil {
		return nil, err
	}

	key, err := DerivePayloadKey(sharedSecret, aad, ctKem, context)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	// Fresh nonce per payload. The derived key is also unique per payload,
	// so (key, nonce) pairs never repeat.
	nonce, err := newNonce()
	if err != nil {
		return nil, err
	}

	ciphertext, err := sealAESGCM(key, nonce, aad, plaintext)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}

	transcript := BuildTranscript(ProtocolVersion, AlgsCiphersuite, context, ctKem, nonce, aad, ciphertext, signerPK)

	sig, err := SignTranscript(signingSecretKey, transcript)
	if err != nil {
		return nil, err
	}

	return &EncryptedPayload{
		V:           ProtocolVersion,
		Algs:        ReferenceSuite(),
		CtKem:       ToBase64URL(ctKem),
		Nonce:       ToBase64URL(nonce),
		AAD:         ToBase64URL(aad),
		Ciphertext:  ToBase64URL(ciphertext),
		Sig:         ToBase64URL(sig),
		ServerSigPk: ToBase64URL(signerPK),
	}, nil
}
