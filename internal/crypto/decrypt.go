package crypto

import (
	"fmt"
)

// Decrypt verifies and decrypts an encrypted payload.
//
// Steps run strictly in order; none is skipped, cached across calls, or
// reordered:
//
//  1. Pinned-key gate: if pinnedSignerPK is non-nil and differs from the
//     payload's signer key, fail with [ErrServerKeyMismatch] before any
//     decoding or cryptography.
//  2. Strict base64url decoding of all wire fields, with mandated sizes
//     enforced for fixed-size fields.
//  3. Transcript reconstruction from the decoded fields.
//  4. ML-DSA-65 signature verification over the transcript. This is a hard
//     gate: on failure the payload is tampered and no secret material is
//     touched.
//  5. ML-KEM-768 decapsulation of ct_kem with the recipient secret key.
//  6. HKDF-SHA-512 key derivation bound to this payload's ct_kem and AAD.
//  7. AES-256-GCM decryption.
//
// A nil pinnedSignerPK skips step 1 and trusts the key carried by the
// payload; the signature is still verified against that key.
func Decrypt(payload *EncryptedPayload, keypair *Keypair, pinnedSignerPK []byte, context string) ([]byte, error) {
	// 1. Pinned-key gate. Compares canonical encodings so no decoding of
	// attacker-controlled input happens before the check.
	if pinnedSignerPK != nil && ToBase64URL(pinnedSignerPK) != payload.ServerSigPk {
		return nil, ErrServerKeyMismatch
	}

	if payload.Algs.Suite() != AlgsCiphersuite {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, payload.Algs.Suite())
	}

	// 2. Strict decoding with mandated sizes.
	ctKem, err := FromBase64URLFixed(payload.CtKem, MLKEMCiphertextSize)
	if err != nil {
		return nil, fmt.Errorf("decode ct_kem: %w", err)
	}

	nonce, err := FromBase64URLFixed(payload.Nonce, AESNonceSize)
	if err != nil {
		return nil, fmt.Errorf("decode nonce: %w", err)
	}

	aad, err := FromBase64URL(payload.AAD)
	if err != nil {
		return nil, fmt.Errorf("decode aad: %w", err)
	}

	ciphertext, err := FromBase64URL(payload.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decode ciphertext: %w", err)
	}

	sig, err := FromBase64URLFixed(payload.Sig, MLDSASignatureSize)
	if err != nil {
		return nil, fmt.Errorf("decode sig: %w", err)
	}

	signerPK, err := FromBase64URLFixed(payload.ServerSigPk, MLDSAPublicKeySize)
	if err != nil {
		return nil, fmt.Errorf("decode server_sig_pk: %w", err)
	}

	// 3. Transcript reconstruction, exactly as the sender built it.
	transcript := BuildTranscript(payload.V, payload.Algs.Suite(), context, ctKem, nonce, aad, ciphertext, signerPK)

	// 4. Signature verification gate.
	if err := VerifyTranscript(signerPK, transcript, sig); err != nil {
		return nil, err
	}

	// 5. KEM decapsulation. Implicit rejection means a mismatched keypair
	// yields unrelated bytes here; step 7 catches that.
	sharedSecret, err := keypair.Decapsulate(ctKem)
	if err != nil {
		return nil, fmt.Errorf("decapsulate: %w", err)
	}

	// 6. Per-payload key derivation.
	key, err := DerivePayloadKey(sharedSecret, aad, ctKem, context)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	// 7. AEAD decryption.
	return openAESGCM(key, nonce, aad, ciphertext)
}
