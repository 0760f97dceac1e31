// Package gateway implements the VaultSandbox hybrid post-quantum payload
// protection protocol: ML-KEM-768 key encapsulation, an ML-DSA-65 signed
// transcript binding every wire field, per-payload HKDF-SHA-512 key
// derivation, and AES-256-GCM authenticated encryption.
//
// The package protects payloads exchanged between a server and an untrusted
// client store. Collaborators (transport, key storage, UI) supply byte
// arrays and receive decrypted plaintext or typed errors back; they perform
// no cryptography themselves.
//
// Basic usage:
//
//	proto := gateway.NewProtocol()
//
//	recipient, err := gateway.GenerateKeyPair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	signer, err := gateway.GenerateSigningKeyPair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	payload, err := proto.Encrypt([]byte(`{"subject":"Test"}`), recipient.PublicKey, signer.SecretKey, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, err := proto.Decrypt(payload, recipient.SecretKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Signer Key Pinning
//
// Decryption optionally pins the expected signer public key. With a pinned
// key, a payload claiming a different signer fails with [ErrSignerMismatch]
// before any cryptography runs — treat that as a possible substitution
// attack. Without a pinned key the payload's own key is trusted and the
// signature is verified against it (trust-on-first-use pass-through); the
// caller owns fetching, caching, and invalidating pinned keys. Configure a
// default with [WithPinnedSignerKey] or pass one per call with
// [Protocol.DecryptWithSignerKey].
//
// # Error Taxonomy
//
// Every failure is terminal for the call and maps to exactly one of the
// sentinel errors in this package; see [ErrEncoding], [ErrSignerMismatch],
// [ErrSignatureInvalid], [ErrKeyDerivation], [ErrDecryptionFailed],
// [ErrStructuredData]. Parsing failures after a successful decryption are
// never conflated with cryptographic failures.
package gateway
