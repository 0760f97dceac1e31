// Package crypto implements the primitives of the VaultSandbox payload
// protection protocol: post-quantum key encapsulation, transcript signing,
// per-payload key derivation, and authenticated encryption.
//
// # Algorithm Suite
//
// The package uses the following cryptographic algorithms:
//
//   - ML-KEM-768 (NIST FIPS 203): Post-quantum key encapsulation mechanism
//     for establishing shared secrets. Provides 192-bit classical and quantum
//     security levels.
//
//   - ML-DSA-65 (NIST FIPS 204): Post-quantum digital signature algorithm
//     for authenticating encrypted payloads. Provides 192-bit security.
//
//   - AES-256-GCM: Authenticated encryption with associated data (AEAD)
//     for encrypting payload content. Provides confidentiality and integrity.
//
//   - HKDF-SHA-512 (RFC 5869): Key derivation function for deriving AEAD keys
//     from KEM shared secrets with domain separation.
//
// # Security Model
//
// The encryption scheme provides:
//
//   - Confidentiality: Only the holder of the recipient secret key can
//     decrypt a payload.
//   - Authenticity: Signatures prove a payload originated from the holder
//     of the signing key.
//   - Integrity: Tampering with any signed wire field causes verification
//     to fail before any secret material is touched.
//   - Forward secrecy: Each payload uses a fresh KEM encapsulation, and the
//     AEAD key is salted with a hash of that payload's KEM ciphertext, so
//     no two payloads ever share a derived key.
//
// # Operation Ordering
//
// [Decrypt] runs its steps in a fixed order that must never be changed:
// pinned-key gate, strict field decoding, transcript reconstruction,
// signature verification, KEM decapsulation, key derivation, AEAD open.
// Signature verification is a hard gate: a payload whose transcript
// signature does not verify is never decapsulated or decrypted.
// Decrypting unauthenticated ciphertext may expose the system to
// chosen-ciphertext attacks.
//
// AES-GCM nonces MUST be unique for each encryption with the same key.
// Nonce reuse completely breaks the security of AES-GCM, allowing attackers
// to recover the authentication key and forge messages. [Encrypt] sources a
// fresh random nonce per call and derives a fresh key per payload.
//
// # Base64 Encoding
//
// All wire fields are canonical URL-safe base64 without padding
// (RFC 4648 §5). [FromBase64URL] is strict: inputs containing '+', '/' or
// '=' are rejected rather than normalized, so a given byte string has
// exactly one wire representation. [ToBase64]/[FromBase64] provide the
// standard padded alphabet for non-wire binary content.
package crypto
