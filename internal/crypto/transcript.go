package crypto

// BuildTranscript constructs the byte sequence the payload signature covers:
//
//	version (1 byte) || suite || context || ct_kem || nonce || aad || ciphertext || signer_pk
//
// suite is the kem:sig:aead:kdf ciphersuite string and context the
// domain-separation tag; both are appended as UTF-8. The remaining segments
// are raw decoded bytes. The construction is pure and deterministic; both
// sides must produce identical bytes or verification fails.
//
// Version 1 framing carries no per-segment length prefixes. The boundary
// between the variable-length aad and ciphertext segments is unambiguous
// only because each side recomputes the segmentation from the decoded wire
// fields it already holds, never by parsing the transcript itself. A future
// protocol version should length-prefix variable segments.
func BuildTranscript(version int, suite, context string, ctKem, nonce, aad, ciphertext, signerPK []byte) []byte {
	size := 1 + len(suite) + len(context) +
		len(ctKem) + len(nonce) + len(aad) + len(ciphertext) + len(signerPK)

	transcript := make([]byte, 0, size)
	transcript = append(transcript, byte(version))
	transcript = append(transcript, suite...)
	transcript = append(transcript, context...)
	transcript = append(transcript, ctKem...)
	transcript = append(transcript, nonce...)
	transcript = append(transcript, aad...)
	transcript = append(transcript, ciphertext...)
	transcript = append(transcript, signerPK...)

	return transcript
}
