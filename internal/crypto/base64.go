package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ToBase64URL encodes bytes to URL-safe base64 without padding.
func ToBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// FromBase64URL decodes canonical URL-safe base64 without padding.
// It is strict: input containing '+', '/' or '=', or carrying nonzero
// trailing pad bits, is rejected with [ErrInvalidEncoding] so every byte
// string has exactly one wire form.
func FromBase64URL(s string) ([]byte, error) {
	if strings.ContainsAny(s, "+/=") {
		return nil, fmt.Errorf("%w: non-canonical character in %q", ErrInvalidEncoding, s)
	}

	// Strict() rejects nonzero trailing pad bits; without it "aQ" and
	// "aR" would decode to the same byte.
	data, err := base64.RawURLEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	return data, nil
}

// FromBase64URLFixed decodes canonical base64url and enforces the decoded
// length. A wrong length is a validation failure ([ErrInvalidSize]), not a
// cryptographic one.
func FromBase64URLFixed(s string, expectedLen int) ([]byte, error) {
	data, err := FromBase64URL(s)
	if err != nil {
		return nil, err
	}

	if len(data) != expectedLen {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSize, len(data), expectedLen)
	}

	return data, nil
}

// ToBase64 encodes bytes to standard base64 with padding.
// Use this for non-wire binary content.
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes standard base64 (with padding) to bytes.
func FromBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
