package crypto

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestBase64URLRoundTrip(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"simple", []byte("hello")},
		{"binary zeros", []byte{0x00, 0x00, 0x00}},
		{"binary all ones", []byte{0xff, 0xff, 0xff}},
		{"binary mixed", []byte{0x00, 0xff, 0x7f, 0x80}},
		{"url unsafe chars", []byte{0xfb, 0xf0}}, // Would produce + or / in standard base64
		{"single byte", []byte{0x42}},
		{"large data", make([]byte, 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := ToBase64URL(tt.data)
			decoded, err := FromBase64URL(encoded)
			if err != nil {
				t.Fatalf("FromBase64URL() error = %v", err)
			}
			if !bytes.Equal(decoded, tt.data) {
				t.Errorf("round trip failed: got %v, want %v", decoded, tt.data)
			}
		})
	}
}

func TestToBase64URL_Canonical(t *testing.T) {
	t.Parallel()
	// Data that would produce '+' and '/' in standard base64, plus lengths
	// that would require '=' padding.
	inputs := [][]byte{
		{0xfb, 0xff, 0x3f, 0xff},
		[]byte("a"),
		[]byte("ab"),
	}

	for _, data := range inputs {
		encoded := ToBase64URL(data)
		if strings.ContainsAny(encoded, "+/=") {
			t.Errorf("ToBase64URL(%v) = %q contains non-canonical characters", data, encoded)
		}
	}
}

func TestFromBase64URL_RejectsNonCanonical(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
	}{
		{"plus", "ab+c"},
		{"slash", "ab/c"},
		{"padding", "YWI="},
		{"double padding", "YQ=="},
		{"only padding", "="},
		{"plus at start", "+abc"},
		{"slash at end", "abc/"},
		{"standard base64 of binary", "+/+/"},
		{"whitespace", "ab c"},
		{"newline", "ab\nc"},
		{"invalid length", "abcde"},
		{"trailing bits two chars", "aR"},
		{"trailing bits three chars", "abd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromBase64URL(tt.input)
			if !errors.Is(err, ErrInvalidEncoding) {
				t.Errorf("FromBase64URL(%q) error = %v, want ErrInvalidEncoding", tt.input, err)
			}
		})
	}
}

func TestFromBase64URLFixed(t *testing.T) {
	t.Parallel()
	// Sizes that appear on the wire: empty aad, small fields, derived keys,
	// and the ML-KEM/ML-DSA key sizes.
	sizes := []int{0, 1, 31, 32, 1184, 1952, 2400}

	for _, size := range sizes {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i)
		}
		encoded := ToBase64URL(data)

		decoded, err := FromBase64URLFixed(encoded, size)
		if err != nil {
			t.Fatalf("FromBase64URLFixed(size=%d) error = %v", size, err)
		}
		if !bytes.Equal(decoded, data) {
			t.Errorf("FromBase64URLFixed(size=%d) round trip failed", size)
		}

		if _, err := FromBase64URLFixed(encoded, size+1); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("FromBase64URLFixed(size=%d, want=%d) error = %v, want ErrInvalidSize", size, size+1, err)
		}
	}
}

func TestFromBase64URLFixed_NonCanonical(t *testing.T) {
	t.Parallel()
	_, err := FromBase64URLFixed("YQ==", 1)
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("error = %v, want ErrInvalidEncoding", err)
	}
}

func TestBase64StandardRoundTrip(t *testing.T) {
	t.Parallel()
	data := []byte{0xfb, 0xff, 0x3f, 0xff, 0x00}

	encoded := ToBase64(data)
	decoded, err := FromBase64(encoded)
	if err != nil {
		t.Fatalf("FromBase64() error = %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Errorf("round trip failed: got %v, want %v", decoded, data)
	}
}
