package crypto

import (
	"bytes"
	"testing"
)

func TestBuildTranscript_KnownVector(t *testing.T) {
	t.Parallel()
	got := BuildTranscript(
		1,
		"kem:sig:aead:kdf",
		"ctx",
		[]byte{0x01, 0x02},
		[]byte{0x03},
		[]byte{0x04, 0x05},
		[]byte{0x06},
		[]byte{0x07, 0x08},
	)

	want := append([]byte{0x01}, []byte("kem:sig:aead:kdf")...)
	want = append(want, []byte("ctx")...)
	want = append(want, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08)

	if !bytes.Equal(got, want) {
		t.Errorf("BuildTranscript() = %v, want %v", got, want)
	}
}

func TestBuildTranscript_Deterministic(t *testing.T) {
	t.Parallel()
	ctKem := []byte("ct-kem-bytes")
	nonce := []byte("nonce-bytes!")
	aad := []byte("aad")
	ciphertext := []byte("ciphertext")
	signerPK := []byte("signer-public-key")

	a := BuildTranscript(1, AlgsCiphersuite, DefaultContext, ctKem, nonce, aad, ciphertext, signerPK)
	b := BuildTranscript(1, AlgsCiphersuite, DefaultContext, ctKem, nonce, aad, ciphertext, signerPK)

	if !bytes.Equal(a, b) {
		t.Error("BuildTranscript not deterministic")
	}
}

func TestBuildTranscript_FieldSensitivity(t *testing.T) {
	t.Parallel()
	base := func() [][]byte {
		return [][]byte{
			[]byte("ct-kem"),
			[]byte("nonce"),
			[]byte("aad"),
			[]byte("ciphertext"),
			[]byte("signer-pk"),
		}
	}

	build := func(version int, suite, context string, f [][]byte) []byte {
		return BuildTranscript(version, suite, context, f[0], f[1], f[2], f[3], f[4])
	}

	reference := build(1, AlgsCiphersuite, DefaultContext, base())

	t.Run("version", func(t *testing.T) {
		if bytes.Equal(build(2, AlgsCiphersuite, DefaultContext, base()), reference) {
			t.Error("changed version produced identical transcript")
		}
	})

	t.Run("suite", func(t *testing.T) {
		if bytes.Equal(build(1, "other:suite:id:str", DefaultContext, base()), reference) {
			t.Error("changed suite produced identical transcript")
		}
	})

	t.Run("context", func(t *testing.T) {
		if bytes.Equal(build(1, AlgsCiphersuite, "proto:test:v1", base()), reference) {
			t.Error("changed context produced identical transcript")
		}
	})

	fieldNames := []string{"ct_kem", "nonce", "aad", "ciphertext", "signer_pk"}
	for i, name := range fieldNames {
		t.Run(name, func(t *testing.T) {
			fields := base()
			fields[i][0] ^= 0x01
			if bytes.Equal(build(1, AlgsCiphersuite, DefaultContext, fields), reference) {
				t.Errorf("flipped bit in %s produced identical transcript", name)
			}
		})
	}
}

func TestBuildTranscript_EmptyVariableFields(t *testing.T) {
	t.Parallel()
	got := BuildTranscript(1, "s", "c", nil, nil, nil, nil, nil)
	want := append([]byte{0x01}, []byte("sc")...)

	if !bytes.Equal(got, want) {
		t.Errorf("BuildTranscript() = %v, want %v", got, want)
	}
}
