package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestSignVerifyTranscript(t *testing.T) {
	t.Parallel()
	kp, err := GenerateSigningKeypair()
	if err != nil {
		t.Fatalf("GenerateSigningKeypair() error = %v", err)
	}

	if len(kp.PublicKey) != MLDSAPublicKeySize {
		t.Errorf("public key size = %d, want %d", len(kp.PublicKey), MLDSAPublicKeySize)
	}
	if len(kp.SecretKey) != MLDSASecretKeySize {
		t.Errorf("secret key size = %d, want %d", len(kp.SecretKey), MLDSASecretKeySize)
	}

	transcript := []byte("transcript bytes to sign")
	sig, err := SignTranscript(kp.SecretKey, transcript)
	if err != nil {
		t.Fatalf("SignTranscript() error = %v", err)
	}
	if len(sig) != MLDSASignatureSize {
		t.Errorf("signature size = %d, want %d", len(sig), MLDSASignatureSize)
	}

	if err := VerifyTranscript(kp.PublicKey, transcript, sig); err != nil {
		t.Errorf("VerifyTranscript() error = %v", err)
	}
}

func TestVerifyTranscript_Failures(t *testing.T) {
	t.Parallel()
	kp, err := GenerateSigningKeypair()
	if err != nil {
		t.Fatal(err)
	}
	other, err := GenerateSigningKeypair()
	if err != nil {
		t.Fatal(err)
	}

	transcript := []byte("transcript bytes to sign")
	sig, err := SignTranscript(kp.SecretKey, transcript)
	if err != nil {
		t.Fatal(err)
	}

	tamperedSig := bytes.Clone(sig)
	tamperedSig[0] ^= 0x01

	tests := []struct {
		name       string
		publicKey  []byte
		transcript []byte
		sig        []byte
	}{
		{"tampered transcript", kp.PublicKey, []byte("Transcript bytes to sign"), sig},
		{"tampered signature", kp.PublicKey, transcript, tamperedSig},
		{"wrong public key", other.PublicKey, transcript, sig},
		{"malformed public key", make([]byte, 10), transcript, sig},
		{"truncated signature", kp.PublicKey, transcript, sig[:100]},
		{"empty signature", kp.PublicKey, transcript, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyTranscript(tt.publicKey, tt.transcript, tt.sig)
			if !errors.Is(err, ErrSignatureVerificationFailed) {
				t.Errorf("error = %v, want ErrSignatureVerificationFailed", err)
			}
		})
	}
}

func TestSignTranscript_Deterministic(t *testing.T) {
	t.Parallel()
	kp, err := GenerateSigningKeypair()
	if err != nil {
		t.Fatal(err)
	}

	transcript := []byte("same transcript")
	sig1, err := SignTranscript(kp.SecretKey, transcript)
	if err != nil {
		t.Fatal(err)
	}
	sig2, err := SignTranscript(kp.SecretKey, transcript)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(sig1, sig2) {
		t.Error("deterministic signing produced different signatures")
	}
}

func TestSignTranscript_InvalidKeySize(t *testing.T) {
	t.Parallel()
	_, err := SignTranscript(make([]byte, 100), []byte("transcript"))
	if !errors.Is(err, ErrInvalidSigningKeySize) {
		t.Errorf("error = %v, want ErrInvalidSigningKeySize", err)
	}
}

func TestSigningPublicKeyFromSecret(t *testing.T) {
	t.Parallel()
	kp, err := GenerateSigningKeypair()
	if err != nil {
		t.Fatal(err)
	}

	pub, err := SigningPublicKeyFromSecret(kp.SecretKey)
	if err != nil {
		t.Fatalf("SigningPublicKeyFromSecret() error = %v", err)
	}
	if !bytes.Equal(pub, kp.PublicKey) {
		t.Error("recovered public key differs from generated public key")
	}

	_, err = SigningPublicKeyFromSecret(make([]byte, 100))
	if !errors.Is(err, ErrInvalidSigningKeySize) {
		t.Errorf("error = %v, want ErrInvalidSigningKeySize", err)
	}
}

func TestValidateSignerPublicKey(t *testing.T) {
	t.Parallel()
	kp, err := GenerateSigningKeypair()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid", ToBase64URL(kp.PublicKey), true},
		{"empty", "", false},
		{"wrong size", ToBase64URL(make([]byte, 100)), false},
		{"non-canonical", ToBase64URL(kp.PublicKey) + "=", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateSignerPublicKey(tt.input); got != tt.want {
				t.Errorf("ValidateSignerPublicKey() = %v, want %v", got, tt.want)
			}
		})
	}
}
