// Command protohelper exercises the payload protection protocol from the
// command line for cross-implementation interop testing. It reads JSON
// requests on stdin and writes JSON results on stdout; binary values are
// base64url for wire fields and keys, standard base64 for plaintext.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	gateway "github.com/vaultsandbox/gateway-sub002"
	"github.com/vaultsandbox/gateway-sub002/internal/crypto"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: protohelper <keygen|encrypt|decrypt>")
	}

	switch os.Args[1] {
	case "keygen":
		keygen()
	case "encrypt":
		encrypt()
	case "decrypt":
		decrypt()
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

type keygenOutput struct {
	PublicKey        string `json:"publicKey"`
	SecretKey        string `json:"secretKey"`
	SigningPublicKey string `json:"signingPublicKey"`
	SigningSecretKey string `json:"signingSecretKey"`
}

func keygen() {
	kp, err := gateway.GenerateKeyPair()
	if err != nil {
		fatal("generate keypair: %v", err)
	}
	signer, err := gateway.GenerateSigningKeyPair()
	if err != nil {
		fatal("generate signing keypair: %v", err)
	}

	emit(keygenOutput{
		PublicKey:        crypto.ToBase64URL(kp.PublicKey),
		SecretKey:        crypto.ToBase64URL(kp.SecretKey),
		SigningPublicKey: crypto.ToBase64URL(signer.PublicKey),
		SigningSecretKey: crypto.ToBase64URL(signer.SecretKey),
	})
}

type encryptRequest struct {
	// Plaintext is standard base64 (it may be arbitrary binary).
	Plaintext          string `json:"plaintext"`
	RecipientPublicKey string `json:"recipientPublicKey"`
	SigningSecretKey   string `json:"signingSecretKey"`
	Context            string `json:"context,omitempty"`
	AAD                string `json:"aad,omitempty"`
}

func encrypt() {
	var req encryptRequest
	readRequest(&req)

	plaintext, err := crypto.FromBase64(req.Plaintext)
	if err != nil {
		fatal("decode plaintext: %v", err)
	}
	recipientPK := decodeKey("recipientPublicKey", req.RecipientPublicKey)
	signingSK := decodeKey("signingSecretKey", req.SigningSecretKey)

	var aad []byte
	if req.AAD != "" {
		if aad, err = crypto.FromBase64(req.AAD); err != nil {
			fatal("decode aad: %v", err)
		}
	}

	proto := newProtocol(req.Context)
	payload, err := proto.Encrypt(plaintext, recipientPK, signingSK, aad)
	if err != nil {
		fatal("encrypt: %v", err)
	}

	emit(payload)
}

type decryptRequest struct {
	Payload                 json.RawMessage `json:"payload"`
	SecretKey               string          `json:"secretKey"`
	ExpectedSignerPublicKey string          `json:"expectedSignerPublicKey,omitempty"`
	Context                 string          `json:"context,omitempty"`
}

type decryptOutput struct {
	// Plaintext is standard base64.
	Plaintext string `json:"plaintext"`
}

func decrypt() {
	var req decryptRequest
	readRequest(&req)

	payload, err := gateway.ParsePayload(req.Payload)
	if err != nil {
		fatal("parse payload: %v", err)
	}
	secretKey := decodeKey("secretKey", req.SecretKey)

	var pinned []byte
	if req.ExpectedSignerPublicKey != "" {
		pinned = decodeKey("expectedSignerPublicKey", req.ExpectedSignerPublicKey)
	}

	proto := newProtocol(req.Context)
	plaintext, err := proto.DecryptWithSignerKey(payload, secretKey, pinned)
	if err != nil {
		fatal("decrypt: %v", err)
	}

	emit(decryptOutput{Plaintext: crypto.ToBase64(plaintext)})
}

func newProtocol(context string) *gateway.Protocol {
	if context == "" {
		return gateway.NewProtocol()
	}
	return gateway.NewProtocol(gateway.WithContext(context))
}

func readRequest(v any) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		fatal("parse request: %v", err)
	}
}

func decodeKey(name, value string) []byte {
	key, err := crypto.FromBase64URL(value)
	if err != nil {
		fatal("decode %s: %v", name, err)
	}
	return key
}

func emit(v any) {
	if err := json.NewEncoder(os.Stdout).Encode(v); err != nil {
		fatal("encode output: %v", err)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
