package solana

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"testing"

	"github.com/mr-tron/base58"
)

func TestGenerateFormat(t *testing.T) {
	for i := 0; i < 20; i++ {
		c, err := Generate()
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		pub, err := base58.Decode(c.Address)
		if err != nil {
			t.Fatalf("address %q is not base58: %v", c.Address, err)
		}
		if len(pub) != ed25519.PublicKeySize {
			t.Fatalf("public key is %d bytes, want %d", len(pub), ed25519.PublicKeySize)
		}

		secret, err := hex.DecodeString(c.SecretMaterial)
		if err != nil {
			t.Fatalf("secret is not hex: %v", err)
		}
		if len(secret) != ed25519.PrivateKeySize {
			t.Fatalf("secret is %d bytes, want %d", len(secret), ed25519.PrivateKeySize)
		}
		derived := ed25519.PrivateKey(secret).Public().(ed25519.PublicKey)
		if !bytes.Equal(derived, pub) {
			t.Error("secret key does not match the address")
		}
	}
}

func TestKeypairBase58(t *testing.T) {
	c, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	kp, err := KeypairBase58(c.SecretMaterial)
	if err != nil {
		t.Fatalf("KeypairBase58() error = %v", err)
	}
	raw, err := base58.Decode(kp)
	if err != nil || hex.EncodeToString(raw) != c.SecretMaterial {
		t.Errorf("round trip mismatch: %v", err)
	}

	if _, err := KeypairBase58("zz"); err == nil {
		t.Error("expected error for non-hex secret")
	}
}
