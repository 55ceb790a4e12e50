package tron

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/ethereum/go-ethereum/crypto"
)

func TestGenerateFormat(t *testing.T) {
	for i := 0; i < 20; i++ {
		c, err := Generate()
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if !strings.HasPrefix(c.Address, "T") || len(c.Address) != 34 {
			t.Fatalf("malformed address %q", c.Address)
		}

		version, hash, err := decodeAddress(c.Address)
		if err != nil {
			t.Fatalf("decodeAddress(%q) error = %v", c.Address, err)
		}
		if version != MainnetPrefix {
			t.Errorf("version byte = %#x, want %#x", version, MainnetPrefix)
		}

		key, err := crypto.HexToECDSA(c.SecretMaterial)
		if err != nil {
			t.Fatalf("secret does not parse: %v", err)
		}
		ethAddr := crypto.PubkeyToAddress(key.PublicKey)
		if !bytes.Equal(hash, ethAddr.Bytes()) {
			t.Errorf("account hash %x does not match key %x", hash, ethAddr.Bytes())
		}
	}
}

func TestDecodeAddressRejectsCorruption(t *testing.T) {
	c, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// Swap two characters in the body to break the checksum.
	b := []byte(c.Address)
	i := len(b) - 2
	if b[i] == b[i+1] {
		b[i+1] = 'z'
		if b[i] == 'z' {
			b[i+1] = 'y'
		}
	} else {
		b[i], b[i+1] = b[i+1], b[i]
	}

	if _, _, err := decodeAddress(string(b)); !errors.Is(err, base58.ErrChecksum) {
		t.Errorf("decodeAddress(%q) error = %v, want ErrChecksum", b, err)
	}
}

func TestDeriveAddressUsesEthereumAccountHash(t *testing.T) {
	// Tron reuses the Ethereum account hash under version byte 0x41.
	key, err := crypto.HexToECDSA("0000000000000000000000000000000000000000000000000000000000000001")
	if err != nil {
		t.Fatal(err)
	}
	want := base58.CheckEncode(crypto.PubkeyToAddress(key.PublicKey).Bytes(), MainnetPrefix)
	if got := DeriveAddress(crypto.FromECDSAPub(&key.PublicKey)); got != want || got[0] != 'T' {
		t.Errorf("DeriveAddress() = %q, want %q", got, want)
	}
}
