package ethereum

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"

	"github.com/Amr-9/vanityhunt/pkg/generator"
)

func TestFromMnemonicKnownVector(t *testing.T) {
	c, err := FromMnemonic("test test test test test test test test test test test junk")
	if err != nil {
		t.Fatalf("FromMnemonic() error = %v", err)
	}
	if want := "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"; c.Address != want {
		t.Errorf("Address = %s, want %s", c.Address, want)
	}
	if want := "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"; c.SecretMaterial != want {
		t.Errorf("SecretMaterial = %s, want %s", c.SecretMaterial, want)
	}
}

func TestFromMnemonicRejectsGarbage(t *testing.T) {
	if _, err := FromMnemonic("not a real phrase"); err == nil {
		t.Fatal("expected error for invalid mnemonic")
	}
}

func TestGenerateWithMnemonicRederives(t *testing.T) {
	c, err := GenerateWithMnemonic()
	if err != nil {
		t.Fatalf("GenerateWithMnemonic() error = %v", err)
	}
	if !bip39.IsMnemonicValid(c.RecoveryPhrase) {
		t.Fatalf("invalid mnemonic %q", c.RecoveryPhrase)
	}
	if n := len(strings.Fields(c.RecoveryPhrase)); n != 12 {
		t.Errorf("mnemonic has %d words, want 12", n)
	}

	again, err := FromMnemonic(c.RecoveryPhrase)
	if err != nil {
		t.Fatalf("FromMnemonic() error = %v", err)
	}
	if again != c {
		t.Errorf("re-derived %+v, want %+v", again, c)
	}
}

func TestGenerateFormat(t *testing.T) {
	gen, err := Backend().NewGenerator(generator.SearchConfig{Chain: generator.Ethereum})
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}

	for i := 0; i < 20; i++ {
		c, err := gen.Generate()
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if len(c.Address) != 42 || !common.IsHexAddress(c.Address) {
			t.Fatalf("malformed address %q", c.Address)
		}
		if c.Address != common.HexToAddress(c.Address).Hex() {
			t.Errorf("address %q is not EIP-55 checksummed", c.Address)
		}
		if c.RecoveryPhrase != "" {
			t.Errorf("unexpected recovery phrase without mnemonic mode")
		}

		key, err := crypto.HexToECDSA(strings.TrimPrefix(c.SecretMaterial, "0x"))
		if err != nil {
			t.Fatalf("secret %q does not parse: %v", c.SecretMaterial, err)
		}
		if got := crypto.PubkeyToAddress(key.PublicKey).Hex(); got != c.Address {
			t.Errorf("secret derives %s, candidate says %s", got, c.Address)
		}
	}
}

func TestBackendAlphabet(t *testing.T) {
	b := Backend()
	if b.Lead(generator.AddressTypeDefault) != "0x" {
		t.Errorf("unexpected lead %q", b.Lead(generator.AddressTypeDefault))
	}
	if !b.Alphabet(generator.AddressTypeDefault).Valid("DEADbeef") {
		t.Error("mixed case hex should be valid")
	}
}
