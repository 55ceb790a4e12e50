// Package ethereum provides Ethereum vanity address generation.
// Addresses are EIP-55 checksummed hex (0x + 40 chars) derived from a
// secp256k1 key with Keccak-256.
package ethereum

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"

	"github.com/Amr-9/vanityhunt/pkg/generator"
)

// DerivationPath is the BIP-44 path of the first account, as used by most wallets.
const DerivationPath = "m/44'/60'/0'/0/0"

var derivationPath = []uint32{
	bip32.FirstHardenedChild + 44,
	bip32.FirstHardenedChild + 60,
	bip32.FirstHardenedChild + 0,
	0,
	0,
}

// Backend returns the Ethereum chain backend.
func Backend() generator.Backend { return backend{} }

type backend struct{}

func (backend) Chain() generator.Chain                            { return generator.Ethereum }
func (backend) Alphabet(generator.AddressType) generator.Alphabet { return generator.MixedHexAlphabet }
func (backend) Lead(generator.AddressType) string                 { return "0x" }

func (backend) NewGenerator(cfg generator.SearchConfig) (generator.AddressGenerator, error) {
	if cfg.Mnemonic {
		return generator.AddressGeneratorFunc(GenerateWithMnemonic), nil
	}
	return generator.AddressGeneratorFunc(Generate), nil
}

// Generate creates a random keypair without a recovery phrase.
func Generate() (generator.Candidate, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return generator.Candidate{}, err
	}
	return candidate(key, ""), nil
}

// GenerateWithMnemonic creates a fresh 12-word mnemonic and derives the
// first account from it.
func GenerateWithMnemonic() (generator.Candidate, error) {
	entropy, err := bip39.NewEntropy(128)
	if err != nil {
		return generator.Candidate{}, err
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return generator.Candidate{}, err
	}
	return FromMnemonic(mnemonic)
}

// FromMnemonic derives the account at DerivationPath from mnemonic.
func FromMnemonic(mnemonic string) (generator.Candidate, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return generator.Candidate{}, fmt.Errorf("invalid mnemonic")
	}
	key, err := DeriveKey(bip39.NewSeed(mnemonic, ""))
	if err != nil {
		return generator.Candidate{}, err
	}
	return candidate(key, mnemonic), nil
}

// DeriveKey walks DerivationPath from the BIP-32 master key of seed.
func DeriveKey(seed []byte) (*ecdsa.PrivateKey, error) {
	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("master key: %w", err)
	}
	for _, idx := range derivationPath {
		key, err = key.NewChildKey(idx)
		if err != nil {
			return nil, fmt.Errorf("derive %s: %w", DerivationPath, err)
		}
	}
	// bip32 drops leading zero bytes; ToECDSA wants exactly 32.
	return crypto.ToECDSA(common.LeftPadBytes(key.Key, 32))
}

func candidate(key *ecdsa.PrivateKey, mnemonic string) generator.Candidate {
	return generator.Candidate{
		Address:        crypto.PubkeyToAddress(key.PublicKey).Hex(),
		SecretMaterial: hexutil.Encode(crypto.FromECDSA(key)),
		RecoveryPhrase: mnemonic,
	}
}
