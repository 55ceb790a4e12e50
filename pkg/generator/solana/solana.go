// Package solana provides Solana vanity address generation.
// A Solana address is the Base58-encoded Ed25519 public key.
package solana

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"

	"github.com/mr-tron/base58"

	"github.com/Amr-9/vanityhunt/pkg/generator"
)

// Backend returns the Solana chain backend.
func Backend() generator.Backend { return backend{} }

type backend struct{}

func (backend) Chain() generator.Chain                            { return generator.Solana }
func (backend) Alphabet(generator.AddressType) generator.Alphabet { return generator.Base58Alphabet }
func (backend) Lead(generator.AddressType) string                 { return "" }

func (backend) NewGenerator(generator.SearchConfig) (generator.AddressGenerator, error) {
	return generator.AddressGeneratorFunc(Generate), nil
}

// Generate creates a random Ed25519 keypair.
// The secret is the hex of the 64-byte secret key (seed followed by public key).
func Generate() (generator.Candidate, error) {
	pubKey, privKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return generator.Candidate{}, err
	}
	return generator.Candidate{
		Address:        base58.Encode(pubKey),
		SecretMaterial: hex.EncodeToString(privKey),
	}, nil
}

// KeypairBase58 converts a hex secret into the Base58 form most Solana
// wallets import.
func KeypairBase58(secret string) (string, error) {
	raw, err := hex.DecodeString(secret)
	if err != nil {
		return "", err
	}
	return base58.Encode(raw), nil
}
