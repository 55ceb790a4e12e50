// Package aptos provides Aptos vanity address generation.
// Aptos addresses are 64-character lowercase hex strings with a 0x lead.
package aptos

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/Amr-9/vanityhunt/pkg/generator"
)

// Backend returns the Aptos chain backend.
func Backend() generator.Backend { return backend{} }

type backend struct{}

func (backend) Chain() generator.Chain                            { return generator.Aptos }
func (backend) Alphabet(generator.AddressType) generator.Alphabet { return generator.LowerHexAlphabet }
func (backend) Lead(generator.AddressType) string                 { return "0x" }

func (backend) NewGenerator(generator.SearchConfig) (generator.AddressGenerator, error) {
	return generator.AddressGeneratorFunc(Generate), nil
}

// Generate creates a random Ed25519 keypair. The secret is the hex seed
// (first 32 bytes of the Ed25519 private key).
func Generate() (generator.Candidate, error) {
	pubKey, privKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return generator.Candidate{}, err
	}
	return generator.Candidate{
		Address:        DeriveAddress(pubKey),
		SecretMaterial: hex.EncodeToString(privKey.Seed()),
	}, nil
}

// DeriveAddress derives an Aptos address from an Ed25519 public key.
// Formula: SHA3-256(pubkey || 0x00)
// The 0x00 is the single-signature scheme identifier.
func DeriveAddress(pubKey []byte) string {
	data := make([]byte, len(pubKey)+1)
	copy(data, pubKey)
	data[len(pubKey)] = 0x00

	hash := sha3.Sum256(data)
	return "0x" + hex.EncodeToString(hash[:])
}
