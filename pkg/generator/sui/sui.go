// Package sui provides Sui vanity address generation.
package sui

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/Amr-9/vanityhunt/pkg/generator"
)

// Backend returns the Sui chain backend.
func Backend() generator.Backend { return backend{} }

type backend struct{}

func (backend) Chain() generator.Chain                            { return generator.Sui }
func (backend) Alphabet(generator.AddressType) generator.Alphabet { return generator.LowerHexAlphabet }
func (backend) Lead(generator.AddressType) string                 { return "0x" }

func (backend) NewGenerator(generator.SearchConfig) (generator.AddressGenerator, error) {
	return generator.AddressGeneratorFunc(Generate), nil
}

// Generate creates a random Ed25519 keypair with its hex seed as the secret.
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

// DeriveAddress computes the Sui address from an Ed25519 public key.
// Sui address = Blake2b-256(0x00 || pubkey) where 0x00 is Ed25519 signature scheme flag.
func DeriveAddress(pubKey []byte) string {
	data := make([]byte, len(pubKey)+1)
	data[0] = 0x00
	copy(data[1:], pubKey)

	hash := blake2b.Sum256(data)
	return "0x" + hex.EncodeToString(hash[:])
}
