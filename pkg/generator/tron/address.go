// Package tron provides Tron vanity address generation.
// Tron shares Ethereum's secp256k1 + Keccak-256 derivation but encodes the
// address with Base58Check under version byte 0x41, so every address starts
// with 'T'.
package tron

import (
	"encoding/hex"
	"errors"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/Amr-9/vanityhunt/pkg/generator"
)

// MainnetPrefix is the address version byte for Tron mainnet.
const MainnetPrefix = 0x41

// Backend returns the Tron chain backend.
func Backend() generator.Backend { return backend{} }

type backend struct{}

func (backend) Chain() generator.Chain                            { return generator.Tron }
func (backend) Alphabet(generator.AddressType) generator.Alphabet { return generator.Base58Alphabet }
func (backend) Lead(generator.AddressType) string                 { return "T" }

func (backend) NewGenerator(generator.SearchConfig) (generator.AddressGenerator, error) {
	return generator.AddressGeneratorFunc(Generate), nil
}

// Generate creates a random keypair. The secret is the bare hex private
// key that TronLink imports.
func Generate() (generator.Candidate, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return generator.Candidate{}, err
	}
	return generator.Candidate{
		Address:        DeriveAddress(crypto.FromECDSAPub(&key.PublicKey)),
		SecretMaterial: hex.EncodeToString(crypto.FromECDSA(key)),
	}, nil
}

// DeriveAddress derives a Tron address from an uncompressed public key.
// Tron address = Base58Check(0x41 + last 20 bytes of Keccak256(pubKey[1:]))
func DeriveAddress(pubKeyBytes []byte) string {
	hash := crypto.Keccak256(pubKeyBytes[1:])
	return base58.CheckEncode(hash[len(hash)-20:], MainnetPrefix)
}

// decodeAddress returns the version byte and 20-byte account hash of a
// Base58Check address.
func decodeAddress(address string) (byte, []byte, error) {
	hash, version, err := base58.CheckDecode(address)
	if err != nil {
		return 0, nil, err
	}
	if len(hash) != 20 {
		return 0, nil, errors.New("tron: bad address length")
	}
	return version, hash, nil
}
