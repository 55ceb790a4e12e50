package bitcoin

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/Amr-9/vanityhunt/pkg/generator"
)

// Params are the network parameters addresses are encoded for.
var Params = &chaincfg.MainNetParams

// Generate creates a random secp256k1 key and its address of the given type.
// The secret is the compressed-key WIF (starts with K or L on mainnet).
func Generate(addrType generator.AddressType) (generator.Candidate, error) {
	privKey, err := btcec.NewPrivateKey()
	if err != nil {
		return generator.Candidate{}, err
	}

	address, err := DeriveAddress(privKey.PubKey(), addrType)
	if err != nil {
		return generator.Candidate{}, err
	}
	wif, err := PrivateKeyToWIF(privKey)
	if err != nil {
		return generator.Candidate{}, err
	}

	return generator.Candidate{Address: address, SecretMaterial: wif}, nil
}

// PrivateKeyToWIF converts a private key to Wallet Import Format (WIF).
func PrivateKeyToWIF(privKey *btcec.PrivateKey) (string, error) {
	wif, err := btcutil.NewWIF(privKey, Params, true)
	if err != nil {
		return "", err
	}
	return wif.String(), nil
}
