// Package bitcoin provides Bitcoin vanity address generation support.
// Supports P2TR (Taproot), P2PKH (Legacy), P2SH-P2WPKH (Nested SegWit) and
// P2WPKH (Native SegWit) on mainnet.
package bitcoin

import (
	"github.com/Amr-9/vanityhunt/pkg/generator"
)

// AddressPrefix returns the fixed lead of a Bitcoin address type.
func AddressPrefix(addrType generator.AddressType) string {
	switch addrType {
	case generator.AddressTypeLegacy:
		return "1"
	case generator.AddressTypeNestedSegWit:
		return "3"
	case generator.AddressTypeNativeSegWit:
		return "bc1q"
	default:
		return "bc1p" // Default to Taproot
	}
}

// AddressDescription returns a human-readable description of an address type.
func AddressDescription(addrType generator.AddressType) string {
	switch addrType {
	case generator.AddressTypeLegacy:
		return "Legacy (1...)"
	case generator.AddressTypeNestedSegWit:
		return "Nested SegWit (3...)"
	case generator.AddressTypeNativeSegWit:
		return "Native SegWit (bc1q...)"
	default:
		return "Taproot (bc1p...)"
	}
}

// IsBech32Type returns true if the address type uses Bech32/Bech32m encoding.
// Bech32 strings are single-case, so searches on them ignore case.
func IsBech32Type(addrType generator.AddressType) bool {
	switch addrType {
	case generator.AddressTypeLegacy, generator.AddressTypeNestedSegWit:
		return false
	default:
		return true
	}
}

// Backend returns the Bitcoin chain backend.
func Backend() generator.Backend { return backend{} }

type backend struct{}

func (backend) Chain() generator.Chain { return generator.Bitcoin }

func (backend) Alphabet(t generator.AddressType) generator.Alphabet {
	if IsBech32Type(t) {
		return generator.Bech32Alphabet
	}
	return generator.Base58Alphabet
}

func (backend) Lead(t generator.AddressType) string { return AddressPrefix(t) }

func (backend) NewGenerator(cfg generator.SearchConfig) (generator.AddressGenerator, error) {
	addrType := cfg.AddressType
	return generator.AddressGeneratorFunc(func() (generator.Candidate, error) {
		return Generate(addrType)
	}), nil
}
