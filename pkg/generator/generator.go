// Package generator defines the types shared by the vanity address search
// engine and the per-chain address generators.
// The engine only sees chains through the Backend and AddressGenerator
// interfaces, so new networks can be added without touching the search code.
package generator

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Chain represents the blockchain network for address generation.
type Chain int

const (
	Ethereum Chain = iota // Ethereum (secp256k1, Keccak-256, Hex)
	Solana                // Solana (Ed25519, Base58)
	Aptos                 // Aptos (Ed25519, SHA3-256, Hex)
	Sui                   // Sui (Ed25519, Blake2b-256, Hex)
	Bitcoin               // Bitcoin (secp256k1, SHA256+RIPEMD160, Base58/Bech32)
	Tron                  // Tron (secp256k1, Keccak-256, Base58Check)
)

var chainNames = map[Chain]string{
	Ethereum: "Ethereum",
	Solana:   "Solana",
	Aptos:    "Aptos",
	Sui:      "Sui",
	Bitcoin:  "Bitcoin",
	Tron:     "Tron",
}

// String returns the chain name.
func (c Chain) String() string {
	if name, ok := chainNames[c]; ok {
		return name
	}
	return "Unknown"
}

// ParseChain resolves a chain from its name or ticker, case-insensitively.
func ParseChain(s string) (Chain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ethereum", "eth":
		return Ethereum, nil
	case "solana", "sol":
		return Solana, nil
	case "aptos", "apt":
		return Aptos, nil
	case "sui":
		return Sui, nil
	case "bitcoin", "btc":
		return Bitcoin, nil
	case "tron", "trx":
		return Tron, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownChain, s)
}

// AddressType represents the Bitcoin address format.
// Other chains ignore it.
type AddressType int

const (
	AddressTypeDefault      AddressType = iota // Default for network (P2TR for Bitcoin)
	AddressTypeTaproot                         // P2TR - Taproot (bc1p...)
	AddressTypeLegacy                          // P2PKH - Legacy (1...)
	AddressTypeNestedSegWit                    // P2SH-P2WPKH - Nested SegWit (3...)
	AddressTypeNativeSegWit                    // P2WPKH - Native SegWit (bc1q...)
)

// String returns the address type name.
func (a AddressType) String() string {
	switch a {
	case AddressTypeTaproot:
		return "Taproot (P2TR)"
	case AddressTypeLegacy:
		return "Legacy (P2PKH)"
	case AddressTypeNestedSegWit:
		return "Nested SegWit (P2SH)"
	case AddressTypeNativeSegWit:
		return "Native SegWit (P2WPKH)"
	default:
		return "Default"
	}
}

// ParseAddressType accepts the short names used on the command line.
func ParseAddressType(s string) (AddressType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return AddressTypeDefault, nil
	case "taproot", "p2tr":
		return AddressTypeTaproot, nil
	case "legacy", "p2pkh":
		return AddressTypeLegacy, nil
	case "nested", "nested-segwit", "p2sh":
		return AddressTypeNestedSegWit, nil
	case "segwit", "native-segwit", "p2wpkh":
		return AddressTypeNativeSegWit, nil
	}
	return 0, fmt.Errorf("unknown address type %q", s)
}

// Position selects which end of the address the pattern must match.
type Position int

const (
	Prefix Position = iota
	Suffix
)

// String returns the position name.
func (p Position) String() string {
	if p == Suffix {
		return "suffix"
	}
	return "prefix"
}

// ParsePosition parses "prefix" or "suffix".
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prefix", "start":
		return Prefix, nil
	case "suffix", "end":
		return Suffix, nil
	}
	return 0, fmt.Errorf("unknown position %q (want prefix or suffix)", s)
}

// SearchConfig holds the configuration for one vanity address search.
// It is passed by value so every worker gets its own immutable copy.
type SearchConfig struct {
	Chain         Chain       // Target network
	AddressType   AddressType // Address type (Bitcoin only)
	Position      Position    // Where the pattern must appear
	Pattern       string      // Desired prefix or suffix
	CaseSensitive bool        // Compare without case folding
	Mnemonic      bool        // Derive keys from a fresh BIP-39 mnemonic where supported
}

// Candidate is a single generated keypair and its address.
type Candidate struct {
	Address        string // Formatted address (0x... for ETH, Base58 for SOL)
	SecretMaterial string // Exportable private key (hex, WIF or Base58 depending on chain)
	RecoveryPhrase string // BIP-39 mnemonic, empty when the chain has none
}

// SearchResult contains a successfully found vanity address.
type SearchResult struct {
	SearchID      string        // Identifier of the search run
	Chain         Chain         // Network the address belongs to
	Candidate     Candidate     // The matching keypair
	TotalAttempts uint64        // Global attempt count when the match was accepted
	Elapsed       time.Duration // Time from start to the match
	WorkerID      int           // Worker that produced the match
}

// Progress is the aggregate attempt counter of a running search.
type Progress struct {
	TotalAttempts uint64    // Total number of addresses generated
	StartTime     time.Time // When the search started
}

// Stats holds performance statistics derived from a Progress sample.
type Stats struct {
	Attempts       uint64        // Total number of addresses generated
	Elapsed        time.Duration // Time elapsed since start
	ElapsedSeconds uint64        // Whole seconds elapsed
	HashRate       uint64        // Addresses per second, 0 during the first second
}

// Outcome is delivered once per search: either Result or Err is set.
type Outcome struct {
	Result *SearchResult
	Err    error
}

// AddressGenerator produces fresh random keypairs for one chain.
// Every call must be independent; implementations need not be safe for
// concurrent use because each worker owns its own instance.
type AddressGenerator interface {
	Generate() (Candidate, error)
}

// AddressGeneratorFunc adapts a plain function to AddressGenerator.
type AddressGeneratorFunc func() (Candidate, error)

// Generate calls f.
func (f AddressGeneratorFunc) Generate() (Candidate, error) { return f() }

// Backend describes a supported chain: its pattern alphabet, the fixed lead
// every address starts with, and how to build generators.
type Backend interface {
	Chain() Chain
	Alphabet(t AddressType) Alphabet
	Lead(t AddressType) string
	NewGenerator(cfg SearchConfig) (AddressGenerator, error)
}

// Engine defines the contract for search backends.
type Engine interface {
	// Start begins the vanity address search with the given configuration.
	// Validation and busy errors are returned synchronously; the outcome of
	// the search is delivered once on the returned channel.
	Start(ctx context.Context, cfg SearchConfig) (<-chan Outcome, error)

	// Stop cancels the running search. It is safe to call at any time.
	Stop()

	// Stats returns the current performance statistics.
	// This method is safe to call concurrently from any goroutine.
	Stats() Stats

	// SubscribeProgress registers fn for periodic progress samples.
	SubscribeProgress(fn func(Stats)) (unsubscribe func())

	// SubscribeFound registers fn for the result of successful searches.
	SubscribeFound(fn func(SearchResult)) (unsubscribe func())

	// Name returns the implementation name (e.g., "CPU").
	Name() string
}
