package generator

import (
	"strings"
)

// Alphabet is the set of characters that can appear in an address body.
// FoldCase alphabets carry no case information (Bech32, lowercase hex), so
// patterns are validated and matched case-insensitively regardless of the
// user's choice.
//
// Checksummed alphabets use letter case as a checksum (EIP-55) rather than as
// extra address space, which matters when estimating search difficulty.
type Alphabet struct {
	Name        string
	Chars       string
	FoldCase    bool
	Checksummed bool
}

// Predefined alphabets.
var (
	// Checksummed hex (EIP-55) is mixed case, so case-sensitive search is meaningful.
	MixedHexAlphabet = Alphabet{Name: "hex", Chars: "0123456789abcdefABCDEF", Checksummed: true}

	// Lowercase-only hex (Aptos, Sui).
	LowerHexAlphabet = Alphabet{Name: "hex", Chars: "0123456789abcdef", FoldCase: true}

	// Base58 excludes: 0 (zero), O (uppercase o), I (uppercase i), l (lowercase L)
	Base58Alphabet = Alphabet{Name: "base58", Chars: "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"}

	// Bech32 excludes 1, b, i, o.
	Bech32Alphabet = Alphabet{Name: "bech32", Chars: "023456789acdefghjklmnpqrstuvwxyz", FoldCase: true}
)

// InvalidChars returns the characters of s that are not in the alphabet.
// Useful for providing helpful error messages to users.
func (a Alphabet) InvalidChars(s string) []rune {
	if a.FoldCase {
		s = strings.ToLower(s)
	}
	var invalid []rune
	for _, c := range s {
		if !strings.ContainsRune(a.Chars, c) {
			invalid = append(invalid, c)
		}
	}
	return invalid
}

// Valid reports whether every character of s belongs to the alphabet.
func (a Alphabet) Valid(s string) bool {
	return len(a.InvalidChars(s)) == 0
}

// Size returns the number of distinct characters a position can take when
// matching with or without case folding.
func (a Alphabet) Size(caseSensitive bool) int {
	if a.FoldCase || !caseSensitive {
		seen := make(map[rune]struct{}, len(a.Chars))
		for _, c := range strings.ToLower(a.Chars) {
			seen[c] = struct{}{}
		}
		return len(seen)
	}
	return len(a.Chars)
}
