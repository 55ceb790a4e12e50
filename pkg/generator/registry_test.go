package generator

import (
	"errors"
	"reflect"
	"testing"
)

type stubBackend struct {
	chain    Chain
	alphabet Alphabet
	lead     string
}

func (s stubBackend) Chain() Chain                 { return s.chain }
func (s stubBackend) Alphabet(AddressType) Alphabet { return s.alphabet }
func (s stubBackend) Lead(AddressType) string       { return s.lead }
func (s stubBackend) NewGenerator(SearchConfig) (AddressGenerator, error) {
	return AddressGeneratorFunc(func() (Candidate, error) { return Candidate{}, nil }), nil
}

func testRegistry() *Registry {
	return NewRegistry(
		stubBackend{chain: Ethereum, alphabet: MixedHexAlphabet, lead: "0x"},
		stubBackend{chain: Solana, alphabet: Base58Alphabet},
		stubBackend{chain: Tron, alphabet: Base58Alphabet, lead: "T"},
	)
}

func TestValidatePattern(t *testing.T) {
	r := testRegistry()

	tests := []struct {
		name    string
		pattern string
		chain   Chain
		invalid []rune
		wantErr bool
	}{
		{"hex ok", "abc123", Ethereum, nil, false},
		{"hex with 0x ok", "0xABC", Ethereum, nil, false},
		{"hex invalid", "0xZZ", Ethereum, []rune("ZZ"), true},
		{"only lead", "0x", Ethereum, nil, true},
		{"empty", "", Ethereum, nil, true},
		{"blank", "   ", Solana, nil, true},
		{"base58 ok", "Sol4", Solana, nil, false},
		{"base58 excludes 0OIl", "a0OIl", Solana, []rune("0OIl"), true},
		{"tron lead optional", "TAbc", Tron, nil, false},
		{"unknown chain", "abc", Sui, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.ValidatePattern(tt.pattern, tt.chain)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePattern(%q) error = %v, wantErr %v", tt.pattern, err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if tt.chain == Sui {
				if !errors.Is(err, ErrUnknownChain) {
					t.Errorf("expected ErrUnknownChain, got %v", err)
				}
				return
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if tt.invalid != nil && !reflect.DeepEqual(verr.Invalid, tt.invalid) {
				t.Errorf("Invalid = %q, want %q", string(verr.Invalid), string(tt.invalid))
			}
		})
	}
}

func TestPrepareNormalizesPattern(t *testing.T) {
	r := testRegistry()

	cfg, _, err := r.Prepare(SearchConfig{Chain: Ethereum, Pattern: " 0xBeef ", Position: Prefix, CaseSensitive: true})
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if cfg.Pattern != "Beef" {
		t.Errorf("Pattern = %q, want %q", cfg.Pattern, "Beef")
	}
	if !cfg.CaseSensitive {
		t.Error("mixed-case hex should keep case sensitivity")
	}

	// A suffix keeps a leading T since it is part of the address body.
	cfg, _, err = r.Prepare(SearchConfig{Chain: Tron, Pattern: "Tx", Position: Suffix})
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if cfg.Pattern != "Tx" {
		t.Errorf("Pattern = %q, want %q", cfg.Pattern, "Tx")
	}
}

func TestPrepareLeadCase(t *testing.T) {
	r := NewRegistry(
		stubBackend{chain: Ethereum, alphabet: MixedHexAlphabet, lead: "0x"},
		stubBackend{chain: Tron, alphabet: Base58Alphabet, lead: "T"},
		stubBackend{chain: Bitcoin, alphabet: Bech32Alphabet, lead: "bc1p"},
	)

	tests := []struct {
		name          string
		chain         Chain
		pattern       string
		caseSensitive bool
		want          string
		wantErr       bool
	}{
		{"tron exact lead", Tron, "TAB", true, "AB", false},
		{"tron lead in wrong case", Tron, "tAB", true, "", true},
		{"tron folded search strips any case", Tron, "tAB", false, "AB", false},
		{"tron body without lead", Tron, "AB", true, "AB", false},
		{"hex upper 0X is not a lead", Ethereum, "0XBeef", true, "", true},
		{"hex folded 0X", Ethereum, "0XBeef", false, "Beef", false},
		{"bech32 ignores case", Bitcoin, "BC1Pqq", true, "qq", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, err := r.Prepare(SearchConfig{Chain: tt.chain, Pattern: tt.pattern, Position: Prefix, CaseSensitive: tt.caseSensitive})
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("Prepare(%q) error = %v, want ErrValidation", tt.pattern, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Prepare(%q) error = %v", tt.pattern, err)
			}
			if cfg.Pattern != tt.want {
				t.Errorf("Pattern = %q, want %q", cfg.Pattern, tt.want)
			}
		})
	}
}

// A pattern accepted by Prepare only matches addresses that satisfy the
// pattern as the user typed it.
func TestPreparedMatcherAgreesWithRawPattern(t *testing.T) {
	b := stubBackend{chain: Tron, alphabet: Base58Alphabet, lead: "T"}
	r := NewRegistry(b)
	addresses := []string{"TABcdef", "TtABcde", "TabCdef"}

	for _, pattern := range []string{"TAB", "tAB", "AB", "Tab"} {
		cfg, backend, err := r.Prepare(SearchConfig{Chain: Tron, Pattern: pattern, Position: Prefix, CaseSensitive: true})
		if err != nil {
			continue
		}
		m := NewMatcher(cfg, backend)
		for _, addr := range addresses {
			got := m.Matches(addr)
			want := Matches(addr, pattern, Prefix, true) || Matches(addr, "T"+pattern, Prefix, true)
			if got != want {
				t.Errorf("pattern %q on %q: matcher = %v, raw = %v", pattern, addr, got, want)
			}
		}
	}
}

func TestRegistryChainsOrdered(t *testing.T) {
	got := testRegistry().Chains()
	want := []Chain{Ethereum, Solana, Tron}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Chains() = %v, want %v", got, want)
	}
}

func TestParseChain(t *testing.T) {
	for in, want := range map[string]Chain{"eth": Ethereum, "Solana": Solana, " BTC ": Bitcoin, "trx": Tron, "apt": Aptos, "sui": Sui} {
		got, err := ParseChain(in)
		if err != nil || got != want {
			t.Errorf("ParseChain(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseChain("dogecoin"); !errors.Is(err, ErrUnknownChain) {
		t.Errorf("expected ErrUnknownChain, got %v", err)
	}
}

func TestAlphabetSize(t *testing.T) {
	if got := MixedHexAlphabet.Size(false); got != 16 {
		t.Errorf("hex folded size = %d, want 16", got)
	}
	if got := Base58Alphabet.Size(true); got != 58 {
		t.Errorf("base58 size = %d, want 58", got)
	}
	if got := Bech32Alphabet.Size(true); got != 32 {
		t.Errorf("bech32 size = %d, want 32", got)
	}
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("entropy exhausted")
	err := error(&GenerationError{Chain: Solana, Worker: 3, Err: cause})
	if !errors.Is(err, ErrGeneration) || !errors.Is(err, cause) {
		t.Errorf("GenerationError should wrap both ErrGeneration and its cause: %v", err)
	}
}
