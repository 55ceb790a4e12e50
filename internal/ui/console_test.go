package ui

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/Amr-9/vanityhunt/pkg/generator"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{math.MaxUint64, "18,446,744,073,709,551,615"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.5s"},
		{2*time.Minute + 5*time.Second, "2m 5s"},
		{3*time.Hour + 7*time.Minute, "3h 7m"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatHashRate(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0/s"},
		{999, "999/s"},
		{1500, "1.5K/s"},
		{2500000, "2.5M/s"},
	}
	for _, tt := range tests {
		if got := FormatHashRate(tt.in); got != tt.want {
			t.Errorf("FormatHashRate(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDifficulty(t *testing.T) {
	tests := []struct {
		name          string
		pattern       string
		alphabet      generator.Alphabet
		caseSensitive bool
		want          uint64
	}{
		{"lower hex", "dead", generator.LowerHexAlphabet, false, 65536},
		{"hex ignoring case", "DEAD", generator.MixedHexAlphabet, false, 65536},
		{"checksummed letters", "dEAd", generator.MixedHexAlphabet, true, 65536 * 16},
		{"checksummed digits", "1234", generator.MixedHexAlphabet, true, 65536},
		{"base58 exact", "ab", generator.Base58Alphabet, true, 58 * 58},
		{"base58 folded", "ab", generator.Base58Alphabet, false, 29 * 29},
		{"base58 digit", "1", generator.Base58Alphabet, false, 58},
		{"bech32", "qq", generator.Bech32Alphabet, true, 1024},
		{"empty", "", generator.Base58Alphabet, true, 1},
		{"saturates", strings.Repeat("f", 40), generator.LowerHexAlphabet, false, math.MaxUint64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Difficulty(tt.pattern, tt.alphabet, tt.caseSensitive); got != tt.want {
				t.Errorf("Difficulty() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestProbabilityAndBar(t *testing.T) {
	if p := Probability(0, 100); p != 0 {
		t.Errorf("Probability(0) = %f", p)
	}
	if p := Probability(100, 100); math.Abs(p-0.632) > 0.001 {
		t.Errorf("Probability(d, d) = %f, want ~0.632", p)
	}
	if p := Probability(5, 0); p != 1 {
		t.Errorf("Probability with zero difficulty = %f", p)
	}

	if got := ProgressBar(0.5, 10); got != "▓▓▓▓▓░░░░░" {
		t.Errorf("ProgressBar(0.5) = %q", got)
	}
	if got := ProgressBar(2, 4); got != "▓▓▓▓" {
		t.Errorf("ProgressBar(2) = %q", got)
	}
	if got := ProgressBar(-1, 3); got != "░░░" {
		t.Errorf("ProgressBar(-1) = %q", got)
	}
}
