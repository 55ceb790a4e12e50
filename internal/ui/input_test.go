package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Amr-9/vanityhunt/pkg/generator"
	"github.com/Amr-9/vanityhunt/pkg/generator/chains"
)

func TestSelectChain(t *testing.T) {
	tests := []struct {
		input string
		want  generator.Chain
	}{
		{"\n", generator.Ethereum},
		{"2\n", generator.Solana},
		{"tron\n", generator.Tron},
		{"99\nbtc\n", generator.Bitcoin},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out, chains.New())
			got, err := p.SelectChain()
			if err != nil {
				t.Fatalf("SelectChain() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("SelectChain() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSelectChainEOF(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{}, chains.New())
	if _, err := p.SelectChain(); err == nil {
		t.Error("expected an error at end of input")
	}
}

func TestReadTargetRepromptsOnInvalidPattern(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("1\n0xZZ\n0xBeEf\n"), &out, chains.New())

	cfg, err := p.ReadTarget(generator.SearchConfig{Chain: generator.Ethereum})
	if err != nil {
		t.Fatalf("ReadTarget() error = %v", err)
	}
	if cfg.Pattern != "BeEf" || cfg.Position != generator.Prefix {
		t.Errorf("ReadTarget() = %+v", cfg)
	}
	if !strings.Contains(out.String(), "ZZ") {
		t.Errorf("invalid characters were not reported: %q", out.String())
	}
}

func TestReadTargetSuffix(t *testing.T) {
	p := NewPrompter(strings.NewReader("suffix\nqq\n"), &bytes.Buffer{}, chains.New())
	cfg, err := p.ReadTarget(generator.SearchConfig{Chain: generator.Bitcoin, CaseSensitive: true})
	if err != nil {
		t.Fatalf("ReadTarget() error = %v", err)
	}
	if cfg.Position != generator.Suffix || cfg.CaseSensitive {
		t.Errorf("ReadTarget() = %+v", cfg)
	}
}

func TestSelectAddressType(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("3\n"), &out, chains.New())
	got, err := p.SelectAddressType()
	if err != nil || got != generator.AddressTypeNestedSegWit {
		t.Errorf("SelectAddressType() = %v, %v", got, err)
	}
	if !strings.Contains(out.String(), "Nested SegWit (3...)") {
		t.Errorf("menu missing address descriptions: %q", out.String())
	}
}

func TestAskToContinue(t *testing.T) {
	for input, want := range map[string]bool{"\n": true, "q\n": false, "EXIT\n": false, "": false} {
		p := NewPrompter(strings.NewReader(input), &bytes.Buffer{}, chains.New())
		if got := p.AskToContinue(); got != want {
			t.Errorf("AskToContinue(%q) = %v, want %v", input, got, want)
		}
	}
}
