package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Amr-9/vanityhunt/pkg/generator"
	"github.com/Amr-9/vanityhunt/pkg/generator/bitcoin"
)

// Prompter asks the interactive questions used when no pattern was given on
// the command line.
type Prompter struct {
	r   *bufio.Reader
	w   io.Writer
	reg *generator.Registry
}

// NewPrompter reads answers from r and writes prompts to w.
func NewPrompter(r io.Reader, w io.Writer, reg *generator.Registry) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w, reg: reg}
}

// readLine returns the next trimmed line. io.EOF is only returned when the
// input ended before any text.
func (p *Prompter) readLine() (string, error) {
	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) arrow() {
	fmt.Fprintf(p.w, "\n    %s ", good.Sprint("→"))
}

// SelectChain lists the registered chains and returns the chosen one.
// An empty answer picks the first chain.
func (p *Prompter) SelectChain() (generator.Chain, error) {
	chains := p.reg.Chains()
	fmt.Fprintf(p.w, "    %s\n", heading.Sprint("🌐 SELECT NETWORK"))
	for i, c := range chains {
		b, _ := p.reg.Lookup(c)
		fmt.Fprintf(p.w, "    %s %s %s %s\n",
			accent.Sprintf("[%d]", i+1), chainIcons[c], c,
			dimmed.Sprintf("- %s", b.Alphabet(generator.AddressTypeDefault).Name))
	}

	for {
		p.arrow()
		answer, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if answer == "" {
			answer = "1"
		}
		if c, ok := pickChain(answer, chains); ok {
			fmt.Fprintf(p.w, "    %s\n\n", good.Sprintf("✓ %s Selected", c))
			return c, nil
		}
		fmt.Fprintf(p.w, "    %s\n", danger.Sprint("⚠ Unknown choice"))
	}
}

func pickChain(answer string, chains []generator.Chain) (generator.Chain, bool) {
	var n int
	if _, err := fmt.Sscanf(answer, "%d", &n); err == nil && n >= 1 && n <= len(chains) {
		return chains[n-1], true
	}
	c, err := generator.ParseChain(answer)
	if err != nil {
		return 0, false
	}
	for _, known := range chains {
		if known == c {
			return c, true
		}
	}
	return 0, false
}

// SelectAddressType asks for the Bitcoin address format.
func (p *Prompter) SelectAddressType() (generator.AddressType, error) {
	types := []generator.AddressType{
		generator.AddressTypeTaproot,
		generator.AddressTypeLegacy,
		generator.AddressTypeNestedSegWit,
		generator.AddressTypeNativeSegWit,
	}
	fmt.Fprintf(p.w, "    %s\n", heading.Sprint("₿ ADDRESS TYPE"))
	for i, t := range types {
		fmt.Fprintf(p.w, "    %s %s\n", accent.Sprintf("[%d]", i+1), bitcoin.AddressDescription(t))
	}

	for {
		p.arrow()
		answer, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return generator.AddressTypeTaproot, nil
		}
		var n int
		if _, err := fmt.Sscanf(answer, "%d", &n); err == nil && n >= 1 && n <= len(types) {
			return types[n-1], nil
		}
		if t, err := generator.ParseAddressType(answer); err == nil {
			return t, nil
		}
		fmt.Fprintf(p.w, "    %s\n", danger.Sprint("⚠ Unknown choice"))
	}
}

// ReadTarget asks for the position and pattern, repeating the pattern
// question until the registry accepts it. The returned config has been
// through Registry.Prepare.
func (p *Prompter) ReadTarget(cfg generator.SearchConfig) (generator.SearchConfig, error) {
	fmt.Fprintf(p.w, "    %s\n", heading.Sprint("🎯 TARGET PATTERN"))
	fmt.Fprintf(p.w, "    %s prefix  %s suffix", accent.Sprint("[1]"), accent.Sprint("[2]"))
	p.arrow()
	answer, err := p.readLine()
	if err != nil {
		return cfg, err
	}
	cfg.Position = generator.Prefix
	if answer == "2" || strings.EqualFold(answer, "suffix") {
		cfg.Position = generator.Suffix
	}

	for {
		fmt.Fprintf(p.w, "    %s (%s): ", accent.Sprint("Pattern"), cfg.Position)
		pattern, err := p.readLine()
		if err != nil {
			return cfg, err
		}
		cfg.Pattern = pattern

		prepared, _, err := p.reg.Prepare(cfg)
		if err == nil {
			return prepared, nil
		}

		var verr *generator.ValidationError
		if errors.As(err, &verr) && len(verr.Invalid) > 0 {
			fmt.Fprintf(p.w, "    %s\n", danger.Sprintf("⚠ Invalid %s character(s): %s", verr.Chain, string(verr.Invalid)))
		} else {
			fmt.Fprintf(p.w, "    %s\n", danger.Sprintf("⚠ %v", err))
		}
	}
}

// AskToContinue prompts user to continue or exit
func (p *Prompter) AskToContinue() bool {
	fmt.Fprintf(p.w, "\n    %s Continue searching  │  %s Exit\n", good.Sprint("[Enter]"), danger.Sprint("[Q]"))
	fmt.Fprintf(p.w, "    %s ", accent.Sprint("→"))
	input, err := p.readLine()
	if err != nil {
		return false
	}
	input = strings.ToLower(input)
	return input != "q" && input != "quit" && input != "exit"
}
