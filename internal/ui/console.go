// Package ui renders the interactive terminal front end with pterm.
package ui

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/pterm/pterm"

	"github.com/Amr-9/vanityhunt/pkg/generator"
)

var (
	accent  = pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	good    = pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	warn    = pterm.NewStyle(pterm.FgYellow)
	danger  = pterm.NewStyle(pterm.FgRed, pterm.Bold)
	dimmed  = pterm.NewStyle(pterm.FgGray)
	heading = pterm.NewStyle(pterm.FgMagenta, pterm.Bold)
)

// chainIcons label each network in listings and results.
var chainIcons = map[generator.Chain]string{
	generator.Ethereum: "⟠",
	generator.Solana:   "◎",
	generator.Aptos:    "◆",
	generator.Sui:      "◇",
	generator.Bitcoin:  "₿",
	generator.Tron:     "♦",
}

// PrintWelcomeBanner shows the welcome screen
func PrintWelcomeBanner(version string) {
	pterm.Println()
	pterm.DefaultHeader.
		WithFullWidth().
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack, pterm.Bold)).
		Println("VANITYHUNT • Vanity Address Generator • v" + version)
	pterm.Println()
}

// PrintSearchInfo displays search configuration
func PrintSearchInfo(cfg generator.SearchConfig, lead string, workers int, difficulty uint64) {
	var target string
	if cfg.Position == generator.Suffix {
		target = dimmed.Sprint(lead+"...") + accent.Sprint(cfg.Pattern)
	} else {
		target = accent.Sprint(lead+cfg.Pattern) + dimmed.Sprint("...")
	}

	mode := "case-insensitive"
	if cfg.CaseSensitive {
		mode = "case-sensitive"
	}

	pterm.Printfln("    %s %s %s", good.Sprint("🚀 SEARCHING"), target, dimmed.Sprintf("(1/%s)", FormatNumber(difficulty)))
	pterm.Printfln("    %s", dimmed.Sprintf("%s %s • %s • %d workers", chainIcons[cfg.Chain], cfg.Chain, mode, workers))
	pterm.Println()
}

// Difficulty estimates the expected number of attempts to find pattern.
// Each character costs the size of the space it is drawn from; letters in
// checksummed alphabets cost double when case matters. The result
// saturates at math.MaxUint64.
func Difficulty(pattern string, a generator.Alphabet, caseSensitive bool) uint64 {
	d := 1.0
	for _, c := range pattern {
		d *= charOdds(c, a, caseSensitive)
	}
	if d >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(d)
}

func charOdds(c rune, a generator.Alphabet, caseSensitive bool) float64 {
	switch {
	case a.FoldCase:
		return float64(a.Size(false))
	case a.Checksummed:
		if caseSensitive && unicode.IsLetter(c) {
			return float64(a.Size(false)) * 2
		}
		return float64(a.Size(false))
	}

	matches := 0
	for _, r := range a.Chars {
		if r == c || (!caseSensitive && strings.EqualFold(string(r), string(c))) {
			matches++
		}
	}
	if matches == 0 {
		return math.Inf(1)
	}
	return float64(len(a.Chars)) / float64(matches)
}

// Probability returns the chance that a match has shown up after attempts.
func Probability(attempts, difficulty uint64) float64 {
	if difficulty == 0 {
		return 1
	}
	return -math.Expm1(-float64(attempts) / float64(difficulty))
}

// ProgressBar renders p (0..1) as a bar of the given width.
func ProgressBar(p float64, width int) string {
	filled := int(p * float64(width))
	filled = max(0, min(filled, width))
	return strings.Repeat("▓", filled) + strings.Repeat("░", width-filled)
}

// ProgressLine is the one-line status shown while searching.
func ProgressLine(stats generator.Stats, difficulty uint64) string {
	p := Probability(stats.Attempts, difficulty)
	return fmt.Sprintf("%s %s │ %s │ %s │ %s",
		dimmed.Sprint(ProgressBar(p, 30)),
		good.Sprint(FormatHashRate(stats.HashRate)),
		warn.Sprint(FormatNumber(stats.Attempts)),
		FormatDuration(time.Duration(stats.ElapsedSeconds)*time.Second),
		dimmed.Sprintf("%.1f%%", p*100))
}

// Progress is the live status line of a running search.
type Progress struct {
	spinner    *pterm.SpinnerPrinter
	difficulty uint64
}

// StartProgress starts the spinner.
func StartProgress(difficulty uint64) (*Progress, error) {
	sp, err := pterm.DefaultSpinner.
		WithRemoveWhenDone(true).
		WithShowTimer(false).
		Start(ProgressLine(generator.Stats{}, difficulty))
	if err != nil {
		return nil, err
	}
	return &Progress{spinner: sp, difficulty: difficulty}, nil
}

// Update refreshes the status line.
func (p *Progress) Update(stats generator.Stats) {
	p.spinner.UpdateText(ProgressLine(stats, p.difficulty))
}

// Stop removes the status line.
func (p *Progress) Stop() {
	_ = p.spinner.Stop()
}

// FormatHashRate formats hash rate nicely
func FormatHashRate(rate uint64) string {
	if rate >= 1000000 {
		return fmt.Sprintf("%.1fM/s", float64(rate)/1000000)
	}
	if rate >= 1000 {
		return fmt.Sprintf("%.1fK/s", float64(rate)/1000)
	}
	return fmt.Sprintf("%d/s", rate)
}

// PrintSuccess shows the found address
func PrintSuccess(result generator.SearchResult, saved []string) {
	c := result.Candidate

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n  %s\n\n", accent.Sprintf("%s %s ADDRESS", chainIcons[result.Chain], strings.ToUpper(result.Chain.String())), good.Sprint(c.Address))
	fmt.Fprintf(&b, "%s\n  %s\n", heading.Sprint("🔑 PRIVATE KEY"), warn.Sprint(c.SecretMaterial))
	if c.RecoveryPhrase != "" {
		fmt.Fprintf(&b, "\n%s\n  %s\n", heading.Sprint("📝 RECOVERY PHRASE"), warn.Sprint(c.RecoveryPhrase))
	}
	fmt.Fprintf(&b, "\n⏱  %s   │   📊  %s attempts", FormatDuration(result.Elapsed), FormatNumber(result.TotalAttempts))
	if len(saved) > 0 {
		fmt.Fprintf(&b, "   │   💾  %s", strings.Join(saved, ", "))
	}

	pterm.Println()
	pterm.DefaultBox.WithTitle(good.Sprint("✨ ADDRESS FOUND ✨")).WithTitleTopCenter().Println(b.String())
	pterm.Println()
	pterm.Println("    " + danger.Sprint("⚠  KEEP YOUR PRIVATE KEY SECRET!"))
}

// PrintStopped reports a search that ended without a match.
func PrintStopped(stats generator.Stats, reason error) {
	pterm.Warning.Printfln("Search ended after %s attempts in %s: %v",
		FormatNumber(stats.Attempts), FormatDuration(stats.Elapsed), reason)
}

// PrintError reports a fatal error.
func PrintError(err error) {
	pterm.Error.Println(err.Error())
}

// PrintChains lists the registered backends.
func PrintChains(reg *generator.Registry) error {
	data := pterm.TableData{{"Chain", "Lead", "Alphabet", "Case"}}
	for _, chain := range reg.Chains() {
		b, err := reg.Lookup(chain)
		if err != nil {
			return err
		}
		types := []generator.AddressType{generator.AddressTypeDefault}
		if chain == generator.Bitcoin {
			types = []generator.AddressType{
				generator.AddressTypeTaproot,
				generator.AddressTypeLegacy,
				generator.AddressTypeNestedSegWit,
				generator.AddressTypeNativeSegWit,
			}
		}
		for _, t := range types {
			a := b.Alphabet(t)
			name := chainIcons[chain] + " " + chain.String()
			if t != generator.AddressTypeDefault {
				name += " " + t.String()
			}
			caseMode := "sensitive or not"
			if a.FoldCase {
				caseMode = "insensitive"
			}
			data = append(data, []string{name, b.Lead(t), a.Name, caseMode})
		}
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// FormatNumber adds commas to large numbers
func FormatNumber(n uint64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	s := fmt.Sprintf("%d", n)
	result := make([]byte, 0, len(s)+(len(s)-1)/3)
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}

// FormatDuration formats duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}
