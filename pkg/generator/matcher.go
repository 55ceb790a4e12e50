package generator

import (
	"strings"
)

// Matches reports whether address satisfies pattern at the given position.
// Without caseSensitive both sides are lowercased with strings.ToLower,
// which does not depend on the process locale, before the comparison.
// A pattern longer than the address never matches.
func Matches(address, pattern string, position Position, caseSensitive bool) bool {
	if !caseSensitive {
		address = strings.ToLower(address)
		pattern = strings.ToLower(pattern)
	}
	if position == Suffix {
		return strings.HasSuffix(address, pattern)
	}
	return strings.HasPrefix(address, pattern)
}

// Matcher is a pattern compiled for one search. It strips the chain's fixed
// lead (e.g. "0x") so patterns are matched against the address body.
type Matcher struct {
	pattern       string // lowercased unless caseSensitive
	lead          string
	position      Position
	caseSensitive bool
}

// NewMatcher compiles cfg for the given backend. cfg is expected to have gone
// through Registry.Prepare, which strips the lead from the pattern.
func NewMatcher(cfg SearchConfig, b Backend) *Matcher {
	m := &Matcher{
		pattern:       cfg.Pattern,
		lead:          b.Lead(cfg.AddressType),
		position:      cfg.Position,
		caseSensitive: cfg.CaseSensitive && !b.Alphabet(cfg.AddressType).FoldCase,
	}
	if !m.caseSensitive {
		m.pattern = strings.ToLower(m.pattern)
	}
	return m
}

// Matches checks a generated address against the compiled pattern.
// ASCII addresses are compared without allocating.
func (m *Matcher) Matches(address string) bool {
	body := trimLead(address, m.lead)
	if m.caseSensitive {
		return Matches(body, m.pattern, m.position, true)
	}
	if !isASCII(body) {
		return Matches(strings.ToLower(body), m.pattern, m.position, true)
	}

	if len(m.pattern) > len(body) {
		return false
	}
	off := 0
	if m.position == Suffix {
		off = len(body) - len(m.pattern)
	}
	for i := 0; i < len(m.pattern); i++ {
		if lowerASCII(body[off+i]) != m.pattern[i] {
			return false
		}
	}
	return true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// trimLead removes lead from the start of s, ignoring case.
func trimLead(s, lead string) string {
	if lead != "" && len(s) >= len(lead) && strings.EqualFold(s[:len(lead)], lead) {
		return s[len(lead):]
	}
	return s
}

// stripLead removes lead from the start of a pattern. In a strict
// (case-sensitive) search only the exact lead is removed, and a lead written
// in another case is reported as not ok since no address can match it.
func stripLead(pattern, lead string, strict bool) (string, bool) {
	if !strict {
		return trimLead(pattern, lead), true
	}
	if lead == "" || len(pattern) < len(lead) {
		return pattern, true
	}
	if strings.HasPrefix(pattern, lead) {
		return pattern[len(lead):], true
	}
	if strings.EqualFold(pattern[:len(lead)], lead) {
		return pattern, false
	}
	return pattern, true
}
