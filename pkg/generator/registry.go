package generator

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps chains to their backends.
type Registry struct {
	mu       sync.RWMutex
	backends map[Chain]Backend
}

// NewRegistry creates a registry holding the given backends.
func NewRegistry(backends ...Backend) *Registry {
	r := &Registry{backends: make(map[Chain]Backend, len(backends))}
	for _, b := range backends {
		r.Register(b)
	}
	return r
}

// Register adds or replaces the backend for b.Chain().
func (r *Registry) Register(b Backend) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends[b.Chain()] = b
}

// Lookup returns the backend for chain.
func (r *Registry) Lookup(chain Chain) (Backend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.backends[chain]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChain, chain)
	}
	return b, nil
}

// Chains returns the registered chains in declaration order.
func (r *Registry) Chains() []Chain {
	r.mu.RLock()
	defer r.mu.RUnlock()
	chains := make([]Chain, 0, len(r.backends))
	for c := range r.backends {
		chains = append(chains, c)
	}
	sort.Slice(chains, func(i, j int) bool { return chains[i] < chains[j] })
	return chains
}

// ValidatePattern checks pattern against the default address type of chain.
// It returns nil or a *ValidationError.
func (r *Registry) ValidatePattern(pattern string, chain Chain) error {
	_, _, err := r.Prepare(SearchConfig{Chain: chain, Pattern: pattern})
	return err
}

// Prepare validates cfg and returns it normalized for matching: surrounding
// whitespace and the chain lead are removed from the pattern, and case
// sensitivity is dropped for alphabets that carry no case. A case-sensitive
// pattern must spell the lead exactly as addresses do.
func (r *Registry) Prepare(cfg SearchConfig) (SearchConfig, Backend, error) {
	b, err := r.Lookup(cfg.Chain)
	if err != nil {
		return cfg, nil, err
	}

	pattern := strings.TrimSpace(cfg.Pattern)
	if pattern == "" {
		return cfg, nil, &ValidationError{Chain: cfg.Chain, Pattern: cfg.Pattern, Reason: "pattern is empty"}
	}
	if cfg.Position != Prefix && cfg.Position != Suffix {
		return cfg, nil, &ValidationError{Chain: cfg.Chain, Pattern: cfg.Pattern, Reason: "unknown position"}
	}

	alphabet := b.Alphabet(cfg.AddressType)
	strict := cfg.CaseSensitive && !alphabet.FoldCase

	if lead := b.Lead(cfg.AddressType); cfg.Position == Prefix || strings.HasPrefix(strings.ToLower(pattern), "0x") {
		var ok bool
		pattern, ok = stripLead(pattern, lead, strict)
		if !ok {
			return cfg, nil, &ValidationError{Chain: cfg.Chain, Pattern: cfg.Pattern, Reason: "addresses start with " + lead + " in exactly that case"}
		}
		if pattern == "" {
			return cfg, nil, &ValidationError{Chain: cfg.Chain, Pattern: cfg.Pattern, Reason: "pattern only contains the address lead " + lead}
		}
	}

	if invalid := alphabet.InvalidChars(pattern); len(invalid) > 0 {
		return cfg, nil, &ValidationError{
			Chain:   cfg.Chain,
			Pattern: cfg.Pattern,
			Invalid: invalid,
			Reason:  "not a " + alphabet.Name + " string",
		}
	}

	cfg.Pattern = pattern
	if alphabet.FoldCase {
		cfg.CaseSensitive = false
	}
	return cfg, b, nil
}
