package cpu

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Amr-9/vanityhunt/pkg/generator"
)

// stubBackend is an Ethereum-shaped backend whose generators are supplied by
// the test.
type stubBackend struct {
	newGen func(cfg generator.SearchConfig) (generator.AddressGenerator, error)
	calls  atomic.Int64
}

func (b *stubBackend) Chain() generator.Chain                            { return generator.Ethereum }
func (b *stubBackend) Alphabet(generator.AddressType) generator.Alphabet { return generator.MixedHexAlphabet }
func (b *stubBackend) Lead(generator.AddressType) string                 { return "0x" }

func (b *stubBackend) NewGenerator(cfg generator.SearchConfig) (generator.AddressGenerator, error) {
	b.calls.Add(1)
	return b.newGen(cfg)
}

// seqGenerator returns addr(n) on its n-th call, starting at 1.
type seqGenerator struct {
	calls atomic.Uint64
	addr  func(n uint64) (string, error)
}

func (g *seqGenerator) Generate() (generator.Candidate, error) {
	n := g.calls.Add(1)
	addr, err := g.addr(n)
	if err != nil {
		return generator.Candidate{}, err
	}
	return generator.Candidate{Address: addr, SecretMaterial: fmt.Sprintf("secret-%d", n)}, nil
}

const (
	missAddress  = "0x0000000000000000000000000000000000000000"
	matchAddress = "0xDEADbeef00000000000000000000000000000000"
)

// matchAt returns an address function that matches "dead" on call k only.
// k == 0 never matches.
func matchAt(k uint64) func(uint64) (string, error) {
	return func(n uint64) (string, error) {
		if n == k {
			return matchAddress, nil
		}
		return missAddress, nil
	}
}

func deadConfig() generator.SearchConfig {
	return generator.SearchConfig{
		Chain:    generator.Ethereum,
		Position: generator.Prefix,
		Pattern:  "dead",
	}
}

// newTestCoordinator wires a coordinator to a registry holding only b.
func newTestCoordinator(b *stubBackend, opts ...Option) *Coordinator {
	return NewCoordinator(generator.NewRegistry(b), opts...)
}

func waitOutcome(t *testing.T, ch <-chan generator.Outcome) generator.Outcome {
	t.Helper()
	select {
	case out, ok := <-ch:
		if !ok {
			t.Fatal("outcome channel closed without a value")
		}
		return out
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the search outcome")
	}
	return generator.Outcome{}
}

// assertQuiet fails if any generator is still being called.
func assertQuiet(t *testing.T, gens []*seqGenerator) {
	t.Helper()
	before := make([]uint64, len(gens))
	for i, g := range gens {
		before[i] = g.calls.Load()
	}
	time.Sleep(20 * time.Millisecond)
	for i, g := range gens {
		if after := g.calls.Load(); after != before[i] {
			t.Errorf("generator %d still running: %d -> %d calls", i, before[i], after)
		}
	}
}

var errEntropy = errors.New("entropy source closed")
