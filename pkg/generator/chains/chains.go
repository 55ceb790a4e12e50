// Package chains wires every supported chain backend into a registry.
package chains

import (
	"sync"

	"github.com/Amr-9/vanityhunt/pkg/generator"
	"github.com/Amr-9/vanityhunt/pkg/generator/aptos"
	"github.com/Amr-9/vanityhunt/pkg/generator/bitcoin"
	"github.com/Amr-9/vanityhunt/pkg/generator/ethereum"
	"github.com/Amr-9/vanityhunt/pkg/generator/solana"
	"github.com/Amr-9/vanityhunt/pkg/generator/sui"
	"github.com/Amr-9/vanityhunt/pkg/generator/tron"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *generator.Registry
)

// Default returns the shared registry holding all built-in chains.
func Default() *generator.Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// New returns a fresh registry holding all built-in chains.
func New() *generator.Registry {
	return generator.NewRegistry(
		ethereum.Backend(),
		solana.Backend(),
		aptos.Backend(),
		sui.Backend(),
		bitcoin.Backend(),
		tron.Backend(),
	)
}

// ValidatePattern checks pattern against chain's default address format.
func ValidatePattern(pattern string, chain generator.Chain) error {
	return Default().ValidatePattern(pattern, chain)
}
