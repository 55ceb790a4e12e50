package generator

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the search engine. Match them with errors.Is.
var (
	ErrValidation   = errors.New("invalid search configuration")
	ErrBusy         = errors.New("a search is already running")
	ErrGeneration   = errors.New("address generation failed")
	ErrWorkerSpawn  = errors.New("worker could not be started")
	ErrStopped      = errors.New("search stopped")
	ErrUnknownChain = errors.New("unknown chain")
)

// ValidationError reports a pattern that cannot be searched for.
type ValidationError struct {
	Chain   Chain
	Pattern string
	Invalid []rune // Characters outside the chain alphabet
	Reason  string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s pattern %q", ErrValidation, e.Chain, e.Pattern)
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if len(e.Invalid) > 0 {
		fmt.Fprintf(&b, " (invalid characters: %q)", string(e.Invalid))
	}
	return b.String()
}

// Unwrap lets errors.Is(err, ErrValidation) succeed.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// GenerationError wraps a failure of a chain's AddressGenerator.
type GenerationError struct {
	Chain  Chain
	Worker int
	Err    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: %s worker %d: %v", ErrGeneration, e.Chain, e.Worker, e.Err)
}

// Unwrap exposes both ErrGeneration and the underlying cause.
func (e *GenerationError) Unwrap() []error { return []error{ErrGeneration, e.Err} }
