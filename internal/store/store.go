// Package store persists found addresses outside the search engine.
package store

import (
	"context"
	"errors"

	"github.com/Amr-9/vanityhunt/pkg/generator"
)

// Sink receives every result the CLI wants to keep.
type Sink interface {
	Save(ctx context.Context, result generator.SearchResult) error
	Close() error
	// Location describes where results end up, for display.
	Location() string
}

// MultiSink fans a result out to several sinks. Save tries every sink and
// joins their errors.
type MultiSink []Sink

func (m MultiSink) Save(ctx context.Context, result generator.SearchResult) error {
	var errs []error
	for _, s := range m {
		if err := s.Save(ctx, result); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m MultiSink) Close() error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Close())
	}
	return errors.Join(errs...)
}

func (m MultiSink) Location() string {
	if len(m) == 1 {
		return m[0].Location()
	}
	var loc string
	for i, s := range m {
		if i > 0 {
			loc += ", "
		}
		loc += s.Location()
	}
	return loc
}

// Locations lists the location of each sink.
func (m MultiSink) Locations() []string {
	locs := make([]string, 0, len(m))
	for _, s := range m {
		locs = append(locs, s.Location())
	}
	return locs
}
