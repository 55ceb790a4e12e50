package store

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/Amr-9/vanityhunt/internal/ui"
	"github.com/Amr-9/vanityhunt/pkg/generator"
	"github.com/Amr-9/vanityhunt/pkg/generator/solana"
)

// FileSink appends a plain-text report per result. The file is created
// with mode 0600 since it holds private keys.
type FileSink struct {
	path string
	now  func() time.Time

	mu sync.Mutex
}

// NewFileSink writes reports to path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path, now: time.Now}
}

func (f *FileSink) Location() string { return f.path }

// Save appends the report for result.
func (f *FileSink) Save(_ context.Context, result generator.SearchResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, statErr := os.Stat(f.path)
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open %s: %w", f.path, err)
	}
	if os.IsNotExist(statErr) {
		hideFile(f.path)
	}

	if _, err := file.WriteString(Report(result, f.now())); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return file.Close()
}

func (f *FileSink) Close() error { return nil }

// Report renders result the way it is written to disk.
func Report(result generator.SearchResult, at time.Time) string {
	c := result.Candidate
	title := result.Chain.String() + " Vanity Address"

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", title, strings.Repeat("=", len(title)))
	fmt.Fprintf(&b, "Address:         %s\n", c.Address)
	fmt.Fprintf(&b, "Private Key:     %s\n", c.SecretMaterial)
	if result.Chain == generator.Solana {
		if kp, err := solana.KeypairBase58(c.SecretMaterial); err == nil {
			fmt.Fprintf(&b, "Keypair:         %s\n", kp)
		}
	}
	if c.RecoveryPhrase != "" {
		fmt.Fprintf(&b, "Recovery Phrase: %s\n", c.RecoveryPhrase)
	}
	fmt.Fprintf(&b, "\nStatistics:\n  Time:     %s\n  Attempts: %s\n  Search:   %s\n\n",
		ui.FormatDuration(result.Elapsed), ui.FormatNumber(result.TotalAttempts), result.SearchID)
	fmt.Fprintf(&b, "Generated: %s\n\n", at.Format("2006-01-02 15:04:05"))
	b.WriteString("⚠️ WARNING: Keep this private key secret and secure!\n\n")
	return b.String()
}
