// Package logx is the leveled key/value logger used across vanityhunt.
// Output is rendered by pterm's structured logger, either colourful for
// terminals or as one JSON object per line.
package logx

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/pterm/pterm"
)

// EnvLevel is read by New for the default level.
const EnvLevel = "VANITYHUNT_LOG_LEVEL"

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelSilent
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "silent"
	}
}

type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Err(err error, kv ...any)
	With(kv ...any) Logger
	SetLevel(lvl Level)
}

// Option configures New.
type Option func(*options)

type options struct {
	w     io.Writer
	json  bool
	level Level
}

// WithWriter sends output to w instead of stderr.
func WithWriter(w io.Writer) Option { return func(o *options) { o.w = w } }

// WithJSON switches to the JSON formatter.
func WithJSON(json bool) Option { return func(o *options) { o.json = json } }

// WithLevel overrides the level taken from the environment.
func WithLevel(lvl Level) Option { return func(o *options) { o.level = lvl } }

type ptermLogger struct {
	pl    *pterm.Logger
	lvl   *atomic.Int32 // shared with every With() child
	scope []any
}

func New(opts ...Option) Logger {
	o := options{w: os.Stderr, level: ParseLevel(os.Getenv(EnvLevel))}
	for _, opt := range opts {
		opt(&o)
	}

	pl := pterm.DefaultLogger.
		WithWriter(o.w).
		WithLevel(pterm.LogLevelTrace).
		WithTime(true)
	if o.json {
		pl = pl.WithFormatter(pterm.LogFormatterJSON)
	}

	lvl := new(atomic.Int32)
	lvl.Store(int32(o.level))
	return &ptermLogger{pl: pl, lvl: lvl}
}

// NewNop returns a logger that discards everything.
func NewNop() Logger {
	return New(WithWriter(io.Discard), WithLevel(LevelSilent))
}

func (s *ptermLogger) With(kv ...any) Logger {
	clone := *s
	clone.scope = append(append([]any{}, s.scope...), kv...)
	return &clone
}

func (s *ptermLogger) SetLevel(lvl Level) { s.lvl.Store(int32(lvl)) }

func (s *ptermLogger) Debug(msg string, kv ...any) {
	if s.enabled(LevelDebug) {
		s.pl.Debug(msg, s.args(kv))
	}
}

func (s *ptermLogger) Info(msg string, kv ...any) {
	if s.enabled(LevelInfo) {
		s.pl.Info(msg, s.args(kv))
	}
}

func (s *ptermLogger) Warn(msg string, kv ...any) {
	if s.enabled(LevelWarn) {
		s.pl.Warn(msg, s.args(kv))
	}
}

func (s *ptermLogger) Err(err error, kv ...any) {
	if err == nil || !s.enabled(LevelError) {
		return
	}
	s.pl.Error(err.Error(), s.args(kv))
}

func (s *ptermLogger) enabled(l Level) bool {
	return l >= Level(s.lvl.Load())
}

func (s *ptermLogger) args(kv []any) []pterm.LoggerArgument {
	return s.pl.Args(kvPairs(append(append([]any{}, s.scope...), kv...))...)
}

// kvPairs pads an odd trailing key and stringifies keys.
func kvPairs(kv []any) []any {
	out := make([]any, 0, len(kv)+1)
	for i := 0; i < len(kv); i += 2 {
		out = append(out, fmt.Sprint(kv[i]))
		if i+1 < len(kv) {
			out = append(out, kv[i+1])
		} else {
			out = append(out, "(missing)")
		}
	}
	return out
}

// ParseLevel maps a level name to a Level. Unknown names mean info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "dbg", "trace":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "err", "error":
		return LevelError
	case "silent", "off", "none", "quiet":
		return LevelSilent
	default:
		return LevelInfo
	}
}

// ValidLevel reports whether s names a level ParseLevel knows.
func ValidLevel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info", "inf", "debug", "dbg", "trace", "warn", "warning", "err", "error", "silent", "off", "none", "quiet":
		return true
	}
	return false
}
