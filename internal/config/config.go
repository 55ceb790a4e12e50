// Package config loads the vanityhunt settings. Sources are applied in
// order: defaults, an optional YAML file, VANITYHUNT_* environment
// variables, then command-line flags the user actually set.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/Amr-9/vanityhunt/internal/logx"
	"github.com/Amr-9/vanityhunt/pkg/generator"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "VANITYHUNT_"

// Errors
var (
	ErrNoPattern        = errors.New("must specify a pattern (--pattern)")
	ErrInvalidChain     = errors.New("invalid chain")
	ErrInvalidPosition  = errors.New("invalid position")
	ErrInvalidAddrType  = errors.New("invalid address type")
	ErrInvalidWorkers   = errors.New("workers must be zero (all CPUs) or positive")
	ErrInvalidBatchSize = errors.New("batch size must be at least 1")
	ErrInvalidInterval  = errors.New("progress interval must be positive")
	ErrInvalidTimeout   = errors.New("timeout must not be negative")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("log format must be text or json")
)

// Config holds the application configuration.
type Config struct {
	// Search
	Chain         string `yaml:"chain"`
	Pattern       string `yaml:"pattern"`
	Position      string `yaml:"position"`
	CaseSensitive bool   `yaml:"case_sensitive"`
	AddressType   string `yaml:"address_type"`
	Mnemonic      bool   `yaml:"mnemonic"`

	// Engine
	Workers          int           `yaml:"workers"`
	BatchSize        int           `yaml:"batch_size"`
	ProgressInterval time.Duration `yaml:"progress_interval"`
	Timeout          time.Duration `yaml:"timeout"` // 0 = no timeout

	// Output
	Output      string `yaml:"output"`       // result file, empty disables it
	PostgresDSN string `yaml:"postgres_dsn"` // optional result table

	// Logging
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Chain:            "ethereum",
		Position:         "prefix",
		AddressType:      "default",
		Mnemonic:         true,
		BatchSize:        100,
		ProgressInterval: 100 * time.Millisecond,
		Output:           "wallet.txt",
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

// Load builds the configuration for a command whose flags were registered
// with RegisterFlags and already parsed.
func Load(fs *pflag.FlagSet) (Config, error) {
	cfg := Default()

	path := getenv(EnvPrefix+"CONFIG", "")
	if fs != nil && fs.Changed("config") {
		path, _ = fs.GetString("config")
	}
	if path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	ApplyEnv(&cfg)

	if fs != nil {
		if err := ApplyFlags(fs, &cfg); err != nil {
			return cfg, err
		}
	}

	normalize(&cfg)
	return cfg, nil
}

// LoadFile overlays the YAML document at path onto cfg. Unknown keys are
// rejected so typos do not go unnoticed.
func LoadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays VANITYHUNT_* environment variables onto cfg.
func ApplyEnv(cfg *Config) {
	if v := getenv(EnvPrefix+"CHAIN", ""); v != "" {
		cfg.Chain = v
	}
	if v := getenv(EnvPrefix+"PATTERN", ""); v != "" {
		cfg.Pattern = v
	}
	if v := getenv(EnvPrefix+"POSITION", ""); v != "" {
		cfg.Position = v
	}
	if v := getenv(EnvPrefix+"CASE_SENSITIVE", ""); v != "" {
		cfg.CaseSensitive = parseBool(v)
	}
	if v := getenv(EnvPrefix+"ADDRESS_TYPE", ""); v != "" {
		cfg.AddressType = v
	}
	if v := getenv(EnvPrefix+"MNEMONIC", ""); v != "" {
		cfg.Mnemonic = parseBool(v)
	}
	if v := getenv(EnvPrefix+"WORKERS", ""); v != "" {
		cfg.Workers = parseInt(v, cfg.Workers)
	}
	if v := getenv(EnvPrefix+"BATCH_SIZE", ""); v != "" {
		cfg.BatchSize = parseInt(v, cfg.BatchSize)
	}
	if v := getenv(EnvPrefix+"PROGRESS_INTERVAL", ""); v != "" {
		cfg.ProgressInterval = parseDuration(v, cfg.ProgressInterval)
	}
	if v := getenv(EnvPrefix+"TIMEOUT", ""); v != "" {
		cfg.Timeout = parseDuration(v, cfg.Timeout)
	}
	if v, ok := os.LookupEnv(EnvPrefix + "OUTPUT"); ok {
		cfg.Output = v // empty disables the file
	}
	if v := getenv(EnvPrefix+"POSTGRES_DSN", ""); v != "" {
		cfg.PostgresDSN = v
	}
	if v := getenv(logx.EnvLevel, ""); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(EnvPrefix+"LOG_FORMAT", ""); v != "" {
		cfg.LogFormat = v
	}
}

// RegisterFlags defines the configuration flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("config", "", "YAML config file (env "+EnvPrefix+"CONFIG)")
	fs.StringP("chain", "c", d.Chain, "Chain: ethereum, solana, bitcoin, tron, aptos, sui")
	fs.StringP("pattern", "p", "", "Address pattern to search for")
	fs.StringP("position", "P", d.Position, "Where the pattern must appear: prefix or suffix")
	fs.BoolP("case-sensitive", "C", d.CaseSensitive, "Match case exactly (mixed-case alphabets only)")
	fs.StringP("address-type", "t", d.AddressType, "Bitcoin address type: taproot, legacy, nested, segwit")
	fs.Bool("mnemonic", d.Mnemonic, "Derive Ethereum keys from a fresh BIP-39 mnemonic")
	fs.IntP("workers", "w", d.Workers, "Number of worker goroutines (0 = all CPUs)")
	fs.Int("batch-size", d.BatchSize, "Attempts per worker batch")
	fs.Duration("progress-interval", d.ProgressInterval, "How often progress is refreshed")
	fs.Duration("timeout", d.Timeout, "Give up after this long (0 = never)")
	fs.StringP("output", "o", d.Output, "File the result is appended to (empty to disable)")
	fs.String("postgres-dsn", d.PostgresDSN, "Also store results in PostgreSQL")
	fs.String("log-level", d.LogLevel, "Log level: debug, info, warn, error, silent")
	fs.String("log-format", d.LogFormat, "Log format: text or json")
}

// ApplyFlags copies every flag the user set on fs into cfg.
func ApplyFlags(fs *pflag.FlagSet, cfg *Config) error {
	var err error
	set := func(name string, apply func() error) {
		if err == nil && fs.Lookup(name) != nil && fs.Changed(name) {
			err = apply()
		}
	}

	set("chain", func() (e error) { cfg.Chain, e = fs.GetString("chain"); return })
	set("pattern", func() (e error) { cfg.Pattern, e = fs.GetString("pattern"); return })
	set("position", func() (e error) { cfg.Position, e = fs.GetString("position"); return })
	set("case-sensitive", func() (e error) { cfg.CaseSensitive, e = fs.GetBool("case-sensitive"); return })
	set("address-type", func() (e error) { cfg.AddressType, e = fs.GetString("address-type"); return })
	set("mnemonic", func() (e error) { cfg.Mnemonic, e = fs.GetBool("mnemonic"); return })
	set("workers", func() (e error) { cfg.Workers, e = fs.GetInt("workers"); return })
	set("batch-size", func() (e error) { cfg.BatchSize, e = fs.GetInt("batch-size"); return })
	set("progress-interval", func() (e error) { cfg.ProgressInterval, e = fs.GetDuration("progress-interval"); return })
	set("timeout", func() (e error) { cfg.Timeout, e = fs.GetDuration("timeout"); return })
	set("output", func() (e error) { cfg.Output, e = fs.GetString("output"); return })
	set("postgres-dsn", func() (e error) { cfg.PostgresDSN, e = fs.GetString("postgres-dsn"); return })
	set("log-level", func() (e error) { cfg.LogLevel, e = fs.GetString("log-level"); return })
	set("log-format", func() (e error) { cfg.LogFormat, e = fs.GetString("log-format"); return })

	return err
}

func normalize(c *Config) {
	c.Chain = strings.ToLower(strings.TrimSpace(c.Chain))
	c.Position = strings.ToLower(strings.TrimSpace(c.Position))
	c.AddressType = strings.ToLower(strings.TrimSpace(c.AddressType))
	c.Pattern = strings.TrimSpace(c.Pattern)
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
}

// Validate validates the configuration. A missing pattern is reported last
// so callers that prompt for it can tell it apart from other mistakes.
// Pattern alphabet checks belong to the chain registry.
func (c *Config) Validate() error {
	if _, err := generator.ParseChain(c.Chain); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidChain, c.Chain)
	}
	if _, err := generator.ParsePosition(c.Position); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidPosition, c.Position)
	}
	if _, err := generator.ParseAddressType(c.AddressType); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAddrType, c.AddressType)
	}
	if c.Workers < 0 {
		return ErrInvalidWorkers
	}
	if c.BatchSize < 1 {
		return ErrInvalidBatchSize
	}
	if c.ProgressInterval <= 0 {
		return ErrInvalidInterval
	}
	if c.Timeout < 0 {
		return ErrInvalidTimeout
	}
	if !logx.ValidLevel(c.LogLevel) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
	if c.Pattern == "" {
		return ErrNoPattern
	}
	return nil
}

// SearchConfig converts the settings into an engine search configuration.
func (c *Config) SearchConfig() (generator.SearchConfig, error) {
	chain, err := generator.ParseChain(c.Chain)
	if err != nil {
		return generator.SearchConfig{}, err
	}
	pos, err := generator.ParsePosition(c.Position)
	if err != nil {
		return generator.SearchConfig{}, err
	}
	addrType, err := generator.ParseAddressType(c.AddressType)
	if err != nil {
		return generator.SearchConfig{}, err
	}
	return generator.SearchConfig{
		Chain:         chain,
		AddressType:   addrType,
		Position:      pos,
		Pattern:       c.Pattern,
		CaseSensitive: c.CaseSensitive,
		Mnemonic:      c.Mnemonic,
	}, nil
}

// Logger builds the logger described by the log settings.
func (c *Config) Logger() logx.Logger {
	return logx.New(logx.WithLevel(logx.ParseLevel(c.LogLevel)), logx.WithJSON(c.LogFormat == "json"))
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(v string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}

// parseDuration accepts Go durations ("250ms") or plain seconds ("30").
func parseDuration(v string, def time.Duration) time.Duration {
	v = strings.TrimSpace(v)
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if s, err := strconv.Atoi(v); err == nil {
		return time.Duration(s) * time.Second
	}
	return def
}
