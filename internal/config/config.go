package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Source kinds.
const (
	SourceStub      = "stub"
	SourceGenerated = "generated"
	SourceCatalog   = "catalog"
)

// ErrUnknownSource is returned for a source kind genreseek does not know.
var ErrUnknownSource = errors.New("unknown source kind")

// Config captures genreseek's settings.
type Config struct {
	Source  Source
	Log     Log
	Metrics Metrics
}

// Source selects and tunes the genre source.
type Source struct {
	Kind        string
	CatalogPath string
	Count       int
	Limit       int
	Latency     time.Duration
	Fail        string
}

// Log configures the file logger. An empty File disables logging.
type Log struct {
	Level  string
	Format string
	File   string
}

// Metrics configures the Prometheus endpoint. An empty Listen disables it.
type Metrics struct {
	Listen string
}

const (
	defaultConfigPath  = "~/.config/genreseek/config.toml"
	defaultCatalogPath = "~/.config/genreseek/genres.txt"
	defaultCount       = 8
	defaultLimit       = 50
	defaultLogLevel    = "info"
	defaultLogFormat   = "console"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Source: Source{
			Kind:        SourceStub,
			CatalogPath: mustExpand(defaultCatalogPath),
			Count:       defaultCount,
			Limit:       defaultLimit,
		},
		Log: Log{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// Load locates and parses the config, falling back to defaults when missing.
// The result is not validated; call Validate once overrides are applied.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Source struct {
			Kind        string `toml:"kind"`
			CatalogPath string `toml:"catalog_path"`
			Count       *int   `toml:"count"`
			Limit       *int   `toml:"limit"`
			Latency     string `toml:"latency"`
			Fail        string `toml:"fail"`
		} `toml:"source"`
		Log struct {
			Level  string `toml:"level"`
			Format string `toml:"format"`
			File   string `toml:"file"`
		} `toml:"log"`
		Metrics struct {
			Listen string `toml:"listen"`
		} `toml:"metrics"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if kind := NormalizeKind(raw.Source.Kind); kind != "" {
		cfg.Source.Kind = kind
	}
	if p := strings.TrimSpace(raw.Source.CatalogPath); p != "" {
		cfg.Source.CatalogPath = mustExpand(p)
	}
	if raw.Source.Count != nil {
		cfg.Source.Count = *raw.Source.Count
	}
	if raw.Source.Limit != nil {
		cfg.Source.Limit = *raw.Source.Limit
	}
	if latency := strings.TrimSpace(raw.Source.Latency); latency != "" {
		d, err := time.ParseDuration(latency)
		if err != nil {
			return Config{}, fmt.Errorf("parse source.latency: %w", err)
		}
		cfg.Source.Latency = d
	}
	cfg.Source.Fail = strings.TrimSpace(raw.Source.Fail)

	if level := strings.TrimSpace(raw.Log.Level); level != "" {
		cfg.Log.Level = level
	}
	if format := strings.TrimSpace(raw.Log.Format); format != "" {
		cfg.Log.Format = format
	}
	if file := strings.TrimSpace(raw.Log.File); file != "" {
		cfg.Log.File = mustExpand(file)
	}

	cfg.Metrics.Listen = strings.TrimSpace(raw.Metrics.Listen)

	return cfg, nil
}

// NormalizeKind trims and lowercases a source kind.
func NormalizeKind(kind string) string {
	return strings.ToLower(strings.TrimSpace(kind))
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	switch c.Source.Kind {
	case SourceStub, SourceGenerated, SourceCatalog:
	default:
		return fmt.Errorf("%w %q (want %s, %s or %s)", ErrUnknownSource, c.Source.Kind,
			SourceStub, SourceGenerated, SourceCatalog)
	}
	if c.Source.Count < 0 {
		return fmt.Errorf("source.count must not be negative, got %d", c.Source.Count)
	}
	if c.Source.Limit < 0 {
		return fmt.Errorf("source.limit must not be negative, got %d", c.Source.Limit)
	}
	if c.Source.Latency < 0 {
		return fmt.Errorf("source.latency must not be negative, got %s", c.Source.Latency)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
