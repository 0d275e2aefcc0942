package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/five82/genreseek/internal/config"
	"github.com/five82/genreseek/internal/genres"
)

func TestNewSource(t *testing.T) {
	catalogPath := filepath.Join(t.TempDir(), "genres.txt")
	if err := os.WriteFile(catalogPath, []byte("6f1c1c1e-0c4a-4b8e-9a55-1a2b3c4d5e01\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		name    string
		cfg     config.Source
		wantLen int
		wantErr error
	}{
		{"stub", config.Source{Kind: config.SourceStub}, 0, genres.ErrNoValue},
		{"generated", config.Source{Kind: config.SourceGenerated, Count: 3}, 3, nil},
		{"catalog", config.Source{Kind: config.SourceCatalog, CatalogPath: catalogPath}, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := NewSource(tt.cfg)
			if err != nil {
				t.Fatalf("NewSource returned error: %v", err)
			}
			got, err := src.TopGenres(context.Background(), "")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("TopGenres error = %v, want %v", err, tt.wantErr)
			}
			if len(got) != tt.wantLen {
				t.Fatalf("TopGenres len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestNewSource_UnknownKind(t *testing.T) {
	if _, err := NewSource(config.Source{Kind: "http"}); !errors.Is(err, config.ErrUnknownSource) {
		t.Fatalf("NewSource error = %v, want ErrUnknownSource", err)
	}
}

func TestNewSource_FailOverridesKind(t *testing.T) {
	src, err := NewSource(config.Source{Kind: config.SourceGenerated, Count: 2, Fail: "offline"})
	if err != nil {
		t.Fatalf("NewSource returned error: %v", err)
	}
	_, err = src.TopGenres(context.Background(), "")
	if err == nil || err.Error() != "offline" {
		t.Fatalf("TopGenres error = %v, want offline", err)
	}
}

func TestNewSource_AppliesLatency(t *testing.T) {
	src, err := NewSource(config.Source{Kind: config.SourceGenerated, Count: 1, Latency: time.Hour})
	if err != nil {
		t.Fatalf("NewSource returned error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := src.TopGenres(ctx, ""); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("TopGenres error = %v, want deadline exceeded", err)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.Default()
	applyOverrides(&cfg, Options{})
	if cfg != config.Default() {
		t.Fatalf("empty overrides changed config: %+v", cfg)
	}

	applyOverrides(&cfg, Options{Source: " Generated ", LogLevel: "debug", MetricsListen: ":9464"})
	if cfg.Source.Kind != "generated" || cfg.Log.Level != "debug" || cfg.Metrics.Listen != ":9464" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestRun_InvalidOverrideFailsBeforeUI(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	err := Run(context.Background(), Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.toml"),
		Source:     "ftp",
	})
	if !errors.Is(err, config.ErrUnknownSource) {
		t.Fatalf("Run error = %v, want ErrUnknownSource", err)
	}
}

func TestRun_BadConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[source\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := Run(context.Background(), Options{ConfigPath: path}); err == nil {
		t.Fatal("Run returned nil error for malformed config")
	}
}

func TestLoadConfig_OverrideReplacesBadFileKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[source]\nkind = \"http\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := loadConfig(Options{ConfigPath: path}); !errors.Is(err, config.ErrUnknownSource) {
		t.Fatalf("loadConfig without override = %v, want ErrUnknownSource", err)
	}

	cfg, err := loadConfig(Options{ConfigPath: path, Source: "Generated"})
	if err != nil {
		t.Fatalf("loadConfig with override returned error: %v", err)
	}
	if cfg.Source.Kind != config.SourceGenerated {
		t.Fatalf("Source.Kind = %q, want %q", cfg.Source.Kind, config.SourceGenerated)
	}
}
