package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/genreseek/internal/config"
	"github.com/five82/genreseek/internal/logging"
	"github.com/five82/genreseek/internal/metrics"
	"github.com/five82/genreseek/internal/prefs"
	"github.com/five82/genreseek/internal/search"
	"github.com/five82/genreseek/internal/state"
	"github.com/five82/genreseek/internal/ui"
)

// Options configure the genreseek application. Non-empty override fields
// take precedence over the config file.
type Options struct {
	ConfigPath    string
	PrefsPath     string // empty uses default ~/.config/genreseek/prefs.toml
	Source        string
	LogLevel      string
	MetricsListen string
}

// Run boots the search screen until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closeLog() }()

	src, err := NewSource(cfg.Source)
	if err != nil {
		return fmt.Errorf("init genre source: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	store := search.New(src).NewStore(
		state.WithLogger[search.State, search.Action](logger.Named("store")),
		state.WithMetrics[search.State, search.Action](metrics.NewStore(reg)),
	)

	userPrefs := prefs.Load(opts.PrefsPath)

	logger.Info("starting",
		zap.String("source", cfg.Source.Kind),
		zap.String("theme", userPrefs.Theme),
		zap.String("metrics", cfg.Metrics.Listen))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return store.Run(gctx)
	})

	if cfg.Metrics.Listen != "" {
		g.Go(func() error {
			err := metrics.Serve(gctx, cfg.Metrics.Listen, reg, logger.Named("metrics"))
			if err != nil {
				logger.Error("metrics server stopped", zap.Error(err))
			}
			return err
		})
	}

	g.Go(func() error {
		// Leaving the UI stops everything else.
		defer cancel()
		return ui.Run(ui.Options{
			Context:   gctx,
			Store:     store,
			ThemeName: userPrefs.Theme,
			PrefsPath: opts.PrefsPath,
			Logger:    logger.Named("ui"),
		})
	})

	err = g.Wait()
	logger.Info("stopped", zap.Error(err))
	return err
}

// loadConfig reads the config file and validates it once the command-line
// overrides are in place.
func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	applyOverrides(&cfg, opts)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

func applyOverrides(cfg *config.Config, opts Options) {
	if kind := config.NormalizeKind(opts.Source); kind != "" {
		cfg.Source.Kind = kind
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.MetricsListen != "" {
		cfg.Metrics.Listen = opts.MetricsListen
	}
}
