package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/genreseek/internal/app"
	"github.com/five82/genreseek/internal/config"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "genreseek: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	rootCmd := &cobra.Command{
		Use:           "genreseek",
		Short:         "Search music genres from the terminal",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return app.Run(ctx, opts)
		},
	}
	rootCmd.SetContext(context.Background())

	flags := rootCmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "override config path (optional)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "override prefs path (optional)")
	flags.StringVar(&opts.Source, "source", "",
		fmt.Sprintf("genre source: %s, %s or %s", config.SourceStub, config.SourceGenerated, config.SourceCatalog))
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&opts.MetricsListen, "metrics-listen", "", "serve Prometheus metrics on this address (e.g. localhost:9464)")

	return rootCmd
}
