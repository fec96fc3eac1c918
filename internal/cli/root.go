// Package cli provides the command-line interface for pokedex.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/raphaelgruber/pokedex/internal/client"
	"github.com/raphaelgruber/pokedex/internal/config"
	"github.com/raphaelgruber/pokedex/internal/evolution"
	"github.com/raphaelgruber/pokedex/internal/metrics"
	"github.com/raphaelgruber/pokedex/internal/repository"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose    bool
	configPath string
	baseURL    string
	timeout    time.Duration

	// Wired in PersistentPreRunE
	cfg        config.Config
	logger     *slog.Logger
	logCleanup func() error
	collector  *metrics.Collector
	repo       *repository.Repository
	resolver   *evolution.Resolver
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pokedex",
	Short: "Browse Pokémon and their evolution lines from PokeAPI",
	Long: `Pokedex browses the PokeAPI catalog from the terminal.

List Pokémon by name or type, open a detail view, and resolve the full
evolution line of any Pokémon in chain order.

Configuration is read from POKEDEX_* environment variables, an optional
YAML file (--config), and flags, in increasing order of precedence.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = loadConfig(cmd)
		if err != nil {
			return err
		}

		logger, logCleanup = config.SetupLogger(cfg.LogFile, cfg.LogLevel)
		collector = metrics.NewCollector()

		api, err := client.New(cfg.BaseURL,
			client.WithTimeout(cfg.Timeout),
			client.WithLogger(logger),
			client.WithMetrics(collector),
		)
		if err != nil {
			return fmt.Errorf("create client: %w", err)
		}

		repo = repository.New(api, repository.WithWorkers(cfg.IOWorkers))
		resolver = evolution.NewResolver(repo,
			evolution.WithBaseURL(api.BaseURL()),
			evolution.WithConcurrency(cfg.Concurrency),
			evolution.WithLogger(logger),
		)

		logger.Debug("pokedex ready", "base_url", api.BaseURL(), "timeout", cfg.Timeout,
			"concurrency", cfg.Concurrency, "io_workers", cfg.IOWorkers)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if verbose && collector != nil {
			printStats(os.Stderr, collector.Snapshot())
		}
		if logCleanup != nil {
			if err := logCleanup(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
			}
		}
	},
}

// loadConfig layers the config file, the environment and the global flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	c := config.Load()
	if configPath != "" {
		var err error
		c, err = config.LoadFile(configPath)
		if err != nil {
			return config.Config{}, err
		}
	}

	if cmd.Flags().Changed("base-url") {
		c.BaseURL = baseURL
	}
	if cmd.Flags().Changed("timeout") {
		if timeout <= 0 {
			return config.Config{}, fmt.Errorf("--timeout must be positive, got %s", timeout)
		}
		c.Timeout = timeout
	}
	return c, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Ctrl+C cancels the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print request timing stats")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", config.DefaultBaseURL, "PokeAPI base URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", config.DefaultTimeout, "per-request timeout")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(evolutionCmd)
}
