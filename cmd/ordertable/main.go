package main

import (
	"fmt"
	"os"

	"ordertable/internal/config"
	"ordertable/internal/logging"
	"ordertable/internal/orders"
	"ordertable/internal/seed"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string
	seedPath   string

	// Logger for the non-interactive commands
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ordertable",
	Short: "ordertable - sortable, filterable order list",
	Long: `ordertable shows shipping orders in a paginated terminal table.

Sort by any column, filter by source, destination or delivery status,
and edit a record in place.

Run without arguments to start the interactive table.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive table owns the terminal; it logs to files instead.
		if cmd == cmd.Root() {
			logger = zap.NewNop()
			return nil
		}

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file")
	rootCmd.PersistentFlags().StringVar(&seedPath, "seed", "", "YAML file of orders (default: config seed_file, else built-in)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies the --seed flag.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if seedPath != "" {
		cfg.SeedFile = seedPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return cfg, nil
}

// loadSeed returns the orders named by the config, or the built-in list.
func loadSeed(cfg *config.Config) ([]orders.Order, error) {
	if cfg.SeedFile == "" {
		return orders.Default(), nil
	}
	list, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return nil, err
	}
	return list, nil
}

// logConfig records the effective configuration. It runs after
// logging.Initialize, so it is a no-op unless debug mode is on.
func logConfig(cfg *config.Config) {
	logging.Config("config %s: theme=%s page_size=%d sort=%s %s validation=%s",
		configPath, cfg.Theme, cfg.Table.PageSize, cfg.Table.SortColumn, cfg.Table.SortDirection, cfg.Validation)
	logging.ConfigDebug("seed_file=%q watch_seed=%v log_format=%s", cfg.SeedFile, cfg.WatchSeed, cfg.Logging.Format)
}
