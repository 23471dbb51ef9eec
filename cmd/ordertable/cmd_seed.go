package main

import (
	"fmt"

	"ordertable/internal/seed"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedCmd groups seed file commands
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed data commands",
}

var seedDumpCmd = &cobra.Command{
	Use:   "dump [path]",
	Short: "Write the effective seed orders to a YAML file",
	Long: `Writes the orders the table would start with (the --seed file, the
config seed_file, or the built-in list) to path. The result can be edited
and passed back with --seed.`,
	Args: cobra.ExactArgs(1),
	RunE: runSeedDump,
}

func init() {
	seedCmd.AddCommand(seedDumpCmd)
}

func runSeedDump(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	list, err := loadSeed(cfg)
	if err != nil {
		return err
	}
	if err := seed.Save(args[0], list); err != nil {
		return err
	}
	logger.Info("seed written", zap.String("path", args[0]), zap.Int("orders", len(list)))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d orders to %s\n", len(list), args[0])
	return nil
}
