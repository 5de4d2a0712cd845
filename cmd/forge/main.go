// Command forge generates reproducible characters from a seed.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/chromox/forge/internal/config"
	"github.com/chromox/forge/internal/logger"
	"github.com/chromox/forge/internal/lore"
	"github.com/chromox/forge/internal/namefilter"
)

// app holds state shared by all subcommands once the config is loaded.
type app struct {
	configPath string
	format     string

	cfg    *config.Config
	tables *lore.Tables
	filter *namefilter.NameFilter
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "forge",
		Short:         "forge - seeded character and relic generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "forge.yaml", "Path to config YAML file")
	root.PersistentFlags().StringVarP(&a.format, "format", "o", "", "Output format: text, json or yaml (default from config)")

	root.AddCommand(
		newGenerateCmd(a),
		newVaryCmd(a),
		newBatchCmd(a),
		newTablesCmd(a),
	)
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = a.format
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	if err := logger.Initialize(cfg.Logging, cmd.ErrOrStderr()); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	tables, err := cfg.Tables.Load()
	if err != nil {
		return err
	}
	if cfg.Tables.Dir != "" {
		logger.Info("Loaded table override", "dir", cfg.Tables.Dir, "digest", tables.Digest())
	}

	defaults, err := cfg.Generation.Params()
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalid, err)
	}
	if err := defaults.Check(tables); err != nil {
		return fmt.Errorf("%w: generation: %w", config.ErrInvalid, err)
	}

	a.cfg = cfg
	a.tables = tables
	a.filter = namefilter.New(&cfg.NameFilter)
	return nil
}

// randomSeed picks a seed in the 31-bit range the stream uses.
func randomSeed() int64 {
	return time.Now().UnixNano() & (1<<31 - 1)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "forge:", err)
		os.Exit(1)
	}
}
