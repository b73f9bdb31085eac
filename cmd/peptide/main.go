// Command peptide solves, generates and renders peptide folding levels.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/peptide/internal/config"
	"github.com/katalvlaran/peptide/level"
)

// app carries the state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "peptide",
		Short: "Peptide folding puzzle toolkit",
		Long: `peptide works with lattice peptide folding levels.

Levels are YAML files holding a list of templates. Without a file argument
the built-in campaign is used.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("config %s: %w", a.configPath, err)
			}
			a.cfg = cfg
			logger, err := cfg.Logging.Build(a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "peptide.yaml", "configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		a.solveCmd(),
		a.generateCmd(),
		a.showCmd(),
		a.levelsCmd(),
	)
	return root
}

// loadLevels reads the file named by args, or the built-in campaign.
func loadLevels(args []string) (*level.Set, error) {
	if len(args) == 0 {
		return level.Campaign()
	}
	return level.LoadFile(args[0])
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
