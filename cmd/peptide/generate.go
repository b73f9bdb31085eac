package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/peptide/generator"
	"github.com/katalvlaran/peptide/search"
)

func (a *app) generateCmd() *cobra.Command {
	var (
		seed    int64
		count   int
		workers int
		output  string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Grow random levels and compute their ranges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Generate.Workers
			}
			if workers < 1 {
				return fmt.Errorf("--workers must be at least 1, got %d", workers)
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			a.logger.Info("generating", zap.Int64("seed", seed), zap.Int("count", count))

			start := time.Now()
			ts, err := generator.Batch(cmd.Context(), count,
				generator.WithSeed(seed),
				generator.WithGrowth(a.cfg.Generate.MinGrowth, a.cfg.Generate.MaxGrowth),
				generator.WithWorkers(workers),
				generator.WithRetries(a.cfg.Generate.Retries),
				generator.WithLogger(a.logger),
				generator.WithSearch(
					search.WithMaxNodes(a.cfg.Search.MaxNodes),
					search.WithTimeLimit(a.cfg.SearchTimeout()),
				),
			)
			if err != nil {
				return err
			}
			cells := 0
			for _, t := range ts {
				cells += t.Size()
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "generated %s levels (%s cells) in %s, seed %d\n",
				humanize.Comma(int64(len(ts))), humanize.Comma(int64(cells)),
				time.Since(start).Round(time.Millisecond), seed)
			return writeLevels(cmd.OutOrStdout(), output, ts)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: clock)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of levels")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent generations (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file (- for stdout)")
	return cmd
}
