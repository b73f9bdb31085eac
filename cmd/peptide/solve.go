package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/peptide/level"
	"github.com/katalvlaran/peptide/search"
	"github.com/katalvlaran/peptide/template"
)

func (a *app) solveCmd() *cobra.Command {
	var (
		index    int
		maxNodes int
		timeout  time.Duration
		output   string
	)
	cmd := &cobra.Command{
		Use:   "solve [levels.yaml]",
		Short: "Compute the energy range of levels by exhaustive search",
		Long: `Enumerates every assembly a level allows and reports the lowest and
highest energy of the complete ones. The search is exponential in the size
of the level; --max-nodes and --timeout bound it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadLevels(args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("max-nodes") {
				maxNodes = a.cfg.Search.MaxNodes
			}
			if !cmd.Flags().Changed("timeout") {
				timeout = a.cfg.SearchTimeout()
			}

			first, last := 0, set.Len()-1
			if index >= 0 {
				if _, err := set.Get(index); err != nil {
					return err
				}
				first, last = index, index
			}

			out := cmd.OutOrStdout()
			all := set.All()
			for i := first; i <= last; i++ {
				t := all[i]
				res, err := search.Solve(t,
					search.WithContext(cmd.Context()),
					search.WithMaxNodes(maxNodes),
					search.WithTimeLimit(timeout),
					search.WithLogger(a.logger),
				)
				fmt.Fprintf(out, "%2d  %-24s %-10s explored %s, complete %s in %s\n",
					i, t.Title, res.Status,
					humanize.Comma(int64(res.Explored)),
					humanize.Comma(int64(res.Completed)),
					res.Elapsed.Round(time.Millisecond))
				if res.Completed > 0 {
					fmt.Fprintf(out, "    range [%.3f, %.3f]\n", res.Range.Min, res.Range.Max)
				}
				if err != nil {
					return fmt.Errorf("level %d %q: %w", i, t.Title, err)
				}
				if t.Range.Valid() && t.Range != res.Range {
					fmt.Fprintf(out, "    stored range [%.3f, %.3f] replaced\n", t.Range.Min, t.Range.Max)
				}
				all[i].Range = res.Range
			}

			if output == "" {
				return nil
			}
			return writeLevels(out, output, all)
		},
	}
	cmd.Flags().IntVarP(&index, "level", "l", -1, "level index (-1 = all)")
	cmd.Flags().IntVar(&maxNodes, "max-nodes", 0, "stop after expanding this many assemblies (0 = unbounded)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "stop after this long (0 = unbounded)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the levels with computed ranges to this file")
	return cmd
}

// writeLevels writes templates to path, or to stdout for "-".
func writeLevels(stdout io.Writer, path string, ts []template.Template) error {
	if path == "-" {
		return level.Write(stdout, ts)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := level.Write(f, ts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
