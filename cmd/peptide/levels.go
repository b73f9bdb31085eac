package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) levelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels [levels.yaml]",
		Short: "List levels with their sizes and ranges",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadLevels(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, t := range set.All() {
				rng := "unsolved"
				if t.Range.Valid() {
					rng = fmt.Sprintf("[%.3f, %.3f]", t.Range.Min, t.Range.Max)
				}
				fmt.Fprintf(out, "%2d  %-24s %3d  %s\n", i, t.Title, t.Size(), rng)
			}
			return nil
		},
	}
}
