package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/peptide/energy"
	"github.com/katalvlaran/peptide/level"
	"github.com/katalvlaran/peptide/notation"
	"github.com/katalvlaran/peptide/template"
)

func (a *app) showCmd() *cobra.Command {
	var (
		index int
		shape string
	)
	cmd := &cobra.Command{
		Use:   "show [levels.yaml]",
		Short: "Render a level and break down its energy",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var t template.Template
			if shape != "" {
				p, err := notation.Parse(shape)
				if err != nil {
					return err
				}
				if t, err = template.New("notation", "", p); err != nil {
					return err
				}
			} else {
				set, err := loadLevels(args)
				if err != nil {
					return err
				}
				if t, err = set.Get(index); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			r := lipgloss.NewRenderer(out)
			title := r.NewStyle().Bold(true)

			fmt.Fprintln(out, title.Render(t.Title))
			if t.Description != "" {
				fmt.Fprintln(out, t.Description)
			}
			fmt.Fprintln(out)
			fmt.Fprint(out, render(t.Shape, r))
			fmt.Fprintln(out)
			fmt.Fprintln(out, notation.Format(t.Shape))
			fmt.Fprintln(out)

			terms := energy.Breakdown(t.Shape)
			fmt.Fprintf(out, "cost           %8.3f\n", terms.Cost)
			fmt.Fprintf(out, "hydrophobic    %8.3f\n", terms.Hydrophobic)
			fmt.Fprintf(out, "adjacency      %8.3f\n", terms.Adjacency)
			fmt.Fprintf(out, "electrostatic  %8.3f\n", terms.Electrostatic)
			fmt.Fprintf(out, "total          %8.3f\n", terms.Total())
			for _, c := range energy.Interactions(t.Shape) {
				fmt.Fprintf(out, "  contact %v ~ %v  %d\n", c.A, c.B, c.Bonus)
			}

			if p, err := level.Progress(terms.Total(), t.Range); err == nil {
				fmt.Fprintf(out, "range [%.3f, %.3f], progress %.1f%%\n", t.Range.Min, t.Range.Max, 100*p)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&index, "level", "l", 0, "level index")
	cmd.Flags().StringVar(&shape, "notation", "", "show this shape instead of a level, e.g. \"Arg at (0, 0) -> (Right), Asp at (1, 0)\"")
	return cmd
}
