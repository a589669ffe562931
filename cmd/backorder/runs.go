package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/qwicdev/backorder-analyzer/internal/cli"
)

func runsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect the analysis run history",
	}

	cmd.AddCommand(listRunsCmd())

	return cmd
}

func listRunsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent analysis runs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			history, err := openHistory()
			if err != nil {
				return err
			}
			defer history.Close()

			runs, err := history.ListRuns(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to list runs: %w", err)
			}
			if len(runs) == 0 {
				fmt.Println(cli.InfoStyle.Render("No runs recorded yet. Use 'backorder analyze' first."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("Gestart"),
				headerStyle.Render("Status"),
				headerStyle.Render("Orders"),
				headerStyle.Render("Verzendbaar"),
				headerStyle.Render("Backorder"),
				headerStyle.Render("Concepten"),
				headerStyle.Render("Input"))

			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
					r.StartedAt.Format("2006-01-02 15:04"),
					string(r.Status),
					r.Orders, r.ShippableLines, r.BackorderLines, r.Drafts,
					r.InputPath)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs to show")

	return cmd
}
