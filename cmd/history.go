package cmd

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-advent/pkg/runner"
)

func NewHistoryCmd(r **runner.Runner) *cobra.Command {
	var (
		limit      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "history [day]",
		Short: "Show recorded results",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store := (*r).History()
			if store == nil {
				return fmt.Errorf("history is not available")
			}

			day := 0
			if len(args) == 1 {
				d, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid day %q", args[0])
				}
				day = d
			}

			results, err := store.List(ctx, day, limit)
			if err != nil {
				return err
			}

			if jsonOutput {
				return outputJSON(cmd.OutOrStdout(), results)
			}
			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No results recorded")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDAY\tPART ONE\tPART TWO\tTOOK\tSOLVED")
			for _, res := range results {
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n",
					res.ID, res.Day, res.PartOne, res.PartTwo,
					res.Duration.Round(time.Microsecond), res.SolvedAt.Local().Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of results (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
