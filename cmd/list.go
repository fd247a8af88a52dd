package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-advent/pkg/puzzle"
	"github.com/mattsolo1/grove-advent/pkg/runner"
)

type dayInfo struct {
	Day    int    `json:"day"`
	Title  string `json:"title"`
	Input  string `json:"input"`
	Pinned bool   `json:"pinned"`
}

func NewListCmd(r **runner.Runner) *cobra.Command {
	var listJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List available days",
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			run := *r

			var days []dayInfo
			for _, s := range run.Registry.All() {
				info := dayInfo{Day: s.Day(), Title: puzzle.Title(s.Slug()), Input: "-"}
				if in, err := run.Loader.Load(s.Day()); err == nil {
					info.Input = in.Name
					info.Pinned = in.Header.HasExpectations()
				}
				days = append(days, info)
			}

			if listJSON {
				return outputJSON(cmd.OutOrStdout(), days)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DAY\tTITLE\tINPUT\tPINNED")
			fmt.Fprintln(w, "---\t-----------------------------\t-----------------\t------")
			for _, d := range days {
				pinned := "no"
				if d.Pinned {
					pinned = "yes"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", d.Day, d.Title, d.Input, pinned)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")

	return cmd
}
