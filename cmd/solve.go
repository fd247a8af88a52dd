package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-advent/internal/render"
	"github.com/mattsolo1/grove-advent/pkg/models"
	"github.com/mattsolo1/grove-advent/pkg/runner"
)

func NewSolveCmd(r **runner.Runner) *cobra.Command {
	var (
		inputFile  string
		jsonOutput bool
		record     bool
		timing     bool
	)

	cmd := &cobra.Command{
		Use:   "solve [day...]",
		Short: "Solve one or more days",
		Long: `Solve puzzles and print both answers.

Examples:
  aoc solve                       # Solve every day
  aoc solve 7                     # Solve day 7
  aoc solve 7 --input my-day7.txt # Solve day 7 with a specific input`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			run := *r

			days, err := parseDays(run, args)
			if err != nil {
				return err
			}
			if inputFile != "" && len(days) != 1 {
				return fmt.Errorf("--input needs exactly one day")
			}
			if record {
				if run.History() == nil {
					return fmt.Errorf("--record needs a history store")
				}
				run.Settings.Record = true
			}

			var results []*models.Result
			for _, day := range days {
				var result *models.Result
				if inputFile != "" {
					in, err := run.Loader.LoadFile(inputFile)
					if err != nil {
						return err
					}
					result, err = run.SolveInput(ctx, day, in)
					if err != nil {
						return err
					}
				} else {
					result, err = run.Solve(ctx, day)
					if err != nil {
						return err
					}
				}
				results = append(results, result)
			}

			if jsonOutput {
				return outputJSON(cmd.OutOrStdout(), results)
			}

			p := render.New(cmd.OutOrStdout())
			for _, result := range results {
				p.Answers(result)
				if timing {
					p.Timing(result)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Read the input from this file instead")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().BoolVar(&record, "record", false, "Record results in the history database")
	cmd.Flags().BoolVarP(&timing, "time", "t", false, "Show input source and solve time")

	return cmd
}
