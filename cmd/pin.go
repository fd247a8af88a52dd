package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-advent/internal/render"
	"github.com/mattsolo1/grove-advent/pkg/runner"
)

func NewPinCmd(r **runner.Runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin <day>",
		Short: "Solve a day and pin its answers into the inputs directory",
		Long: `Solve a day and write its input, headed by the answers, to
<inputs_dir>/dayNN.txt. Later runs of 'aoc verify' compare against the
pinned answers.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day %q", args[0])
			}

			path, result, err := (*r).Pin(context.Background(), day)
			if err != nil {
				return err
			}

			render.New(cmd.OutOrStdout()).Answers(result)
			fmt.Fprintf(cmd.OutOrStdout(), "pinned to %s\n", path)
			return nil
		},
	}

	return cmd
}
