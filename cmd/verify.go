package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-advent/internal/render"
	"github.com/mattsolo1/grove-advent/pkg/runner"
)

func NewVerifyCmd(r **runner.Runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [day...]",
		Short: "Check answers against the values pinned in each input",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			run := *r

			days, err := parseDays(run, args)
			if err != nil {
				return err
			}

			p := render.New(cmd.OutOrStdout())
			failed := 0
			for _, day := range days {
				v, err := run.Verify(ctx, day)
				if err != nil {
					return err
				}
				p.Check(v.Result, v.Expected.PartOne, v.Expected.PartTwo, v.Checked, v.OK())
				if !v.OK() {
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d days failed verification", failed, len(days))
			}
			return nil
		},
	}

	return cmd
}
