package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mattsolo1/grove-advent/pkg/input"
	"github.com/mattsolo1/grove-advent/pkg/nospace"
	"github.com/mattsolo1/grove-advent/pkg/runner"
)

func NewTreeCmd(r **runner.Runner) *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the filesystem rebuilt from the day 7 transcript",
		RunE: func(cmd *cobra.Command, args []string) error {
			run := *r

			var (
				in  *input.Input
				err error
			)
			if inputFile != "" {
				in, err = run.Loader.LoadFile(inputFile)
			} else {
				in, err = run.Loader.Load(7)
			}
			if err != nil {
				return err
			}

			settings := run.Settings.NoSpace
			fs, err := nospace.Parse(in.Body,
				nospace.WithCapacity(settings.Capacity),
				nospace.WithLogger(run.Logger().WithField("input", in.Name)),
			)
			if err != nil {
				return fmt.Errorf("%s: %w", in.Name, err)
			}

			out := cmd.OutOrStdout()
			if err := fs.Render(out); err != nil {
				return err
			}

			p := message.NewPrinter(language.English)
			p.Fprintf(out, "\nused %d of %d, %d free\n", fs.UsedSpace(), fs.Capacity(), fs.FreeSpace())
			p.Fprintf(out, "directories under %d total %d\n", settings.SmallLimit, nospace.PartOne(fs, settings.SmallLimit))
			if size, err := fs.SmallestToFree(settings.RequiredFree); err == nil {
				p.Fprintf(out, "deleting a directory of %d frees the %d needed\n", size, settings.RequiredFree)
			} else {
				p.Fprintf(out, "no single directory frees the %d needed\n", settings.RequiredFree)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Read the transcript from this file instead")

	return cmd
}
