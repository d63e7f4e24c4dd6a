package cli

import (
	"fmt"

	"github.com/me/confgen/internal/generator"
	"github.com/me/confgen/internal/tables"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every variant directory with its derived FCT flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := tables.Default()
			if err != nil {
				return err
			}
			jobs, err := generator.Plan(tbl)
			if err != nil {
				return err
			}
			logger.Debug("planned variants", "count", len(jobs))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-32s  %-3s  %s\n", "DIR", "FCT", "FCT_ALONG_STREAM")
			fmt.Fprintf(out, "%-32s  %-3s  %s\n", "---", "---", "----------------")
			for _, j := range jobs {
				fmt.Fprintf(out, "%-32s  %-3s  %s\n", j.Dir, j.Flags.FCT, j.Flags.FCTAlongStream)
			}
			fmt.Fprintf(out, "\n%d variants\n", len(jobs))
			return nil
		},
	}
}
