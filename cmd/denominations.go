package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"making-change/domain"
)

var denominationsCmd = &cobra.Command{
	Use:     "denominations",
	Aliases: []string{"catalog"},
	Short:   "List the denominations the register pays out, largest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tKIND\tVALUE\tICON")
		for _, d := range registerService.Denominations() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.Name, d.Kind, domain.FormatAmount(d.Value, symbol()), d.Icon)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(denominationsCmd)
}
