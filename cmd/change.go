package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"making-change/app"
	"making-change/domain"
)

var changeCmd = &cobra.Command{
	Use:   "change <amount>",
	Short: "Make change for an amount",
	Long: `Breaks the amount into bills and coins, largest first, and shows
each denomination with its count and value. The amount may carry a
leading $ and at most two decimal places, e.g. 163, 1.63 or $0.41.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return makeChange(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(changeCmd)
}

func makeChange(cmd *cobra.Command, input string) error {
	amount, err := domain.ParseAmountIn(input, symbol())
	if err != nil {
		return &inputError{input: input, err: err}
	}

	purse, err := registerService.MakeChange(app.MakeChangeCommand{Amount: amount})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Change for %s:\n", domain.FormatAmount(amount, symbol()))
	return renderer.Render(purse)
}
