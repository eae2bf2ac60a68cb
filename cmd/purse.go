package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"making-change/app"
	"making-change/domain"
	"making-change/events"
)

var (
	historySkip  int
	historyLimit int
)

// purseCmd groups commands on purses made earlier in the same session.
// Purses are kept in memory only.
var purseCmd = &cobra.Command{
	Use:   "purse",
	Short: "Inspect and adjust the purses made in this session",
}

var purseShowCmd = &cobra.Command{
	Use:   "show [purse-id]",
	Short: "Show a purse (default: the latest change)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		purse, err := registerService.GetPurse(app.GetPurseQuery{PurseID: optionalArg(args)})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Purse %s (v%d, made for %s):\n", purse.ID, purse.Version, domain.FormatAmount(purse.Requested, symbol()))
		return renderer.Render(purse)
	},
}

var purseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the purses made in this session, oldest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := registerService.PurseIDs()
		if len(ids) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No change has been made yet.")
			return nil
		}
		current := registerService.CurrentPurseID()
		for _, id := range ids {
			marker := " "
			if id == current {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, id)
		}
		return nil
	},
}

var purseAddCmd = &cobra.Command{
	Use:   "add <denomination> <count>",
	Short: "Add pieces of a denomination to the current purse",
	Example: `  purse add Quarter 3
  purse add Hundred Bill 1`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, count, err := denominationAndCount(args)
		if err != nil {
			return err
		}
		if err := registerService.AddToPurse(app.AddToPurseCommand{Denomination: name, Count: count}); err != nil {
			return err
		}
		return printCurrent(cmd)
	},
}

var purseRemoveCmd = &cobra.Command{
	Use:   "remove <denomination> <count>",
	Short: "Take pieces of a denomination out of the current purse",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, count, err := denominationAndCount(args)
		if err != nil {
			return err
		}
		removed, err := registerService.RemoveFromPurse(app.RemoveFromPurseCommand{Denomination: name, Count: count})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d x %s: %s\n", count, name, domain.FormatAmount(removed, symbol()))
		return printCurrent(cmd)
	},
}

var purseHistoryCmd = &cobra.Command{
	Use:   "history [purse-id]",
	Short: "Show the events that built a purse (default: the latest change)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// flag values survive between lines of an interactive session
		defer func() { historySkip, historyLimit = 0, 0 }()

		if historySkip < 0 || historyLimit < 0 {
			return fmt.Errorf("skip and limit cannot be negative")
		}
		history, err := registerService.GetPurseHistory(app.GetHistoryQuery{
			PurseID: optionalArg(args),
			Skip:    historySkip,
			Limit:   historyLimit,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d events:\n", len(history))
		for _, event := range history {
			base := event.GetBase()
			fmt.Fprintf(out, "  v%d [%s] %s", base.Version, base.Timestamp.Format(time.RFC3339), base.Type)
			switch e := event.(type) {
			case events.PurseOpenedEvent:
				fmt.Fprintf(out, " for %s\n", domain.FormatAmount(e.Requested, symbol()))
			case events.DenominationAddedEvent:
				fmt.Fprintf(out, " +%d x %s\n", e.Count, e.Denomination.Name)
			case events.DenominationRemovedEvent:
				fmt.Fprintf(out, " -%d x %s\n", e.Count, e.Denomination.Name)
			default:
				fmt.Fprintln(out)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(purseCmd)
	purseCmd.AddCommand(purseShowCmd, purseListCmd, purseAddCmd, purseRemoveCmd, purseHistoryCmd)

	purseHistoryCmd.Flags().IntVar(&historySkip, "skip", 0, "number of events to skip")
	purseHistoryCmd.Flags().IntVar(&historyLimit, "limit", 0, "maximum number of events to show (0 means all)")
}

// denominationAndCount splits "Hundred Bill 2" into the name and the trailing count.
func denominationAndCount(args []string) (string, int64, error) {
	last := args[len(args)-1]
	count, err := strconv.ParseInt(last, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid count %q: must be a whole number", last)
	}
	return strings.Join(args[:len(args)-1], " "), count, nil
}

func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func printCurrent(cmd *cobra.Command) error {
	purse, err := registerService.GetPurse(app.GetPurseQuery{})
	if err != nil {
		return err
	}
	return renderer.Render(purse)
}
