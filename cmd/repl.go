package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Starts an interactive session. Type an amount such as 12.34 to make
change for it, or any other command (denominations, purse show, ...).
Type 'exit' or 'quit' to leave.

--catalog, --icons and --verbose are read once when the program starts;
lines that repeat them inside the session are rejected.`,
	Args: cobra.NoArgs,
}

func init() {
	// Assigned here rather than in the literal to avoid an initialization cycle through complete.
	replCmd.RunE = runRepl
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		fmt.Fprintln(cmd.OutOrStdout(), "Enter an amount to make change for. Type 'exit' or 'quit' to leave.")
		prompt.New(
			func(line string) { execLine(cmd, line) },
			complete,
			prompt.OptionPrefix("amount> "),
			prompt.OptionTitle("making-change"),
			prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
				return breakline && isExit(in)
			}),
		).Run()
		return nil
	}
	return readLines(cmd, in)
}

// readLines runs every line of a non-terminal input, e.g. a pipe or a test buffer.
func readLines(cmd *cobra.Command, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if !execLine(cmd, scanner.Text()) {
			break
		}
	}
	return scanner.Err()
}

// execLine runs one line of input and reports whether the session goes on.
// A line that does not start with a command name is taken as an amount.
func execLine(cmd *cobra.Command, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}
	if isExit(line) {
		return false
	}

	fields := strings.Fields(line)
	if name := startupFlag(fields); name != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "--%s only applies when the program starts; restart with it to change it.\n", name)
		return true
	}
	switch {
	case fields[0] == replCmd.Name():
		fmt.Fprintln(cmd.ErrOrStderr(), "Already in an interactive session.")
	case isCommand(fields[0]):
		rootCmd.SetArgs(fields)
		if err := rootCmd.Execute(); err != nil {
			printError(cmd, err)
		}
	default:
		if err := makeChange(cmd, line); err != nil {
			printError(cmd, err)
		}
	}
	return true
}

// startupFlag returns the name of the first root persistent flag in fields.
// Those flags are consumed by setup, which runs once per process.
func startupFlag(fields []string) string {
	for _, f := range fields {
		if !strings.HasPrefix(f, "-") {
			continue
		}
		name := strings.SplitN(strings.TrimLeft(f, "-"), "=", 2)[0]
		if strings.HasPrefix(f, "--") {
			if flag := rootCmd.PersistentFlags().Lookup(name); flag != nil {
				return flag.Name
			}
		} else if len(name) == 1 {
			if flag := rootCmd.PersistentFlags().ShorthandLookup(name); flag != nil {
				return flag.Name
			}
		}
	}
	return ""
}

func isExit(line string) bool {
	switch strings.TrimSpace(line) {
	case "exit", "quit":
		return true
	}
	return false
}

func isCommand(name string) bool {
	if name == "help" {
		return true
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}

func complete(d prompt.Document) []prompt.Suggest {
	suggestions := []prompt.Suggest{
		{Text: "exit", Description: "Leave the session"},
	}
	for _, c := range rootCmd.Commands() {
		if c.Hidden || c == replCmd {
			continue
		}
		suggestions = append(suggestions, prompt.Suggest{Text: c.Name(), Description: c.Short})
	}
	return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
}
