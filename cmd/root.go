package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"making-change/app"
	"making-change/config"
	"making-change/domain"
	"making-change/render"
	"making-change/store"
)

var (
	// Shared for the lifetime of the process, including every line of an interactive session
	registerService *app.RegisterService
	renderer        render.Renderer
	cfg             *config.Config

	catalogFile string
	iconDir     string
	verbose     bool
)

// rootCmd without a subcommand starts the interactive session.
var rootCmd = &cobra.Command{
	Use:   "making-change",
	Short: "Break an amount of money into bills and coins",
	Long: `making-change computes the greedy breakdown of an amount into
bills and coins, largest first, and shows the count of each denomination
with its value and icon.

Run it without arguments for an interactive session where every line
you type is an amount, or use "making-change change 12.34" once.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd, err)
		os.Exit(1)
	}
}

func init() {
	// Assigned here rather than in the literal to avoid an initialization cycle through runRepl.
	rootCmd.RunE = runRepl
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "HCL file with the denomination catalog (default: built-in US currency, env CHANGE_CATALOG_FILE)")
	rootCmd.PersistentFlags().StringVar(&iconDir, "icons", "", "directory with denomination images (env CHANGE_ICON_DIR, default images)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "write service logs to stderr (env CHANGE_VERBOSE)")
}

// setup wires config, register and renderer once per process.
func setup(cmd *cobra.Command, args []string) error {
	if registerService != nil {
		return nil
	}

	cfg = config.Load()
	if catalogFile != "" {
		cfg.CatalogFile = catalogFile
	}
	if iconDir != "" {
		cfg.IconDir = iconDir
	}
	cfg.Verbose = cfg.Verbose || verbose
	if err := cfg.Validate(); err != nil {
		return err
	}

	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	if cfg.Verbose {
		log.SetOutput(cmd.ErrOrStderr())
	} else {
		log.SetOutput(io.Discard)
	}

	catalog, err := config.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		return fmt.Errorf("failed to load denomination catalog: %w", err)
	}

	icons := render.NewIconResolver(cfg.IconDir)
	stderr := cmd.ErrOrStderr()
	icons.Warnf = func(format string, args ...interface{}) {
		fmt.Fprintf(stderr, format+"\n", args...)
	}

	registerService = app.NewRegisterService(domain.NewRegister(catalog), store.NewInMemoryEventStore(), store.NewInMemorySnapshotStore())
	renderer = render.NewTextRenderer(cmd.OutOrStdout(), cfg.CurrencySymbol, icons)
	return nil
}

// inputError is a user typing something that is not an amount. It is reported, never fatal.
type inputError struct {
	input string
	err   error
}

func (e *inputError) Error() string {
	return fmt.Sprintf("Invalid input: %q is not a valid amount (%v)", e.input, e.err)
}

func (e *inputError) Unwrap() error { return e.err }

func printError(cmd *cobra.Command, err error) {
	var inErr *inputError
	if errors.As(err, &inErr) {
		fmt.Fprintln(cmd.ErrOrStderr(), inErr.Error())
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}

func symbol() string {
	if cfg == nil {
		return domain.DefaultCurrencySymbol
	}
	return cfg.CurrencySymbol
}
