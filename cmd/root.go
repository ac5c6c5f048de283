package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Olivier-cousineau/econo-econo/internal/collector"
	"github.com/Olivier-cousineau/econo-econo/pkg/config"
)

var cfgFile string

// Process exit codes. A run that completes but collects nothing is a
// distinct, non-crash signal for the job runner driving this tool.
const (
	exitOK      = 0
	exitFailure = 1
	exitNoItems = 2
)

// newRootCmd creates and configures the root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "econodeal",
		Short: "Collects Walmart liquidation deals for the Econodeal project.",
		Long: `econodeal is the data-collection tool for the Econodeal project.
It queries Walmart Canada's public search API for the Saint-Jérôme and
Blainville stores, normalizes the results, and writes one JSON snapshot
per run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Initialize Viper configuration once flags are parsed.
	cobra.OnInitialize(func() { config.InitConfig(cfgFile) })

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.econodeal/config.yaml)")
	cmd.PersistentFlags().String("log-level", "info", "log verbosity (debug, info, warn, error)")
	cmd.PersistentFlags().Bool("dev-log", true, "use the human-readable development log encoder")
	_ = viper.BindPFlag("logging.level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.development", cmd.PersistentFlags().Lookup("dev-log"))

	cmd.AddCommand(newCollectCmd())

	return cmd
}

// Execute runs the root command and maps its outcome to a process exit code.
func Execute() int {
	err := newRootCmd().Execute()
	if err != nil && !errors.Is(err, collector.ErrNoItems) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return exitCode(err)
}

// exitCode maps a command error to the process exit code. An empty run is
// a distinct signal, not a failure: its payload was already written.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, collector.ErrNoItems):
		return exitNoItems
	default:
		return exitFailure
	}
}
