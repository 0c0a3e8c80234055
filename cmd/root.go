package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	"github.com/thec00n/osmosis-cli-wrapper/types"
)

const (
	appName           = "osmosis-cli-wrapper"
	defaultConfigPath = "config.yaml"
)

// NewRootCmd builds the command tree around a.
func NewRootCmd(a *AppState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "A CLI tool for executing and querying CosmWasm contracts on Osmosis",
		Long: strings.TrimSpace(`
Executes and queries CosmWasm contracts through osmosisd and summarizes the
events of a transaction, naming the contracts it finds in the contracts file.`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.InitAppState()
		},
	}

	addAppPersistantFlags(cmd, a)

	cmd.AddCommand(
		executeCmd(a),
		queryCmd(a),
		txEventsCmd(a),
		contractsCmd(a),
		configShowCmd(a),
		versionCmd(),
	)
	return cmd
}

// Execute runs the command line and exits non-zero on any error.
func Execute() {
	os.Exit(Run(NewAppState(), os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes args against a and returns the process exit code. Metrics are
// written whether or not the command succeeded.
func Run(a *AppState, args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	a.writeMetrics()
	if err != nil {
		PrintError(stderr, a.Logger, err)
		return 1
	}
	return 0
}

// PrintError reports a failed command. Daemon failures show the daemon's
// stderr, everything else goes through the logger.
func PrintError(w io.Writer, logger log.Logger, err error) {
	var cmdErr *types.CommandError
	if errors.As(err, &cmdErr) {
		stderr := strings.TrimRight(cmdErr.Stderr, "\n")
		if stderr == "" {
			stderr = cmdErr.Error()
		}
		fmt.Fprintf(w, "Command execution failed: %s\n", stderr)
		return
	}
	if logger == nil {
		fmt.Fprintf(w, "Error: %s\n", err)
		return
	}
	logger.Error(err.Error())
}
