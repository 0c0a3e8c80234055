package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	flagConfigPath = "config"
	flagVerbose    = "verbose"
	flagLogLevel   = "log-level"
	flagLogJSON    = "log-json"
	flagJSON       = "json"
	flagContract   = "contract"
	flagAmount     = "amount"
	flagTx         = "tx"
)

func addAppPersistantFlags(cmd *cobra.Command, a *AppState) *cobra.Command {
	cmd.PersistentFlags().StringVarP(&a.ConfigPath, flagConfigPath, "c", defaultConfigPath, "file path of config file")
	cmd.PersistentFlags().BoolVarP(&a.Debug, flagVerbose, "v", false, fmt.Sprintf("use this flag to set log level to `debug` (overrides %s flag)", flagLogLevel))
	cmd.PersistentFlags().StringVar(&a.LogLevel, flagLogLevel, "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&a.LogJSON, flagLogJSON, false, "write logs as json")
	return cmd
}

func addJsonFlag(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().Bool(flagJSON, false, "return in json format")
	return cmd
}

// addMessageFlags adds the flags naming the contract and the file holding the
// JSON message sent to it. Both are required.
func addMessageFlags(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().String(flagContract, "", "name of the contract in the contracts file")
	cmd.Flags().String(flagJSON, "", "json file that contains the message")
	_ = cmd.MarkFlagRequired(flagContract)
	_ = cmd.MarkFlagRequired(flagJSON)
	return cmd
}
