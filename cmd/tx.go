package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thec00n/osmosis-cli-wrapper/types"
)

func txEventsCmd(a *AppState) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "get_tx_events [hash]",
		Aliases: []string{"tx-events"},
		Short:   "Print a transaction and a summary of its events",
		Example: strings.TrimSpace(fmt.Sprintf(`
$ %s get_tx_events --tx 5002A249B1353FA59C1660EBAE5FA7FC652AC1E77F69CEF3A4533B0DF2864012
$ %s tx-events 5002A249B1353FA59C1660EBAE5FA7FC652AC1E77F69CEF3A4533B0DF2864012`, appName, appName)),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, _ := cmd.Flags().GetString(flagTx)
			if len(args) == 1 {
				if hash != "" && hash != args[0] {
					return types.ErrInvalidInput.Wrapf("tx hash given twice (%s and %s)", hash, args[0])
				}
				hash = args[0]
			}

			chain, err := a.Chain()
			if err != nil {
				return err
			}
			return chain.GetTxEvents(cmd.Context(), hash, cmd.OutOrStdout())
		},
	}
	cmd.Flags().String(flagTx, "", "tx hash")
	return cmd
}
